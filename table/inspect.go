package table

import (
	"fmt"

	"simpledb/column"
)

// PrintConstants emits the on-disk layout constants the `.constants`
// meta-command reports, grounded on chkda-tinySQL's printed node sizes
// (its printConstant).
func PrintConstants(emit func(line string)) {
	emit(fmt.Sprintf("ROW_SIZE: %d", column.RowSize))
	emit(fmt.Sprintf("COMMON_NODE_HEADER_SIZE: %d", commonHeaderSize))
	emit(fmt.Sprintf("LEAF_NODE_HEADER_SIZE: %d", leafNodeHeaderSize))
	emit(fmt.Sprintf("LEAF_NODE_CELL_SIZE: %d", leafCellSize))
	emit(fmt.Sprintf("LEAF_NODE_SPACE_FOR_CELLS: %d", leafSpaceForCells))
	emit(fmt.Sprintf("LEAF_NODE_MAX_CELLS: %d", LeafNodeMaxCells))
}

// PrintTree walks the tree rooted at pageNum in pre-order, indenting 2
// spaces per level, and emits one line per node and per key — leaves as
// "- leaf (size N)" followed by each key, internals as
// "- internal (size N)" followed by each child subtree interleaved with
// its separating key, finally the right child subtree.
//
// The indent width matches the literal rendered example in spec §8's S7
// scenario (two spaces per level), not that scenario's own parenthetical
// "four spaces per indent level" remark, which contradicts its own
// example and the original db_tutorial's convention.
func PrintTree(t *Table, pageNum uint32, indentLevel int, emit func(line string)) error {
	page, err := t.pager.GetPage(pageNum)
	if err != nil {
		return err
	}

	prefix := indentPrefix(indentLevel)

	switch nodeType(page) {
	case NodeLeaf:
		numCells := leafNumCells(page)
		emit(fmt.Sprintf("%s- leaf (size %d)", prefix, numCells))
		childPrefix := indentPrefix(indentLevel + 1)
		for i := uint32(0); i < numCells; i++ {
			emit(fmt.Sprintf("%s- %d", childPrefix, leafKey(page, i)))
		}
	case NodeInternal:
		numKeys := internalNumKeys(page)
		emit(fmt.Sprintf("%s- internal (size %d)", prefix, numKeys))
		for i := uint32(0); i < numKeys; i++ {
			if err := PrintTree(t, internalChild(page, i), indentLevel+1, emit); err != nil {
				return err
			}
			emit(fmt.Sprintf("%s- key %d", indentPrefix(indentLevel+1), internalKey(page, i)))
		}
		if err := PrintTree(t, internalRightChild(page), indentLevel+1, emit); err != nil {
			return err
		}
	}
	return nil
}

func indentPrefix(level int) string {
	b := make([]byte, 0, level*2)
	for i := 0; i < level; i++ {
		b = append(b, ' ', ' ')
	}
	return string(b)
}
