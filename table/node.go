package table

import (
	"encoding/binary"

	"simpledb/column"
	"simpledb/pager"
)

// Node type tags, stored in the first byte of every page.
const (
	NodeInternal byte = 0
	NodeLeaf     byte = 1
)

// Common node header: node_type(1) + is_root(1) + parent_page_num(4).
const (
	commonHeaderSize = 6

	nodeTypeOffset   = 0
	isRootOffset     = 1
	parentPageOffset = 2
)

// Leaf node header, following the common header:
// num_cells(4) + next_leaf_page_num(4).
const (
	leafNumCellsOffset  = commonHeaderSize
	leafNextLeafOffset  = commonHeaderSize + 4
	leafNodeHeaderSize  = commonHeaderSize + 8
	leafCellSize        = 4 + column.RowSize
	leafSpaceForCells   = pager.PageSize - leafNodeHeaderSize
	LeafNodeMaxCells    = leafSpaceForCells / leafCellSize
	leafRightSplitCount = (LeafNodeMaxCells + 1) / 2
	leafLeftSplitCount  = (LeafNodeMaxCells + 1) - leafRightSplitCount
	leafKeyOffsetInCell = 0
	leafValOffsetInCell = 4
)

// Internal node header, following the common header:
// num_keys(4) + right_child_page_num(4).
const (
	internalNumKeysOffset    = commonHeaderSize
	internalRightChildOffset = commonHeaderSize + 4
	internalNodeHeaderSize   = commonHeaderSize + 8
	internalCellSize         = 4 + 4
	// Deliberately small so tests can exercise internal-node behavior
	// without building enormous trees; see spec §3.
	InternalNodeMaxCells = 3
)

// --- common header ---

func nodeType(p *pager.Page) byte { return p.Data[nodeTypeOffset] }

func setNodeType(p *pager.Page, t byte) { p.Data[nodeTypeOffset] = t }

func isRoot(p *pager.Page) bool { return p.Data[isRootOffset] != 0 }

func setIsRoot(p *pager.Page, v bool) {
	if v {
		p.Data[isRootOffset] = 1
	} else {
		p.Data[isRootOffset] = 0
	}
}

func parentPageNum(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[parentPageOffset : parentPageOffset+4])
}

func setParentPageNum(p *pager.Page, v uint32) {
	binary.LittleEndian.PutUint32(p.Data[parentPageOffset:parentPageOffset+4], v)
}

// --- leaf node ---

func initializeLeaf(p *pager.Page) {
	setNodeType(p, NodeLeaf)
	setIsRoot(p, false)
	setLeafNumCells(p, 0)
	setLeafNextLeaf(p, 0)
}

func leafNumCells(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[leafNumCellsOffset : leafNumCellsOffset+4])
}

func setLeafNumCells(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[leafNumCellsOffset:leafNumCellsOffset+4], n)
}

func leafNextLeaf(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[leafNextLeafOffset : leafNextLeafOffset+4])
}

func setLeafNextLeaf(p *pager.Page, pageNum uint32) {
	binary.LittleEndian.PutUint32(p.Data[leafNextLeafOffset:leafNextLeafOffset+4], pageNum)
}

func leafCellOffset(cellNum uint32) int {
	return leafNodeHeaderSize + int(cellNum)*leafCellSize
}

func leafKey(p *pager.Page, cellNum uint32) uint32 {
	off := leafCellOffset(cellNum) + leafKeyOffsetInCell
	return binary.LittleEndian.Uint32(p.Data[off : off+4])
}

func setLeafKey(p *pager.Page, cellNum uint32, key uint32) {
	off := leafCellOffset(cellNum) + leafKeyOffsetInCell
	binary.LittleEndian.PutUint32(p.Data[off:off+4], key)
}

func leafValue(p *pager.Page, cellNum uint32) []byte {
	off := leafCellOffset(cellNum) + leafValOffsetInCell
	return p.Data[off : off+column.RowSize]
}

func leafCellBytes(p *pager.Page, cellNum uint32) []byte {
	off := leafCellOffset(cellNum)
	return p.Data[off : off+leafCellSize]
}

// --- internal node ---

func initializeInternal(p *pager.Page) {
	setNodeType(p, NodeInternal)
	setIsRoot(p, false)
	setInternalNumKeys(p, 0)
}

func internalNumKeys(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[internalNumKeysOffset : internalNumKeysOffset+4])
}

func setInternalNumKeys(p *pager.Page, n uint32) {
	binary.LittleEndian.PutUint32(p.Data[internalNumKeysOffset:internalNumKeysOffset+4], n)
}

func internalRightChild(p *pager.Page) uint32 {
	return binary.LittleEndian.Uint32(p.Data[internalRightChildOffset : internalRightChildOffset+4])
}

func setInternalRightChild(p *pager.Page, pageNum uint32) {
	binary.LittleEndian.PutUint32(p.Data[internalRightChildOffset:internalRightChildOffset+4], pageNum)
}

func internalCellOffset(cellNum uint32) int {
	return internalNodeHeaderSize + int(cellNum)*internalCellSize
}

func internalChild(p *pager.Page, cellNum uint32) uint32 {
	off := internalCellOffset(cellNum)
	return binary.LittleEndian.Uint32(p.Data[off : off+4])
}

func setInternalChild(p *pager.Page, cellNum uint32, pageNum uint32) {
	off := internalCellOffset(cellNum)
	binary.LittleEndian.PutUint32(p.Data[off:off+4], pageNum)
}

func internalKey(p *pager.Page, cellNum uint32) uint32 {
	off := internalCellOffset(cellNum) + 4
	return binary.LittleEndian.Uint32(p.Data[off : off+4])
}

func setInternalKey(p *pager.Page, cellNum uint32, key uint32) {
	off := internalCellOffset(cellNum) + 4
	binary.LittleEndian.PutUint32(p.Data[off:off+4], key)
}

// internalFindChild returns the smallest cell index whose key is >= key,
// or numKeys if none is (meaning the right child holds it).
func internalFindChild(p *pager.Page, key uint32) uint32 {
	numKeys := internalNumKeys(p)
	minIndex, maxIndex := uint32(0), numKeys
	for minIndex != maxIndex {
		index := (minIndex + maxIndex) / 2
		if internalKey(p, index) >= key {
			maxIndex = index
		} else {
			minIndex = index + 1
		}
	}
	return minIndex
}

// nodeMaxKey returns the largest key physically present in node: the last
// cell's key for a leaf, key[num_keys-1] for an internal node.
func nodeMaxKey(p *pager.Page) uint32 {
	if nodeType(p) == NodeLeaf {
		return leafKey(p, leafNumCells(p)-1)
	}
	return internalKey(p, internalNumKeys(p)-1)
}
