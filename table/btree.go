package table

import (
	"simpledb/errs"
	"simpledb/pager"
)

// leafFindCell returns the smallest cell index in the leaf whose key is
// >= key (binary search; spec §4.4). If key is absent this is the
// insertion point.
func leafFindCell(p *pager.Page, key uint32) uint32 {
	numCells := leafNumCells(p)
	minIndex, maxIndex := uint32(0), numCells
	for minIndex != maxIndex {
		index := (minIndex + maxIndex) / 2
		if leafKey(p, index) == key {
			return index
		}
		if key < leafKey(p, index) {
			maxIndex = index
		} else {
			minIndex = index + 1
		}
	}
	return minIndex
}

// tableFind descends from the root to the leaf that does, or would,
// contain key, returning a cursor positioned at the matching cell (or
// the insertion point if absent).
func (t *Table) tableFind(key uint32) (*Cursor, error) {
	pageNum := t.rootPageNum
	page, err := t.pager.GetPage(pageNum)
	if err != nil {
		return nil, err
	}

	for nodeType(page) == NodeInternal {
		childIndex := internalFindChild(page, key)
		var childPageNum uint32
		if childIndex == internalNumKeys(page) {
			childPageNum = internalRightChild(page)
		} else {
			childPageNum = internalChild(page, childIndex)
		}
		pageNum = childPageNum
		page, err = t.pager.GetPage(childPageNum)
		if err != nil {
			return nil, err
		}
	}

	cellNum := leafFindCell(page, key)
	return &Cursor{
		table:      t,
		pageNum:    pageNum,
		cellNum:    cellNum,
		endOfTable: cellNum >= leafNumCells(page),
	}, nil
}

// leafNodeInsert inserts (key, row) into the leaf at pageNum, splitting it
// first if it is already full.
func (t *Table) leafNodeInsert(pageNum uint32, cellNum uint32, key uint32, row Row) error {
	page, err := t.pager.GetPage(pageNum)
	if err != nil {
		return err
	}

	numCells := leafNumCells(page)
	if numCells >= LeafNodeMaxCells {
		return t.leafNodeSplitAndInsert(pageNum, cellNum, key, row)
	}

	for i := numCells; i > cellNum; i-- {
		copy(leafCellBytes(page, i), leafCellBytes(page, i-1))
	}

	setLeafNumCells(page, numCells+1)
	setLeafKey(page, cellNum, key)
	SerializeRow(row, leafValue(page, cellNum))
	return nil
}

// leafNodeSplitAndInsert splits a full leaf into two, distributing the
// existing LeafNodeMaxCells cells plus the new one across old and new
// leaves per the LEFT/RIGHT split counts, then fixes up the parent.
func (t *Table) leafNodeSplitAndInsert(oldPageNum uint32, newCellNum uint32, key uint32, row Row) error {
	oldPage, err := t.pager.GetPage(oldPageNum)
	if err != nil {
		return err
	}
	oldMax := nodeMaxKey(oldPage)

	newPageNum := t.pager.GetUnusedPageNum()
	newPage, err := t.pager.GetPage(newPageNum)
	if err != nil {
		return err
	}
	initializeLeaf(newPage)
	setParentPageNum(newPage, parentPageNum(oldPage))
	setLeafNextLeaf(newPage, leafNextLeaf(oldPage))
	setLeafNextLeaf(oldPage, newPageNum)

	// Walk every cell position, old node's current cells plus the new
	// one, from the highest index down to 0, depositing each into
	// whichever of the two leaves it now belongs to.
	for i := int(LeafNodeMaxCells); i >= 0; i-- {
		var destPage *pager.Page
		if uint32(i) >= leafLeftSplitCount {
			destPage = newPage
		} else {
			destPage = oldPage
		}
		indexWithinNode := uint32(i) % leafLeftSplitCount

		switch {
		case uint32(i) == newCellNum:
			SerializeRow(row, leafValue(destPage, indexWithinNode))
			setLeafKey(destPage, indexWithinNode, key)
		case uint32(i) > newCellNum:
			copy(leafCellBytes(destPage, indexWithinNode), leafCellBytes(oldPage, uint32(i)-1))
		default:
			copy(leafCellBytes(destPage, indexWithinNode), leafCellBytes(oldPage, uint32(i)))
		}
	}

	setLeafNumCells(oldPage, leafLeftSplitCount)
	setLeafNumCells(newPage, leafRightSplitCount)

	if isRoot(oldPage) {
		return t.createNewRoot(newPageNum)
	}

	parentPageNumVal := parentPageNum(oldPage)
	newMax := nodeMaxKey(oldPage)
	parent, err := t.pager.GetPage(parentPageNumVal)
	if err != nil {
		return err
	}
	updateInternalNodeKey(parent, oldMax, newMax)
	return t.internalNodeInsert(parentPageNumVal, newPageNum)
}

// createNewRoot turns the current (full) root into a left child, puts a
// freshly allocated node holding rightChildPageNum as the right child,
// and writes a brand-new internal root over t.rootPageNum, pointing at
// both.
func (t *Table) createNewRoot(rightChildPageNum uint32) error {
	root, err := t.pager.GetPage(t.rootPageNum)
	if err != nil {
		return err
	}

	leftChildPageNum := t.pager.GetUnusedPageNum()
	left, err := t.pager.GetPage(leftChildPageNum)
	if err != nil {
		return err
	}

	copy(left.Data[:], root.Data[:])
	setIsRoot(left, false)

	right, err := t.pager.GetPage(rightChildPageNum)
	if err != nil {
		return err
	}

	initializeInternal(root)
	setIsRoot(root, true)
	setInternalNumKeys(root, 1)
	setInternalChild(root, 0, leftChildPageNum)
	setInternalKey(root, 0, nodeMaxKey(left))
	setInternalRightChild(root, rightChildPageNum)
	setParentPageNum(left, t.rootPageNum)
	setParentPageNum(right, t.rootPageNum)

	if nodeType(left) == NodeInternal {
		if err := t.updateChildrenParents(left, leftChildPageNum); err != nil {
			return err
		}
	}
	return nil
}

// updateChildrenParents fixes the parent_page_num of every child of an
// internal node after that node itself moved to a new page, as happens
// to the old root when createNewRoot demotes it.
func (t *Table) updateChildrenParents(node *pager.Page, nodePageNum uint32) error {
	numKeys := internalNumKeys(node)
	for i := uint32(0); i < numKeys; i++ {
		child, err := t.pager.GetPage(internalChild(node, i))
		if err != nil {
			return err
		}
		setParentPageNum(child, nodePageNum)
	}
	right, err := t.pager.GetPage(internalRightChild(node))
	if err != nil {
		return err
	}
	setParentPageNum(right, nodePageNum)
	return nil
}

// updateInternalNodeKey replaces oldKey with newKey in parent's cell
// array. A split leaf's old page keeps the lower half of its keys, so
// its max key shrinks; the parent's separator entry for it must follow
// suit or later searches misroute past it.
func updateInternalNodeKey(parent *pager.Page, oldKey, newKey uint32) {
	if oldKey == newKey {
		return
	}
	index := internalFindChild(parent, oldKey)
	if index < internalNumKeys(parent) {
		setInternalKey(parent, index, newKey)
	}
}

// internalNodeInsert adds a pointer to childPageNum into the internal
// node at parentPageNum. Splitting an internal node is not implemented
// (spec Non-goal); exceeding InternalNodeMaxCells is a fatal error
// rather than silently corrupting the tree.
func (t *Table) internalNodeInsert(parentPageNum uint32, childPageNum uint32) error {
	parent, err := t.pager.GetPage(parentPageNum)
	if err != nil {
		return err
	}

	child, err := t.pager.GetPage(childPageNum)
	if err != nil {
		return err
	}
	childMaxKey := nodeMaxKey(child)

	index := internalFindChild(parent, childMaxKey)

	numKeys := internalNumKeys(parent)
	if numKeys >= InternalNodeMaxCells {
		return errs.New(errs.KindUnimplemented, "internal node splitting is not implemented")
	}

	rightChildPageNum := internalRightChild(parent)
	rightChild, err := t.pager.GetPage(rightChildPageNum)
	if err != nil {
		return err
	}

	if childMaxKey > nodeMaxKey(rightChild) {
		// New child becomes the rightmost; the old right child slides
		// into the last cell slot.
		setInternalChild(parent, numKeys, rightChildPageNum)
		setInternalKey(parent, numKeys, nodeMaxKey(rightChild))
		setInternalRightChild(parent, childPageNum)
	} else {
		for i := numKeys; i > index; i-- {
			setInternalChild(parent, i, internalChild(parent, i-1))
			setInternalKey(parent, i, internalKey(parent, i-1))
		}
		setInternalChild(parent, index, childPageNum)
		setInternalKey(parent, index, childMaxKey)
	}
	setInternalNumKeys(parent, numKeys+1)
	return nil
}
