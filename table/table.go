package table

import (
	"simpledb/errs"
	"simpledb/pager"
)

// Table is a handle on the single B+ tree stored in one database file.
// The root page is always page 0.
type Table struct {
	pager       *pager.Pager
	rootPageNum uint32
}

// OpenTable opens (creating if necessary) the database file at path and
// initializes its root page as an empty leaf if the file is brand new.
func OpenTable(path string) (*Table, error) {
	pgr, err := pager.Open(path)
	if err != nil {
		return nil, err
	}

	t := &Table{pager: pgr, rootPageNum: 0}

	if pgr.NumPages() == 0 {
		root, err := pgr.GetPage(0)
		if err != nil {
			return nil, err
		}
		initializeLeaf(root)
		setIsRoot(root, true)
	}

	return t, nil
}

// Close flushes every cached page and closes the underlying file.
func (t *Table) Close() error {
	return t.pager.Close()
}

// RootPageNum is the page number of the tree's root.
func (t *Table) RootPageNum() uint32 { return t.rootPageNum }

// Cursor walks cells of the table in key order, one leaf at a time,
// following next_leaf_page_num links once a leaf is exhausted.
type Cursor struct {
	table      *Table
	pageNum    uint32
	cellNum    uint32
	endOfTable bool
}

// TableStart returns a cursor positioned at the first row in key order.
func TableStart(t *Table) (*Cursor, error) {
	cur, err := t.tableFind(0)
	if err != nil {
		return nil, err
	}

	page, err := t.pager.GetPage(cur.pageNum)
	if err != nil {
		return nil, err
	}
	cur.endOfTable = leafNumCells(page) == 0
	return cur, nil
}

// Advance moves the cursor to the next cell, crossing into the next leaf
// (via next_leaf_page_num) when the current one is exhausted. Reaching
// page 0 as a "next" leaf means there is no next leaf.
func (c *Cursor) Advance() error {
	page, err := c.table.pager.GetPage(c.pageNum)
	if err != nil {
		return err
	}

	c.cellNum++
	if c.cellNum >= leafNumCells(page) {
		next := leafNextLeaf(page)
		if next == 0 {
			c.endOfTable = true
		} else {
			c.pageNum = next
			c.cellNum = 0
		}
	}
	return nil
}

// EndOfTable reports whether the cursor has run past the last row.
func (c *Cursor) EndOfTable() bool { return c.endOfTable }

// Value returns the row at the cursor's current position.
func (c *Cursor) Value() (Row, error) {
	page, err := c.table.pager.GetPage(c.pageNum)
	if err != nil {
		return Row{}, err
	}
	return DeserializeRow(leafValue(page, c.cellNum)), nil
}

// Insert writes value at the cursor's position, shifting any later
// cells in the leaf (or its sibling after a split) to make room.
func (c *Cursor) Insert(key uint32, value Row) error {
	page, err := c.table.pager.GetPage(c.pageNum)
	if err != nil {
		return err
	}

	numCells := leafNumCells(page)
	if c.cellNum < numCells {
		if leafKey(page, c.cellNum) == key {
			return errs.New(errs.KindDuplicateKey, "duplicate key")
		}
	}

	return c.table.leafNodeInsert(c.pageNum, c.cellNum, key, value)
}
