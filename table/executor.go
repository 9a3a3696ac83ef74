package table

import "fmt"

// ExecuteInsert resolves the leaf that should hold id, rejects a
// duplicate, and otherwise inserts the row there (splitting as needed).
func ExecuteInsert(t *Table, row Row) error {
	cur, err := t.tableFind(row.ID)
	if err != nil {
		return err
	}
	return cur.Insert(row.ID, row)
}

// ExecuteSelect walks every row in key order and emits it through emit.
func ExecuteSelect(t *Table, emit func(line string)) error {
	cur, err := TableStart(t)
	if err != nil {
		return err
	}

	for !cur.EndOfTable() {
		row, err := cur.Value()
		if err != nil {
			return err
		}
		emit(fmt.Sprintf("%d %s %s", row.ID, row.UsernameString(), row.EmailString()))
		if err := cur.Advance(); err != nil {
			return err
		}
	}
	return nil
}
