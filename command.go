package main

import (
	"fmt"
	"os"

	"simpledb/table"
)

// MetaCommandResult reports how a dot-prefixed input line was handled.
type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandUnrecognized
)

// doMetaCommand dispatches `.exit`, `.btree` and `.constants`. `.exit`
// flushes and closes the table and terminates the process directly, the
// same way the reference REPL does.
func doMetaCommand(input string, t *table.Table) MetaCommandResult {
	switch input {
	case ".exit":
		if err := t.Close(); err != nil {
			fatal(err)
		}
		os.Exit(0)
	case ".btree":
		fmt.Println("Tree:")
		if err := table.PrintTree(t, t.RootPageNum(), 0, printLine); err != nil {
			fatal(err)
		}
	case ".constants":
		fmt.Println("Constants:")
		table.PrintConstants(printLine)
	default:
		return MetaCommandUnrecognized
	}
	return MetaCommandSuccess
}

func printLine(line string) { fmt.Println(line) }
