package main

import (
	"strconv"
	"strings"

	"simpledb/errs"
	"simpledb/table"
)

// StatementType names the one of two statements the parser recognizes.
type StatementType int

const (
	StatementInsert StatementType = iota
	StatementSelect
)

// Statement is the parsed, type-checked form of one input line, ready
// for the executor.
type Statement struct {
	Type        StatementType
	RowToInsert table.Row
}

// prepareStatement turns an input line into a Statement, or an *errs.Error
// describing why it could not. "insert" lines are further parsed and
// validated by prepareInsert; "select" takes no arguments.
func prepareStatement(input string, stmt *Statement) error {
	switch {
	case strings.HasPrefix(input, "insert"):
		return prepareInsert(input, stmt)
	case input == "select":
		stmt.Type = StatementSelect
		return nil
	default:
		return errs.New(errs.KindUnrecognizedStatement, "unrecognized keyword at start of '"+input+"'")
	}
}

// prepareInsert parses "insert <id> <username> <email>", validating id
// is a non-negative integer and that both strings fit their columns.
func prepareInsert(input string, stmt *Statement) error {
	fields := strings.Fields(input)
	if len(fields) != 4 {
		return errs.New(errs.KindPrepareSyntax, "syntax error")
	}

	id, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return errs.New(errs.KindPrepareSyntax, "syntax error")
	}
	if id < 0 {
		return errs.New(errs.KindNegativeID, "id must be positive")
	}

	row, err := table.NewRow(uint32(id), fields[2], fields[3])
	if err != nil {
		return err
	}

	stmt.Type = StatementInsert
	stmt.RowToInsert = row
	return nil
}

// executeStatement runs a prepared statement against t, printing its
// result rows (for select) through printLine.
func executeStatement(stmt *Statement, t *table.Table) error {
	switch stmt.Type {
	case StatementInsert:
		return table.ExecuteInsert(t, stmt.RowToInsert)
	case StatementSelect:
		return table.ExecuteSelect(t, printLine)
	}
	return nil
}
