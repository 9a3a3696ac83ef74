package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"simpledb/errs"
	"simpledb/table"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("No database filename supplied.")
		os.Exit(1)
	}

	t, err := table.OpenTable(os.Args[1])
	if err != nil {
		fatal(err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		printPrompt()
		input, err := readInput(reader)
		if err != nil {
			fatal(err)
		}

		if strings.HasPrefix(input, ".") {
			if doMetaCommand(input, t) == MetaCommandUnrecognized {
				fmt.Printf("Unrecognized command '%s'\n", input)
			}
			continue
		}

		var stmt Statement
		if err := prepareStatement(input, &stmt); err != nil {
			printPrepareError(err, input)
			continue
		}

		if err := executeStatement(&stmt, t); err != nil {
			if errs.Is(err, errs.KindDuplicateKey) {
				fmt.Println("Error: Key already exists.")
				continue
			}
			if errs.Is(err, errs.KindTableFull) {
				fmt.Println("Error: Table full.")
				continue
			}
			fatal(err)
		}
		fmt.Println("Executed.")
	}
}

func printPrepareError(err error, input string) {
	switch {
	case errs.Is(err, errs.KindUnrecognizedStatement):
		fmt.Printf("Unrecognized keyword at start of '%s'.\n", input)
	case errs.Is(err, errs.KindStringTooLong):
		fmt.Println("String is too long.")
	case errs.Is(err, errs.KindNegativeID):
		fmt.Println("ID must be positive.")
	case errs.Is(err, errs.KindPrepareSyntax):
		fmt.Println("Syntax error. Could not parse statement.")
	default:
		fmt.Println(err)
	}
}
