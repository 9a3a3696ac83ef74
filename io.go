package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func printPrompt() {
	fmt.Print("db > ")
}

func readInput(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// fatal logs a structural failure and aborts the process. It is reached
// for kinds §7 classifies as fatal (a corrupt file, an I/O failure, a page
// number out of bounds, or an attempted internal-node split) and when
// reading a line from standard input fails, end of input included.
func fatal(err error) {
	logrus.WithError(err).Fatal("simpledb: unrecoverable error")
}
