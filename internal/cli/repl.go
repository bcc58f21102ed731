package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Add(ctx context.Context, text string) error
	List(ctx context.Context, limit int) error
	ByDate(ctx context.Context, day string) error
	Status(ctx context.Context) error
}

// maxLineSize bounds a single input line, so long entries fit.
const maxLineSize = 16 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}

// readLines scans in its own goroutine so that a blocked read never holds up
// cancellation. errc receives scanner.Err() once input ends; lines is closed
// right after. Closing done stops the goroutine at its next line.
func readLines(scanner *bufio.Scanner, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// runREPL reads commands line by line and dispatches them to a.
//
// The loop exits on end of input, on "exit" or "quit", or as soon as ctx is
// done, even while waiting for input. A read error such as an over-long line
// is printed before returning. Handler errors are printed and the loop keeps
// going.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	done := make(chan struct{})
	defer close(done)

	lines, errc := readLines(scanner, done)

	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn("journal> ")

		var line string
		select {
		case <-ctx.Done():
			return
		case l, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					printlnFn("Error reading input:", err)
				}
				return
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}

		cmd, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		var err error
		switch cmd {
		case "help":
			printlnFn("Available commands: add <text>, (l)ist [n], date YYYY-MM-DD, status, exit")

		case "add":
			err = a.Add(ctx, rest)

		case "l", "list":
			limit := 0
			if rest != "" {
				limit, err = parseLimit(rest)
			}
			if err == nil {
				err = a.List(ctx, limit)
			}

		case "date":
			if rest == "" {
				printlnFn("Usage: date YYYY-MM-DD")
				continue
			}
			err = a.ByDate(ctx, rest)

		case "status":
			err = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
