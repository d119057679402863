package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Retry(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Capture(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Download(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Support(ctx context.Context) error
}

const helpText = "Available commands: (l)ist, refresh, retry, upload <path>, capture, show <id>, download <id>, delete <id>, support, exit"

// runREPL starts a simple read-eval-print loop for the medianest shell.
//
// It reads a line from reader, writes prompts and messages to out, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Commands
//
//	help               show available commands
//	list | l           show the gallery
//	refresh            reload the gallery
//	retry              reload after a failed load
//	upload <path>      upload an image file (runs in the background)
//	capture            take a photo and upload it (runs in the background)
//	show <id>          show image details
//	download <id>      save the full resolution image
//	delete <id>        delete an image (asks for the PIN)
//	support            how to get the delete PIN
//	exit | quit        leave the program
//
// Uploads run concurrently with the loop so the gallery can be browsed while
// one is in flight. The loop waits for them before returning. Errors from
// handlers are ignored here; handlers report their own outcome.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	printLine := func(args ...any) {
		fmt.Fprintln(out, args...)
	}

	var uploads sync.WaitGroup
	defer uploads.Wait()

	background := func(fn func() error) {
		uploads.Add(1)
		go func() {
			defer uploads.Done()
			_ = fn()
		}()
	}

	for {
		printLine(fmt.Sprintf("medianest %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		needArg := func(usage string) (string, bool) {
			if len(args) == 0 {
				printLine("Usage:", usage)
				return "", false
			}
			return args[0], true
		}

		switch cmd {
		case "help":
			printLine(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "retry":
			_ = a.Retry(ctx)

		case "upload":
			if len(args) == 0 {
				printLine("Usage: upload <path>")
				continue
			}
			path := strings.Join(args, " ")
			background(func() error { return a.Upload(ctx, path) })

		case "capture":
			background(func() error { return a.Capture(ctx) })

		case "show":
			if id, ok := needArg("show <id>"); ok {
				_ = a.Show(ctx, id)
			}

		case "download":
			if id, ok := needArg("download <id>"); ok {
				_ = a.Download(ctx, id)
			}

		case "delete":
			if id, ok := needArg("delete <id>"); ok {
				_ = a.Delete(ctx, id)
			}

		case "support":
			_ = a.Support(ctx)

		case "exit", "quit":
			printLine("Bye!")
			return

		default:
			printLine("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
