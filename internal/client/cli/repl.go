package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, n int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Buy(ctx context.Context, id string) error
	Rent(ctx context.Context, id string, dates []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Transactions(ctx context.Context, tab string) error
	Profile(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, register, go <path>, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, page <n>, next, prev, show <id>, buy <id>, rent <id> <start> <end>, " +
		"add, edit <id>, delete <id>, tx [bought|sold|borrowed|lent], profile [edit], go <path>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the Teebay CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands and missing arguments are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("teebay> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "go":
			if usage(args, 1, "go <path>") {
				_ = a.Go(ctx, args[0])
			}

		case "login":
			_ = a.Login(ctx)

		case "register", "signup":
			_ = a.Register(ctx)

		case "l", "list", "products":
			_ = a.List(ctx)

		case "page":
			if !usage(args, 1, "page <n>") {
				break
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				printlnFn("Page must be a positive number")
				break
			}
			_ = a.Page(ctx, n)

		case "next":
			_ = a.Next(ctx)

		case "prev":
			_ = a.Prev(ctx)

		case "show":
			if usage(args, 1, "show <id>") {
				_ = a.Show(ctx, args[0])
			}

		case "buy":
			if usage(args, 1, "buy <id>") {
				_ = a.Buy(ctx, args[0])
			}

		case "rent":
			if usage(args, 1, "rent <id> [<start> <end>]") {
				_ = a.Rent(ctx, args[0], args[1:])
			}

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if usage(args, 1, "edit <id>") {
				_ = a.Edit(ctx, args[0])
			}

		case "delete":
			if usage(args, 1, "delete <id>") {
				_ = a.Delete(ctx, args[0])
			}

		case "tx", "transactions":
			tab := ""
			if len(args) > 0 {
				tab = args[0]
			}
			_ = a.Transactions(ctx, tab)

		case "profile":
			_ = a.Profile(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// usage reports whether args has at least n entries, printing the usage
// line when it does not.
func usage(args []string, n int, line string) bool {
	if len(args) < n {
		printlnFn("Usage:", line)
		return false
	}
	return true
}
