package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace
// it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The
// real App type satisfies this interface; tests provide a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Delete(ctx context.Context) error
	Toggle(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Logged-out commands: register, login, google, exit.
// Logged-in commands: (l)ist, add, delete, toggle, whoami, logout, exit.
//
// Errors returned by command handlers are ignored here; handlers and
// the session manager surface their own notifications. This keeps the
// loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: (l)ist, add, delete, toggle, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, google, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.Google(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "toggle":
			_ = a.Toggle(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
