package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printFn is a test seam for user-facing REPL output.
var printFn = fmt.Print

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, idArg string) error
	Delete(ctx context.Context, idArg string, assumeYes bool) error
	History(ctx context.Context, idArg string) error
}

// runREPL is the dashboard loop: it reads a line, parses the first token as
// the command, and dispatches to methods on a. Unknown commands are reported
// back. The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by the command handlers are ignored here; handlers report
// their own failures. That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printFn(fmt.Sprintf("stockctl%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printFn("Available commands: (l)ist [key=value ...], add, edit <id>, delete <id>, history <id>, logout, exit\n")
			} else {
				printFn("Available commands: register, login, exit\n")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			_ = a.Edit(ctx, firstArg(args))

		case "delete", "del":
			_ = a.Delete(ctx, firstArg(args), false)

		case "history":
			_ = a.History(ctx, firstArg(args))

		case "exit", "quit":
			printFn("Bye!\n")
			return

		default:
			printFn(fmt.Sprintf("Unknown command: %s\n", cmd))
		}
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
