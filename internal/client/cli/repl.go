package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests provide a lightweight
// stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context) error
	Profile(ctx context.Context) error
	Compose(ctx context.Context) error
	Delete(ctx context.Context) error
	Favorite(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("storydeck (%s) > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (f)eed, favorites, mine, profile, add, delete, fav, logout, exit")
			} else {
				printlnFn("Available commands: (f)eed, login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register", "signup":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "add":
			_ = a.Compose(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
