package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Upload(ctx context.Context) error
	PutSecret(ctx context.Context) error
	Download(ctx context.Context) error
	List(ctx context.Context) error
	Shared(ctx context.Context) error
	Share(ctx context.Context) error
	Unshare(ctx context.Context) error
	Offload(ctx context.Context) error
	Fetch(ctx context.Context) error
	Delete(ctx context.Context) error
	Ping(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FileVault CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fv> %s > ", statusFn()))
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
				printlnFn("Available commands: upload, putsecret, get, (l)ist, shared, share, unshare, offload, fetch, rm, ping, exit")
			} else {
				printlnFn("Available commands: login, ping, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "putsecret":
			_ = a.PutSecret(ctx)

		case "get", "download":
			_ = a.Download(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "shared":
			_ = a.Shared(ctx)

		case "share":
			_ = a.Share(ctx)

		case "unshare":
			_ = a.Unshare(ctx)

		case "offload":
			_ = a.Offload(ctx)

		case "fetch":
			_ = a.Fetch(ctx)

		case "rm", "delete":
			_ = a.Delete(ctx)

		case "ping":
			_ = a.Ping(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
