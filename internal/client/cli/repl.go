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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Events(ctx context.Context) error
	Attend(ctx context.Context) error
	Submissions(ctx context.Context) error
	Submit(ctx context.Context) error
	Assign(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SciCon CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - events         — browse published events
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — open the role dashboard
//	  - events         — browse published events
//	  - attend         — register attendance for an event
//	  - submissions    — list paper submissions
//	  - submit         — submit a paper
//	  - assign         — assign a reviewer to a submission
//	  - whoami         — show the current user
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("scicon %s> ", statusFn()))
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
				printlnFn("Available commands: dashboard, events, attend, submissions, submit, assign, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, events, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "events":
			_ = a.Events(ctx)

		case "attend":
			_ = a.Attend(ctx)

		case "submissions":
			_ = a.Submissions(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "assign":
			_ = a.Assign(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
