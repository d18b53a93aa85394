package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is what the REPL dispatches to: the session actions behind
// login/retry and continue, the recipe printout and a screen redraw.
// App implements it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Continue(ctx context.Context) error
	Today(ctx context.Context) error
	Show(ctx context.Context) error
}

var _ execIface = (*App)(nil)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF, on a cancelled ctx or when the user types "exit"
// or "quit".
//
// Commands
//
//	Logged out:
//	  - login | retry  sign in with Google
//	Logged in:
//	  - continue       leave the welcome screen
//	  - today          print the recipe of the day
//	Always:
//	  - status         redraw the current screen
//	  - help           show available commands
//	  - exit | quit    leave the program
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "keto365 %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return
		}
		eof := err != nil

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if eof {
				fmt.Fprintln(out)
				return
			}
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Comandos disponibles: continue, today, status, exit")
			} else {
				fmt.Fprintln(out, "Comandos disponibles: login, retry, status, exit")
			}

		case "login", "retry":
			cmdErr = a.Login(ctx)

		case "continue":
			cmdErr = a.Continue(ctx)

		case "today":
			cmdErr = a.Today(ctx)

		case "status":
			cmdErr = a.Show(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "¡Hasta pronto!")
			return

		default:
			fmt.Fprintln(out, "Comando desconocido:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
		if eof {
			return
		}
	}
}
