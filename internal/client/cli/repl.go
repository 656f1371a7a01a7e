package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	AddUser(ctx context.Context) error
	SetField(field, value string)
	Submit(ctx context.Context) error
	ShowForm()
	List(ctx context.Context) error
	Search(term string)
	Delete(ctx context.Context, id string) error
}

const helpText = `Available commands:
  add                 fill in and submit the add-user form
  name|email|phone v  set a form field
  form                show the form
  submit              submit the form
  (l)ist              load and show the user list
  (s)earch [term]     filter the list by name or email (empty clears)
  (d)elete <id>       delete a user
  exit | quit         leave the program`

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. Unknown commands are reported back to the user.
// The loop exits on EOF, when the user types "exit" or "quit", or once ctx is
// done.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own feedback. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		_, _ = fmt.Fprint(out, "users> ")
		line, err := readLine(reader)
		if err != nil {
			return
		}

		if line == "" {
			continue
		}
		cmd, arg := splitCommand(line)

		switch cmd {
		case "help":
			fprintln(out, helpText)

		case "add":
			_ = a.AddUser(ctx)

		case "name", "email", "phone":
			a.SetField(cmd, arg)

		case "form":
			a.ShowForm()

		case "submit":
			_ = a.Submit(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "s", "search":
			a.Search(arg)

		case "d", "delete":
			id, _ := splitCommand(arg)
			if id == "" {
				fprintln(out, "Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, id)

		case "exit", "quit":
			fprintln(out, "Bye!")
			return

		default:
			fprintln(out, "Unknown command:", cmd)
		}
	}
}

// splitCommand separates the first word of line from the rest. The rest keeps
// its inner whitespace; only the separator after the command is dropped.
func splitCommand(line string) (cmd, rest string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimLeft(line[i:], " \t")
}
