package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// EmptyListText is shown instead of the table when no user is visible.
const EmptyListText = "No users found."

const columnGap = "  "

// terminalWidth is a test seam. It returns 0 when f is not a terminal, which
// disables truncation.
var terminalWidth = func(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// RenderUserList writes the title with the visible count followed by one row
// per user, or EmptyListText. Columns are aligned by display width so wide
// runes line up. Lines longer than width are truncated; width <= 0 disables
// truncation.
func RenderUserList(w io.Writer, users []models.User, width int) {
	fprintln(w, fmt.Sprintf("User List (%d)", len(users)))
	if len(users) == 0 {
		fprintln(w, EmptyListText)
		return
	}

	rows := make([][]string, 0, len(users)+1)
	rows = append(rows, []string{"ID", "NAME", "EMAIL", "PHONE"})
	for _, u := range users {
		rows = append(rows, []string{u.ID, u.Name, u.Email, u.PhoneNumber})
	}

	widths := make([]int, len(rows[0]))
	for _, r := range rows {
		for i, cell := range r {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, r := range rows {
		var b strings.Builder
		for i, cell := range r {
			if i == len(r)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString(columnGap)
		}

		line := b.String()
		if width > 0 && runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "…")
		}
		fprintln(w, line)
	}
}

// RenderForm writes the current form fields.
func RenderForm(w io.Writer, name, email, phone string) {
	fprintln(w, "Add User")
	fprintln(w, "  Name:  "+placeholder(name, "Enter Name"))
	fprintln(w, "  Email: "+placeholder(email, "Enter Email"))
	fprintln(w, "  Phone: "+placeholder(phone, "Enter Phone"))
}

func placeholder(v, hint string) string {
	if v == "" {
		return "<" + hint + ">"
	}
	return v
}
