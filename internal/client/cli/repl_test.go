package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls  []string
	fields map[string]string
	search []string
	ids    []string
}

func (f *fakeExec) AddUser(ctx context.Context) error { f.calls = append(f.calls, "add"); return nil }
func (f *fakeExec) SetField(field, value string) {
	f.calls = append(f.calls, "set")
	if f.fields == nil {
		f.fields = map[string]string{}
	}
	f.fields[field] = value
}
func (f *fakeExec) Submit(ctx context.Context) error { f.calls = append(f.calls, "submit"); return nil }
func (f *fakeExec) ShowForm()                        { f.calls = append(f.calls, "form") }
func (f *fakeExec) List(ctx context.Context) error   { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Search(term string) {
	f.calls = append(f.calls, "search")
	f.search = append(f.search, term)
}
func (f *fakeExec) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	f.ids = append(f.ids, id)
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"",
		"name Ann Lee",
		"email a@x.com",
		"phone 123",
		"form",
		"submit",
		"add",
		"list",
		"l",
		"search SMITH",
		"s",
		"delete",
		"delete 42",
		"d 7",
		"foobar",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, rdr(input), &out)

	assert.Equal(t, []string{
		"set", "set", "set", "form", "submit", "add",
		"list", "list", "search", "search", "delete", "delete",
	}, exec.calls)
	assert.Equal(t, map[string]string{"name": "Ann Lee", "email": "a@x.com", "phone": "123"}, exec.fields)
	assert.Equal(t, []string{"SMITH", ""}, exec.search)
	assert.Equal(t, []string{"42", "7"}, exec.ids)

	s := out.String()
	assert.Contains(t, s, "Available commands:")
	assert.Contains(t, s, "Usage: delete <id>")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_KeepsInnerWhitespace(t *testing.T) {
	input := strings.Join([]string{
		"name Ann  Lee",
		"email\ta@x.com",
		"phone  +1 555  0100",
		"search Ann  Lee",
		"delete  42  extra",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, rdr(input), &out)

	assert.Equal(t, map[string]string{"name": "Ann  Lee", "email": "a@x.com", "phone": "+1 555  0100"}, exec.fields)
	assert.Equal(t, []string{"Ann  Lee"}, exec.search)
	assert.Equal(t, []string{"42"}, exec.ids)
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		line, cmd, rest string
	}{
		{"list", "list", ""},
		{"search a  b", "search", "a  b"},
		{"name \t Ann", "name", "Ann"},
		{"d 7", "d", "7"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, rest := splitCommand(tt.line)
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.rest, rest)
		})
	}
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, rdr("list"), &out)

	assert.Equal(t, []string{"list"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, rdr("list\nlist\n"), &out)

	assert.Empty(t, exec.calls)
}
