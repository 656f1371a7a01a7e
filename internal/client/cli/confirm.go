package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// PromptConfirmer asks yes/no questions on the terminal. Only "y" or "yes"
// (any case) confirm; everything else, including an empty line, declines.
type PromptConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptConfirmer(r *bufio.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: r, out: out}
}

func (p *PromptConfirmer) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(p.out, "%s [y/N] ", message); err != nil {
		return false, err
	}

	answer, err := readLine(p.reader)
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
