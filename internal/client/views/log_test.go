package views

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/logging"
)

// bufferLogger returns a debug-level text logger and the buffer it writes to.
func bufferLogger(t *testing.T) (logging.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logging.NewTextLogger(&buf, "debug"), &buf
}
