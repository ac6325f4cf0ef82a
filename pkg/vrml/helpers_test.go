package vrml

import (
	"bytes"
	"strings"
	"testing"
)

// testLogger returns a debug-level logger writing into a buffer so tests
// can assert on emitted diagnostics.
func testLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewLogger(&buf, LogDebug), &buf
}

func assertLogged(t *testing.T, buf *bytes.Buffer, substr string) {
	t.Helper()
	if !strings.Contains(buf.String(), substr) {
		t.Errorf("expected log output to contain %q, got:\n%s", substr, buf.String())
	}
}
