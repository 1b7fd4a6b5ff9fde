package logutil

import (
	"io"
	"strings"
	"testing"
)

func TestGetLogger(t *testing.T) {
	logger := GetLogger("[test] ")
	var sb strings.Builder
	SetOutput(&sb)
	defer SetOutput(io.Discard)

	logger.Println("hello")
	if s := sb.String(); !strings.Contains(s, "[test] ") || !strings.Contains(s, "hello") {
		t.Errorf("logged %q, want prefix and message", s)
	}
}
