//go:build unix

package sys

import (
	"os"
	"testing"
	"time"
)

func TestPoll_ReportsReadyData(t *testing.T) {
	r, w := mustPipe(t)

	w.WriteString("x")
	ready, err := Poll(int(r.Fd()), -1)
	if err != nil {
		t.Fatalf("Poll => error %v", err)
	}
	if !ready {
		t.Errorf("Poll => not ready, want ready")
	}
}

func TestPoll_ZeroTimeoutDoesNotBlock(t *testing.T) {
	r, _ := mustPipe(t)

	before := time.Now()
	ready, err := Poll(int(r.Fd()), 0)
	if err != nil {
		t.Fatalf("Poll => error %v", err)
	}
	if ready {
		t.Errorf("Poll => ready on empty pipe")
	}
	if elapsed := time.Since(before); elapsed > time.Second {
		t.Errorf("Poll with zero timeout took %v", elapsed)
	}
}

func TestPoll_ReportsClosedWriteEnd(t *testing.T) {
	r, w := mustPipe(t)

	// End-of-stream surfaces as POLLHUP, not POLLIN. It still counts as
	// ready, so the caller's read can observe the zero-byte result.
	w.Close()
	ready, err := Poll(int(r.Fd()), -1)
	if err != nil {
		t.Fatalf("Poll => error %v", err)
	}
	if !ready {
		t.Errorf("Poll => not ready on closed write end, want ready")
	}
}

func TestPoll_TimeoutExpires(t *testing.T) {
	r, _ := mustPipe(t)

	ready, err := Poll(int(r.Fd()), 10)
	if err != nil {
		t.Fatalf("Poll => error %v", err)
	}
	if ready {
		t.Errorf("Poll => ready on empty pipe")
	}
}

func mustPipe(t *testing.T) (*os.File, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}
