//go:build unix

package term

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"

	"github.com/Sapiet1/in-keys/pkg/key"
	"github.com/Sapiet1/in-keys/pkg/must"
	"github.com/Sapiet1/in-keys/pkg/sys"
)

func TestNewReader_NotTerminal(t *testing.T) {
	r, _ := must.Pipe()
	t.Cleanup(func() { r.Close() })

	_, err := NewReader(r)
	if !errors.Is(err, ErrNotAttended) {
		t.Errorf("NewReader(pipe) => error %v, want %v", err, ErrNotAttended)
	}
}

func TestReadKey_TTY(t *testing.T) {
	rd, ptmx, _ := setupTTY(t)

	ptmx.WriteString("x")
	k, err := rd.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey => error %v", err)
	}
	if k != key.Char('x') {
		t.Errorf("ReadKey => %v, want %v", k, key.Char('x'))
	}
}

func TestReadKeyTimeout(t *testing.T) {
	rd, ptmx, _ := setupTTY(t)

	ptmx.WriteString("y")
	k, ok, err := rd.ReadKeyTimeout(5 * time.Second)
	if err != nil || !ok {
		t.Fatalf("ReadKeyTimeout => (%v, %v, %v)", k, ok, err)
	}
	if k != key.Char('y') {
		t.Errorf("ReadKeyTimeout => %v, want %v", k, key.Char('y'))
	}
}

func TestReadKeyTimeout_NoInput(t *testing.T) {
	rd, _, _ := setupTTY(t)

	before := time.Now()
	_, ok, err := rd.ReadKeyTimeout(0)
	if err != nil {
		t.Fatalf("ReadKeyTimeout => error %v", err)
	}
	if ok {
		t.Errorf("ReadKeyTimeout => ok on empty input")
	}
	if elapsed := time.Since(before); elapsed > time.Second {
		t.Errorf("ReadKeyTimeout(0) took %v", elapsed)
	}

	if _, ok, err := rd.ReadKeyTimeout(10 * time.Millisecond); ok || err != nil {
		t.Errorf("ReadKeyTimeout => (ok %v, err %v), want expired wait", ok, err)
	}
}

func TestReadKeyOp(t *testing.T) {
	rd, ptmx, _ := setupTTY(t)

	op := rd.ReadKeyOp()
	// No input pending: every step reports not done, without blocking.
	for i := 0; i < 3; i++ {
		_, done, err := op.Step()
		if err != nil {
			t.Fatalf("Step => error %v", err)
		}
		if done {
			t.Fatal("Step => done with no input pending")
		}
	}

	ptmx.WriteString("z")
	deadline := time.Now().Add(5 * time.Second)
	for {
		k, done, err := op.Step()
		if err != nil {
			t.Fatalf("Step => error %v", err)
		}
		if done {
			if k != key.Char('z') {
				t.Errorf("Step => %v, want %v", k, key.Char('z'))
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Step never completed after input arrived")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestReadKeyOp_ModeHeldAcrossSteps(t *testing.T) {
	rd, _, tty := setupTTY(t)
	fd := int(tty.Fd())
	saved := must.OK1(sys.TermiosFromFd(fd))

	op := rd.ReadKeyOp()
	if _, done, err := op.Step(); done || err != nil {
		t.Fatalf("Step => (done %v, err %v)", done, err)
	}
	// The first step switched the terminal out of canonical mode and the
	// mode stays held while the operation is pending.
	during := must.OK1(sys.TermiosFromFd(fd))
	if during.Lflag&unix.ICANON != 0 {
		t.Error("canonical mode still set during pending op")
	}

	if err := op.Close(); err != nil {
		t.Fatalf("Close => error %v", err)
	}
	assertModeRestored(t, fd, saved)

	// Closing again is a no-op.
	if err := op.Close(); err != nil {
		t.Errorf("second Close => error %v", err)
	}
}

func TestModeRestoredAfterReads(t *testing.T) {
	rd, ptmx, tty := setupTTY(t)
	fd := int(tty.Fd())
	saved := must.OK1(sys.TermiosFromFd(fd))

	if _, ok, err := rd.ReadKeyTimeout(0); ok || err != nil {
		t.Fatalf("ReadKeyTimeout => (ok %v, err %v)", ok, err)
	}
	assertModeRestored(t, fd, saved)

	ptmx.WriteString("k")
	if _, err := rd.ReadKey(); err != nil {
		t.Fatalf("ReadKey => error %v", err)
	}
	assertModeRestored(t, fd, saved)

	if _, ok, err := rd.ReadLineTimeout(0); ok || err != nil {
		t.Fatalf("ReadLineTimeout => (ok %v, err %v)", ok, err)
	}
	assertModeRestored(t, fd, saved)

	if _, ok, err := rd.ReadLineHiddenTimeout(0); ok || err != nil {
		t.Fatalf("ReadLineHiddenTimeout => (ok %v, err %v)", ok, err)
	}
	assertModeRestored(t, fd, saved)
}

func TestReadLine_TTY(t *testing.T) {
	rd, ptmx, _ := setupTTY(t)

	ptmx.WriteString("hello\n")
	line, err := rd.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine => error %v", err)
	}
	if line != "hello" {
		t.Errorf("ReadLine => %q, want %q", line, "hello")
	}
}

func TestReadLineHidden_FlushesPendingInput(t *testing.T) {
	rd, ptmx, tty := setupTTY(t)

	// A complete line is already buffered when the hidden read starts; the
	// flush on entry must discard it.
	ptmx.WriteString("stale\n")
	waitReadable(t, tty)
	if line, ok, err := rd.ReadLineHiddenTimeout(50 * time.Millisecond); ok || err != nil {
		t.Fatalf("ReadLineHiddenTimeout => (%q, %v, %v), want flushed input", line, ok, err)
	}

	type result struct {
		line string
		ok   bool
		err  error
	}
	results := make(chan result, 1)
	go func() {
		line, ok, err := rd.ReadLineHiddenTimeout(5 * time.Second)
		results <- result{line, ok, err}
	}()
	// Give the read time to flush and change modes before typing.
	time.Sleep(100 * time.Millisecond)
	ptmx.WriteString("secret\n")

	res := <-results
	if res.err != nil || !res.ok {
		t.Fatalf("ReadLineHiddenTimeout => (ok %v, err %v)", res.ok, res.err)
	}
	if res.line != "secret" {
		t.Errorf("ReadLineHiddenTimeout => %q, want %q", res.line, "secret")
	}
}

func TestSize(t *testing.T) {
	_, _, tty := setupTTY(t)

	must.OK(pty.Setsize(tty, &pty.Winsize{Rows: 24, Cols: 80}))
	rows, cols, ok := Size(tty)
	if !ok {
		t.Fatal("Size => not ok")
	}
	if rows != 24 || cols != 80 {
		t.Errorf("Size => (%d, %d), want (24, 80)", rows, cols)
	}

	// A zero dimension means the size is unavailable.
	must.OK(pty.Setsize(tty, &pty.Winsize{}))
	if _, _, ok := Size(tty); ok {
		t.Error("Size => ok with zero dimensions")
	}
}

func setupTTY(t *testing.T) (*Reader, *os.File, *os.File) {
	t.Helper()
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("cannot open pty: %v", err)
	}
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})
	rd, err := NewReader(tty)
	if err != nil {
		t.Fatalf("NewReader => error %v", err)
	}
	return rd, ptmx, tty
}

func assertModeRestored(t *testing.T, fd int, saved *sys.Termios) {
	t.Helper()
	now := must.OK1(sys.TermiosFromFd(fd))
	if diff := cmp.Diff(*saved, *now); diff != "" {
		t.Errorf("terminal mode not restored (-saved +now):\n%s", diff)
	}
}

func waitReadable(t *testing.T, file *os.File) {
	t.Helper()
	ready, err := sys.Poll(int(file.Fd()), 5000)
	if err != nil || !ready {
		t.Fatalf("input never became readable (ready %v, err %v)", ready, err)
	}
}
