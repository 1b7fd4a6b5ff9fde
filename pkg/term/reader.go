package term

import (
	"os"
	"time"

	"github.com/Sapiet1/in-keys/pkg/key"
	"github.com/Sapiet1/in-keys/pkg/sys"
)

// A Reader decodes key and line input from a terminal file. At most one read
// operation may be in flight on a Reader at a time; reads mutate the
// terminal's line discipline for their duration and must not interleave.
type Reader struct {
	fr *fileReader
}

// NewReader returns a Reader on the given file. It returns ErrNotAttended
// when the file is not attached to an interactive terminal.
func NewReader(file *os.File) (*Reader, error) {
	if !sys.IsATTY(file) {
		return nil, ErrNotAttended
	}
	return &Reader{&fileReader{file}}, nil
}

// Stdin returns a Reader on standard input.
func Stdin() (*Reader, error) {
	return NewReader(os.Stdin)
}

// ReadKey reads one key, blocking until input arrives.
func (rd *Reader) ReadKey() (key.Key, error) {
	return runBlocking(rd.fr, keySpec)
}

// ReadKeyTimeout reads one key, waiting up to d for input. It returns
// ok = false when the wait expires with nothing to read.
func (rd *Reader) ReadKeyTimeout(d time.Duration) (k key.Key, ok bool, err error) {
	return runTimeout(rd.fr, keySpec, d)
}

// ReadKeyOp starts a cooperative key read. See Op.
func (rd *Reader) ReadKeyOp() *Op[key.Key] {
	return &Op[key.Key]{fr: rd.fr, spec: keySpec}
}

// ReadLine reads one line of input, blocking until it arrives. The line is
// returned without its terminator.
func (rd *Reader) ReadLine() (string, error) {
	return runBlocking(rd.fr, lineSpec)
}

// ReadLineTimeout reads one line, waiting up to d for input to arrive. It
// returns ok = false when the wait expires with nothing to read.
func (rd *Reader) ReadLineTimeout(d time.Duration) (line string, ok bool, err error) {
	return runTimeout(rd.fr, lineSpec, d)
}

// ReadLineOp starts a cooperative line read. See Op.
func (rd *Reader) ReadLineOp() *Op[string] {
	return &Op[string]{fr: rd.fr, spec: lineSpec}
}

// ReadLineHidden reads one line without echoing it, discarding any input
// buffered before the read starts. It blocks until the line arrives.
func (rd *Reader) ReadLineHidden() (string, error) {
	return runBlocking(rd.fr, hiddenLineSpec)
}

// ReadLineHiddenTimeout is ReadLineHidden with a bounded wait. It returns
// ok = false when the wait expires with nothing to read.
func (rd *Reader) ReadLineHiddenTimeout(d time.Duration) (line string, ok bool, err error) {
	return runTimeout(rd.fr, hiddenLineSpec, d)
}

// ReadLineHiddenOp starts a cooperative hidden line read. See Op.
func (rd *Reader) ReadLineHiddenOp() *Op[string] {
	return &Op[string]{fr: rd.fr, spec: hiddenLineSpec}
}

// Size returns the number of rows and columns of the terminal attached to
// file. ok is false when the size cannot be determined or the terminal
// reports a zero dimension.
func Size(file *os.File) (rows, cols int, ok bool) {
	rows, cols, err := sys.WinSize(file)
	if err != nil || rows == 0 || cols == 0 {
		return 0, 0, false
	}
	return rows, cols, true
}
