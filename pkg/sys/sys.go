// Package sys provides the OS capabilities the terminal reader is built on:
// readiness polling, line-discipline control, window size queries and
// attended-terminal detection. The Unix implementation uses poll(2) and
// termios; the Windows implementation uses the console API. The build selects
// exactly one of them.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY reports whether the given file is attached to an interactive
// terminal.
func IsATTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// WinSize queries the size of the terminal referenced by the given file.
func WinSize(file *os.File) (row, col int, err error) {
	return winSize(file)
}

// FlushInput discards any input that has been received but not yet read on
// the terminal referenced by fd.
func FlushInput(fd int) error {
	return flushInput(fd)
}
