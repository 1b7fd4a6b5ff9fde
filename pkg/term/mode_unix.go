//go:build unix

package term

import (
	"fmt"
	"os"

	"github.com/Sapiet1/in-keys/pkg/sys"
)

// setupMode snapshots the terminal attributes of file, applies the requested
// flags and returns a function that restores the snapshot. The caller must
// run the restore function exactly once, on every exit path. When flush is
// set, input buffered before the mode change is discarded instead of drained,
// so stray keystrokes cannot leak into the upcoming read.
//
// A failed attribute query aborts before any mutation, so the terminal is
// never left half-changed.
func setupMode(file *os.File, flush bool, flags ...Flag) (restore func() error, err error) {
	fd := int(file.Fd())
	attrs, err := sys.TermiosFromFd(fd)
	if err != nil {
		return nil, fmt.Errorf("query terminal attributes: %w", err)
	}
	saved := attrs.Copy()

	for _, flag := range flags {
		switch flag {
		case Canonical:
			attrs.SetICanon(true)
		case NotCanonical:
			attrs.SetICanon(false)
		case Echo:
			attrs.SetEcho(true)
		case NotEcho:
			attrs.SetEcho(false)
		}
	}

	apply := sys.AttrDrain
	if flush {
		apply = sys.AttrFlush
	}
	if err := attrs.ApplyToFd(fd, apply); err != nil {
		return nil, fmt.Errorf("set terminal attributes: %w", err)
	}

	return func() error {
		when := sys.AttrNow
		if flush {
			when = sys.AttrFlush
		}
		if err := saved.ApplyToFd(fd, when); err != nil {
			return fmt.Errorf("restore terminal attributes: %w", err)
		}
		return nil
	}, nil
}
