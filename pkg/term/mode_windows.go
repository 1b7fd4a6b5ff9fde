//go:build windows

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"

	"github.com/Sapiet1/in-keys/pkg/sys"
)

// setupMode snapshots the console mode of file, applies the requested flags
// and returns a function that restores the snapshot. The caller must run the
// restore function exactly once, on every exit path. When flush is set, input
// buffered before the mode change is discarded.
func setupMode(file *os.File, flush bool, flags ...Flag) (restore func() error, err error) {
	handle := windows.Handle(file.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return nil, fmt.Errorf("query console mode: %w", err)
	}
	saved := mode

	for _, flag := range flags {
		switch flag {
		case Canonical:
			mode |= windows.ENABLE_LINE_INPUT
		case NotCanonical:
			mode &^= windows.ENABLE_LINE_INPUT
		case Echo:
			mode |= windows.ENABLE_ECHO_INPUT
		case NotEcho:
			mode &^= windows.ENABLE_ECHO_INPUT
		}
	}

	if flush {
		if err := sys.FlushInput(int(file.Fd())); err != nil {
			return nil, fmt.Errorf("flush console input: %w", err)
		}
	}
	if err := windows.SetConsoleMode(handle, mode); err != nil {
		return nil, fmt.Errorf("set console mode: %w", err)
	}

	return func() error {
		if err := windows.SetConsoleMode(handle, saved); err != nil {
			return fmt.Errorf("restore console mode: %w", err)
		}
		return nil
	}, nil
}
