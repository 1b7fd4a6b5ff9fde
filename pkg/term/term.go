// Package term reads logical key and line input from an interactive
// terminal.
//
// Reads come in three disciplines built over one readiness primitive:
// blocking, timeout-bounded, and cooperative single-step (see Op). Each read
// temporarily switches the terminal's line discipline to the mode it needs
// and restores the previous mode when it finishes, however it finishes.
//
// The package also provides a Writer for emitting text and the common VT100
// control sequences.
package term

import (
	"errors"

	"github.com/Sapiet1/in-keys/pkg/logutil"
)

var logger = logutil.GetLogger("[term] ")

// ErrNotAttended is returned when the input file is not attached to an
// interactive terminal. Reads are unavailable in that case; this is a
// distinct condition from an I/O error.
var ErrNotAttended = errors.New("input is not an interactive terminal")

// ErrInterrupted is returned when the terminal's interrupt character (^C) is
// read. It aborts the read in progress immediately, even in the middle of an
// escape or multi-byte sequence.
var ErrInterrupted = errors.New("interrupted")
