package term

// Flag names a line-discipline state to apply while a read is in flight.
// Callers pass the desired final state; of each pair only the last flag given
// takes effect. On Unix the canonical pair maps to the ICANON termios flag,
// on Windows to the console's line-input mode, which are equivalent
// disciplines.
type Flag int

const (
	// Canonical buffers input by line, with line editing.
	Canonical Flag = iota
	// NotCanonical delivers input byte by byte.
	NotCanonical
	// Echo writes input back to the terminal as it is typed.
	Echo
	// NotEcho suppresses the echoing of input.
	NotEcho
)
