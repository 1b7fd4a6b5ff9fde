//go:build unix

// Copyright 2015 go-termios Author. All Rights Reserved.
// https://github.com/go-termios/termios
// Author: John Lenton <chipaca@github.com>

package sys

import (
	"golang.org/x/sys/unix"
)

// Termios wraps the terminal line-discipline attributes of a file descriptor.
type Termios unix.Termios

// Moments at which attribute changes take effect, mirroring the tcsetattr
// actions.
const (
	AttrNow   = iota // change immediately
	AttrDrain        // change after pending output is written
	AttrFlush        // like AttrDrain, but also discard unread input
)

// TermiosFromFd extracts the terminal attributes of the given file
// descriptor.
func TermiosFromFd(fd int) (*Termios, error) {
	term, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	return (*Termios)(term), nil
}

// ApplyToFd applies the attributes to the given file descriptor at the given
// moment (AttrNow, AttrDrain or AttrFlush).
func (term *Termios) ApplyToFd(fd int, when int) error {
	return unix.IoctlSetTermios(fd, setAttrIOCTL[when], (*unix.Termios)(term))
}

// Copy returns a copy of the attributes, suitable for restoring later.
func (term *Termios) Copy() *Termios {
	v := *term
	return &v
}

// SetICanon sets the canonical (line-buffered) flag.
func (term *Termios) SetICanon(v bool) {
	setFlag(&term.Lflag, unix.ICANON, v)
}

// SetEcho sets the echo flag.
func (term *Termios) SetEcho(v bool) {
	setFlag(&term.Lflag, unix.ECHO, v)
}

// The type of Termios.Lflag differs across Unices (uint32 on Linux, uint64 on
// the BSDs), hence the type parameter.
func setFlag[T ~uint32 | ~uint64](flag *T, mask T, v bool) {
	if v {
		*flag |= mask
	} else {
		*flag &= ^mask
	}
}
