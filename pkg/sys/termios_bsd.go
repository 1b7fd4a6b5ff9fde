//go:build darwin || dragonfly || freebsd || netbsd || openbsd

// Copyright 2015 go-termios Author. All Rights Reserved.
// https://github.com/go-termios/termios
// Author: John Lenton <chipaca@github.com>

package sys

import "golang.org/x/sys/unix"

const getAttrIOCTL = unix.TIOCGETA

var setAttrIOCTL = [...]uint{
	AttrNow:   unix.TIOCSETA,
	AttrDrain: unix.TIOCSETAW,
	AttrFlush: unix.TIOCSETAF,
}

func flushInput(fd int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCFLUSH, unix.FREAD)
}
