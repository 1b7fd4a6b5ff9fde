//go:build linux || solaris

// Copyright 2015 go-termios Author. All Rights Reserved.
// https://github.com/go-termios/termios
// Author: John Lenton <chipaca@github.com>

package sys

import "golang.org/x/sys/unix"

const getAttrIOCTL = unix.TCGETS

var setAttrIOCTL = [...]uint{
	AttrNow:   unix.TCSETS,
	AttrDrain: unix.TCSETSW,
	AttrFlush: unix.TCSETSF,
}

func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}
