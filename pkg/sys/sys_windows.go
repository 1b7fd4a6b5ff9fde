//go:build windows

package sys

import (
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procFlushConsoleInputBuffer = kernel32.NewProc("FlushConsoleInputBuffer")
)

// Poll waits for the console input handle to be signaled, meaning there are
// unread input records. The timeout is in milliseconds; 0 checks without
// blocking and a negative value blocks until readiness. An expired timeout
// reports false with a nil error.
func Poll(fd int, timeout int) (bool, error) {
	t := uint32(timeout)
	if timeout < 0 {
		t = windows.INFINITE
	}
	event, err := windows.WaitForSingleObject(windows.Handle(fd), t)
	if err != nil {
		return false, err
	}
	return event != uint32(windows.WAIT_TIMEOUT), nil
}

func winSize(file *os.File) (row, col int, err error) {
	var info windows.ConsoleScreenBufferInfo
	err = windows.GetConsoleScreenBufferInfo(windows.Handle(file.Fd()), &info)
	if err != nil {
		return 0, 0, err
	}
	window := info.Window
	return int(window.Bottom-window.Top) + 1, int(window.Right-window.Left) + 1, nil
}

func flushInput(fd int) error {
	r, _, err := procFlushConsoleInputBuffer.Call(uintptr(fd))
	if r == 0 {
		return err
	}
	return nil
}
