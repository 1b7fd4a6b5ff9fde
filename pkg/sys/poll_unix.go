//go:build unix

package sys

import "golang.org/x/sys/unix"

// Poll waits for the file descriptor to become ready for reading. The timeout
// is in milliseconds; 0 checks without blocking and a negative value blocks
// until readiness. An expired timeout reports false with a nil error.
//
// Interrupted waits are transparently restarted, so a false return always
// means the full wait window elapsed.
//
// A hung-up or errored descriptor also counts as ready. The kernel reports
// end-of-stream with POLLHUP and no POLLIN, and the caller finds out by
// reading zero bytes.
func Poll(fd int, timeout int) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeout)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		const readable = unix.POLLIN | unix.POLLHUP | unix.POLLERR
		return n > 0 && fds[0].Revents&readable != 0, nil
	}
}
