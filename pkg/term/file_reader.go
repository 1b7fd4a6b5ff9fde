package term

import (
	"io"
	"os"

	"github.com/Sapiet1/in-keys/pkg/sys"
)

// The terminal interrupt character, ^C.
const interruptByte = 0x03

// A fileReader reads raw bytes from a terminal file, gated on a readiness
// poll.
type fileReader struct {
	file *os.File
}

// poll reports whether at least one byte is ready to read. The timeout is in
// milliseconds; 0 checks without blocking and a negative value blocks until
// input arrives.
func (fr *fileReader) poll(timeout int) (bool, error) {
	return sys.Poll(int(fr.file.Fd()), timeout)
}

// readBytes reads up to n bytes, first waiting for readiness within the given
// timeout. It returns a nil slice with a nil error when nothing becomes ready
// in time. Once the poll reports ready the read is attempted unconditionally:
// terminal input is buffered by the OS, so readiness implies the bytes of the
// pending key or line are available in one read. The returned slice always
// has length n; positions a short read did not fill stay zero, which no
// decode table matches.
//
// A zero-length read means the stream has ended and reports io.EOF. A leading
// interrupt character reports ErrInterrupted instead of data.
func (fr *fileReader) readBytes(n int, timeout int) ([]byte, error) {
	ready, err := fr.poll(timeout)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, nil
	}

	buf := make([]byte, n)
	nr, err := fr.file.Read(buf)
	if nr == 0 {
		if err != nil && err != io.EOF {
			return nil, err
		}
		return nil, io.EOF
	}
	if buf[0] == interruptByte {
		return nil, ErrInterrupted
	}
	return buf, nil
}
