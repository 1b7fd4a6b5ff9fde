package term

import (
	"io"
	"strings"
)

// readLine decodes one line of input, excluding the line terminator. The
// timeout applies to the arrival of the line; in canonical mode the OS
// delivers the line as a whole, so once the poll reports ready the remaining
// bytes are read without a further wait window. It returns ok = false when
// nothing became ready within the timeout.
func readLine(fr *fileReader, timeout int) (line string, ok bool, err error) {
	ready, err := fr.poll(timeout)
	if err != nil {
		return "", false, err
	}
	if !ready {
		return "", false, nil
	}

	var sb strings.Builder
	for {
		b, err := fr.readBytes(1, -1)
		if err != nil {
			return "", false, err
		}
		if b == nil {
			return "", false, io.EOF
		}
		if b[0] == '\n' {
			break
		}
		sb.WriteByte(b[0])
	}
	return strings.TrimSuffix(sb.String(), "\r"), true, nil
}
