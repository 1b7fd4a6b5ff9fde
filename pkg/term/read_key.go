package term

import (
	"github.com/Sapiet1/in-keys/pkg/key"
)

// CSI sequences of the form "\x1b[<digit>~", identified by the digit. Unlike
// the sequences in readEscape's switch, these are only complete with the
// trailing '~'; without it the whole sequence decodes to Unknown. That
// asymmetry is the CSI wire format: final-byte sequences are two bytes after
// ESC, tilde-coded ones are three.
var csiTildeKeys = map[byte]key.Key{
	'1': key.Home, '2': key.Insert, '3': key.Del, '4': key.End,
	'5': key.PageUp, '6': key.PageDown, '7': key.Home, '8': key.End,
}

// readKey decodes one logical key from the byte stream. The timeout applies
// only to the first byte; every byte after it belongs to a sequence already
// in flight and is read with a zero-wait lookahead, so decoding never blocks
// on a byte that may never arrive. It returns ok = false when no byte became
// ready within the timeout.
func readKey(fr *fileReader, timeout int) (k key.Key, ok bool, err error) {
	lead, err := fr.readBytes(1, timeout)
	if err != nil {
		return 0, false, err
	}
	if lead == nil {
		return 0, false, nil
	}

	switch b := lead[0]; b {
	case 0x1b:
		return readEscape(fr)
	case '\n', '\r':
		return key.Enter, true, nil
	case 0x7f, 0x08:
		return key.Backspace, true, nil
	case '\t':
		return key.Tab, true, nil
	case 0x01: // ^A
		return key.Home, true, nil
	case 0x05: // ^E
		return key.End, true, nil
	default:
		switch {
		case b&0xe0 == 0xc0:
			return readRuneTail(fr, b, 1)
		case b&0xf0 == 0xe0:
			return readRuneTail(fr, b, 2)
		case b&0xf8 == 0xf0:
			return readRuneTail(fr, b, 3)
		}
		return key.Char(rune(b)), true, nil
	}
}

// readEscape decodes what follows an ESC byte. A lone ESC press sends no
// further bytes, so a zero-wait probe distinguishes the Escape key from the
// start of an escape sequence.
func readEscape(fr *fileReader) (key.Key, bool, error) {
	ready, err := fr.poll(0)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return key.Escape, true, nil
	}

	seq, err := fr.readBytes(2, 0)
	if err != nil {
		return 0, false, err
	}
	if seq == nil || seq[0] != '[' {
		return key.Unknown, true, nil
	}

	switch seq[1] {
	case 'A':
		return key.ArrowUp, true, nil
	case 'B':
		return key.ArrowDown, true, nil
	case 'C':
		return key.ArrowRight, true, nil
	case 'D':
		return key.ArrowLeft, true, nil
	case 'H':
		return key.Home, true, nil
	case 'F':
		return key.End, true, nil
	case 'Z':
		return key.BackTab, true, nil
	}

	k, found := csiTildeKeys[seq[1]]
	if !found {
		logger.Printf("unknown escape sequence %q", seq)
		return key.Unknown, true, nil
	}
	tail, err := fr.readBytes(1, 0)
	if err != nil {
		return 0, false, err
	}
	if tail == nil || tail[0] != '~' {
		return key.Unknown, true, nil
	}
	return k, true, nil
}

// readRuneTail finishes a UTF-8 sequence whose leading byte announced more
// continuation bytes. The continuation bytes are already in flight, so they
// are read with a zero-wait lookahead; a sequence cut short decodes to
// Unknown, never to a partial character.
func readRuneTail(fr *fileReader, lead byte, more int) (key.Key, bool, error) {
	tail, err := fr.readBytes(more, 0)
	if err != nil {
		return 0, false, err
	}
	if tail == nil {
		return key.Unknown, true, nil
	}
	return key.FromBytes(append([]byte{lead}, tail...)), true, nil
}
