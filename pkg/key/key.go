// Package key defines the Key type, the logical unit of keyboard input
// produced by decoding a terminal byte stream.
package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents one logical keyboard input. Printable characters are
// represented by their own rune value; special keys take negative values so
// that they can never collide with a character.
type Key rune

// Special keys.
const (
	Unknown Key = -(iota + 1)
	ArrowLeft
	ArrowRight
	ArrowUp
	ArrowDown
	Enter
	Escape
	Backspace
	Home
	End
	Tab
	BackTab
	Alt
	Del
	Shift
	Insert
	PageUp
	PageDown
)

// Char returns the Key for a printable character.
func Char(r rune) Key { return Key(r) }

// IsChar reports whether k represents a printable character rather than a
// special key.
func (k Key) IsChar() bool { return k >= 0 }

// FromBytes decodes a byte sequence as UTF-8 and returns the Key for the
// resulting character. Sequences that are not valid UTF-8 yield Unknown,
// never a partial character.
func FromBytes(b []byte) Key {
	if !utf8.Valid(b) {
		return Unknown
	}
	r, _ := utf8.DecodeRune(b)
	return Key(r)
}

var keyNames = map[Key]string{
	Unknown: "Unknown",
	ArrowLeft: "ArrowLeft", ArrowRight: "ArrowRight",
	ArrowUp: "ArrowUp", ArrowDown: "ArrowDown",
	Enter: "Enter", Escape: "Escape", Backspace: "Backspace",
	Home: "Home", End: "End",
	Tab: "Tab", BackTab: "BackTab",
	Alt: "Alt", Del: "Del", Shift: "Shift", Insert: "Insert",
	PageUp: "PageUp", PageDown: "PageDown",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsChar() {
		return fmt.Sprintf("Char(%q)", rune(k))
	}
	return fmt.Sprintf("BadKey(%d)", rune(k))
}
