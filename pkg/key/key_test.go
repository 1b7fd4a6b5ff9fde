package key

import "testing"

func TestFromBytes(t *testing.T) {
	tests := []struct {
		input []byte
		want  Key
	}{
		{[]byte("a"), Char('a')},
		{[]byte("é"), Char('é')},
		{[]byte("€"), Char('€')},
		{[]byte("\U0001f680"), Char('\U0001f680')},
		{[]byte{0xc3}, Unknown},
		{[]byte{0xc3, 0x28}, Unknown},
		{[]byte{0xe2, 0x82, 0x00}, Unknown},
	}
	for _, test := range tests {
		if got := FromBytes(test.input); got != test.want {
			t.Errorf("FromBytes(% x) => %v, want %v", test.input, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{ArrowUp, "ArrowUp"},
		{Enter, "Enter"},
		{BackTab, "BackTab"},
		{Unknown, "Unknown"},
		{Char('x'), `Char('x')`},
	}
	for _, test := range tests {
		if got := test.k.String(); got != test.want {
			t.Errorf("%d.String() => %q, want %q", rune(test.k), got, test.want)
		}
	}
}

func TestIsChar(t *testing.T) {
	if !Char('x').IsChar() {
		t.Error("Char('x').IsChar() => false")
	}
	if PageDown.IsChar() {
		t.Error("PageDown.IsChar() => true")
	}
}
