package term

import (
	"fmt"
	"io"
)

// VT100 control sequences emitted by Writer.
const (
	clearScreen          = "\r\x1b[2J\r\x1b[H"
	clearToEnd           = "\x1b[J"
	clearToBeginning     = "\x1b[1J"
	clearLineToEnd       = "\x1b[K"
	clearLineToBeginning = "\x1b[1K"
	hideCursor           = "\x1b[?25l"
	showCursor           = "\x1b[?25h"
)

// A Writer emits text and VT100 control sequences to a terminal.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w}
}

// Print writes the given text.
func (w *Writer) Print(text string) error {
	_, err := io.WriteString(w.w, text)
	return err
}

// PrintLine writes the given text followed by a newline.
func (w *Writer) PrintLine(text string) error {
	if err := w.Print(text); err != nil {
		return err
	}
	return w.Print("\n")
}

// Clear clears the whole screen and moves the cursor to the top left corner.
func (w *Writer) Clear() error {
	return w.Print(clearScreen)
}

// ClearToEnd clears from the cursor position to the end of the screen.
func (w *Writer) ClearToEnd() error {
	return w.Print(clearToEnd)
}

// ClearToBeginning clears from the beginning of the screen to the cursor
// position.
func (w *Writer) ClearToBeginning() error {
	return w.Print(clearToBeginning)
}

// ClearLineToEnd clears from the cursor position to the end of the line.
func (w *Writer) ClearLineToEnd() error {
	return w.Print(clearLineToEnd)
}

// ClearLineToBeginning clears from the beginning of the line to the cursor
// position.
func (w *Writer) ClearLineToBeginning() error {
	return w.Print(clearLineToBeginning)
}

// MoveCursor moves the cursor to the given row and column, both 1-based.
func (w *Writer) MoveCursor(row, col int) error {
	return w.Print(fmt.Sprintf("\x1b[%d;%dH", row, col))
}

// MoveCursorUp moves the cursor up the given number of rows.
func (w *Writer) MoveCursorUp(rows int) error {
	return w.Print(fmt.Sprintf("\x1b[%dA", rows))
}

// MoveCursorDown moves the cursor down the given number of rows.
func (w *Writer) MoveCursorDown(rows int) error {
	return w.Print(fmt.Sprintf("\x1b[%dB", rows))
}

// MoveCursorForward moves the cursor right the given number of columns.
func (w *Writer) MoveCursorForward(cols int) error {
	return w.Print(fmt.Sprintf("\x1b[%dC", cols))
}

// MoveCursorBackward moves the cursor left the given number of columns.
func (w *Writer) MoveCursorBackward(cols int) error {
	return w.Print(fmt.Sprintf("\x1b[%dD", cols))
}

// HideCursor hides the cursor.
func (w *Writer) HideCursor() error {
	return w.Print(hideCursor)
}

// ShowCursor shows the cursor.
func (w *Writer) ShowCursor() error {
	return w.Print(showCursor)
}
