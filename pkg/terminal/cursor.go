package terminal

import "time"

// CursorBlinkInterval is the decorative caret cadence. Cosmetic only,
// independent of the typewriter.
const CursorBlinkInterval = 500 * time.Millisecond

// Cursor is the blinking input caret.
type Cursor struct {
	Visible bool
}

func NewCursor() Cursor {
	return Cursor{Visible: true}
}

func (c Cursor) Toggle() Cursor {
	return Cursor{Visible: !c.Visible}
}

func (c Cursor) Glyph() string {
	if !c.Visible {
		return " "
	}
	return "█"
}
