package blockfont

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is matched by every font decoding failure.
	ErrFormat = errors.New("blockfont: malformed font data")
	// ErrNotFound is matched when a code point has no glyph in the table.
	ErrNotFound = errors.New("blockfont: glyph not found")
	// ErrWidth is matched when the line width cannot hold the widest glyph.
	ErrWidth = errors.New("blockfont: line width too small")
	// ErrStalled is returned if wrapping cannot make progress.
	ErrStalled = errors.New("blockfont: wrapping produced an empty segment")
)

// FormatError describes a malformed font record.
type FormatError struct {
	Line   int // 1-based, 0 when unknown
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("blockfont: line %d: %s", e.Line, e.Reason)
	}
	return "blockfont: " + e.Reason
}

func (e *FormatError) Unwrap() error { return ErrFormat }

// LookupError reports a code point missing from a Table.
type LookupError struct {
	Rune rune
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("blockfont: no glyph for U+%04X %q", e.Rune, e.Rune)
}

func (e *LookupError) Unwrap() error { return ErrNotFound }

// WidthError reports a line width below MinLineWidth.
type WidthError struct {
	Width int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("blockfont: line width must be at least %d, got %d", MinLineWidth, e.Width)
}

func (e *WidthError) Unwrap() error { return ErrWidth }
