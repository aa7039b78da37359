package blockfont

import (
	"bufio"
	"fmt"
	"io"
)

// WidthFunc returns the current line width in pixels.
type WidthFunc func() (int, error)

// FixedWidth returns a WidthFunc that always reports w.
func FixedWidth(w int) WidthFunc {
	return func() (int, error) { return w, nil }
}

// Stream renders every line read from r until EOF. The line width is sampled
// from width before each line, so a terminal resize applies to the next line.
func Stream(r io.Reader, w io.Writer, t *Table, width WidthFunc, inverted bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lw, err := width()
		if err != nil {
			return err
		}
		rr, err := NewRenderer(t, lw)
		if err != nil {
			return err
		}
		rr.SetInverted(inverted)
		if err := rr.RenderString(w, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("blockfont: reading input: %w", err)
	}
	return nil
}
