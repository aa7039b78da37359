package blockfont

import (
	"io"
	"strings"
)

// MinLineWidth is the smallest usable line width in pixels. It equals the
// widest glyph, so every glyph fits on a line of its own.
const MinLineWidth = int(Wide)

const (
	// Block is printed for foreground pixels.
	Block = '█'
	// Blank is printed for background pixels.
	Blank = ' '
)

// Segment is a run of input runes [Start, End) that is rendered as one block
// of CellHeight output lines. Width is the sum of the glyph widths in pixels.
type Segment struct {
	Start, End int
	Width      int
}

// Renderer lays text out into lines no wider than a fixed pixel budget (one
// pixel per terminal column) and rasterizes them into block characters.
type Renderer struct {
	table     *Table
	lineWidth int
	inverted  bool
}

// NewRenderer creates a Renderer that draws glyphs from t into lines of at
// most lineWidth pixels.
func NewRenderer(t *Table, lineWidth int) (*Renderer, error) {
	if lineWidth < MinLineWidth {
		return nil, &WidthError{Width: lineWidth}
	}
	return &Renderer{table: t, lineWidth: lineWidth}, nil
}

// SetInverted swaps the foreground and background characters.
func (r *Renderer) SetInverted(inverted bool) {
	r.inverted = inverted
}

// LineWidth returns the pixel budget of a single output line.
func (r *Renderer) LineWidth() int {
	return r.lineWidth
}

// next greedily extends a segment from start until the following glyph would
// overflow the line.
func (r *Renderer) next(text []rune, start int) (Segment, error) {
	seg := Segment{Start: start, End: start}
	for seg.End < len(text) {
		g, err := r.table.Lookup(text[seg.End])
		if err != nil {
			return seg, err
		}
		w := g.Width.Pixels()
		if seg.Width+w > r.lineWidth {
			break
		}
		seg.Width += w
		seg.End++
	}
	if seg.End == seg.Start {
		return seg, ErrStalled
	}
	return seg, nil
}

// Wrap splits text into the segments that Render would print.
func (r *Renderer) Wrap(text []rune) ([]Segment, error) {
	var segs []Segment
	for start := 0; start < len(text); {
		seg, err := r.next(text, start)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
		start = seg.End
	}
	return segs, nil
}

// Rasterize returns the CellHeight lines that draw text[seg.Start:seg.End],
// without line terminators.
func (r *Renderer) Rasterize(text []rune, seg Segment) ([]string, error) {
	glyphs := make([]Glyph, 0, seg.End-seg.Start)
	for _, c := range text[seg.Start:seg.End] {
		g, err := r.table.Lookup(c)
		if err != nil {
			return nil, err
		}
		glyphs = append(glyphs, g)
	}

	on, off := Block, Blank
	if r.inverted {
		on, off = off, on
	}

	lines := make([]string, CellHeight)
	var sb strings.Builder
	for y := range lines {
		sb.Reset()
		for _, g := range glyphs {
			row := g.Rows[y]
			for bit := g.Width.Pixels() - 1; bit >= 0; bit-- {
				if row&(1<<uint(bit)) != 0 {
					sb.WriteRune(on)
				} else {
					sb.WriteRune(off)
				}
			}
		}
		lines[y] = sb.String()
	}
	return lines, nil
}

// Each calls fn for every output line of text, top to bottom. Segments are
// wrapped and rasterized one at a time, so fn sees the lines of a segment
// before the next one is computed. Iteration stops at the first error.
func (r *Renderer) Each(text []rune, fn func(line string) error) error {
	for start := 0; start < len(text); {
		seg, err := r.next(text, start)
		if err != nil {
			return err
		}
		lines, err := r.Rasterize(text, seg)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := fn(line); err != nil {
				return err
			}
		}
		start = seg.End
	}
	return nil
}

type flusher interface {
	Flush() error
}

// Render writes the block rendering of text to w, one newline-terminated
// line at a time. If w has a Flush method it is called after every segment.
func (r *Renderer) Render(w io.Writer, text []rune) error {
	f, _ := w.(flusher)
	n := 0
	return r.Each(text, func(line string) error {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
		n++
		if f != nil && n%CellHeight == 0 {
			return f.Flush()
		}
		return nil
	})
}

// RenderString is a convenience method that calls Render with the runes of s.
func (r *Renderer) RenderString(w io.Writer, s string) error {
	return r.Render(w, []rune(s))
}
