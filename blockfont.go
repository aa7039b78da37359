// Package blockfont renders text as large block-character glyphs on a terminal.
// Glyphs come from a bitmap font keyed by code point, in the format used by GNU
// Unifont: every glyph is 16 pixels tall and either 8 (narrow) or 16 (wide)
// pixels across.
//
// A Table is built once from font data (see Decode) and is never modified
// afterwards, so the same Table can back any number of Renderers.
//
// See the included bdf2hex and fontgen tools if you wish to convert or include
// your own pixel font.
package blockfont

import (
	"image/color"
	"sort"
)

// CellHeight is the number of pixel rows in every glyph.
const CellHeight = 16

// Width is the pixel width class of a glyph.
type Width uint8

const (
	// Narrow glyphs are 8 pixels wide and encoded with 2 hex digits per row.
	Narrow Width = 8
	// Wide glyphs are 16 pixels wide and encoded with 4 hex digits per row.
	Wide Width = 16
)

// Pixels returns the number of pixel columns for the width class.
func (w Width) Pixels() int {
	return int(w)
}

func (w Width) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	}
	return "invalid"
}

// Glyph is the bitmap for a single code point. Each row is a bitfield of
// Width.Pixels() bits with the leftmost pixel in the most significant bit.
type Glyph struct {
	Width Width
	Rows  [CellHeight]uint16
}

// Set reports whether the pixel at column x of row y is foreground.
func (g Glyph) Set(x, y int) bool {
	px := g.Width.Pixels()
	if x < 0 || x >= px || y < 0 || y >= CellHeight {
		return false
	}
	return g.Rows[y]&(1<<uint(px-1-x)) != 0
}

// Table maps code points to glyphs. A Table is read-only once constructed.
type Table struct {
	glyphs map[rune]Glyph
}

// NewTable creates a Table holding a copy of glyphs.
func NewTable(glyphs map[rune]Glyph) *Table {
	t := &Table{glyphs: make(map[rune]Glyph, len(glyphs))}
	for r, g := range glyphs {
		t.glyphs[r] = g
	}
	return t
}

// Lookup returns the glyph for r, or a *LookupError if the font has no
// representation for it.
func (t *Table) Lookup(r rune) (Glyph, error) {
	g, ok := t.glyphs[r]
	if !ok {
		return Glyph{}, &LookupError{Rune: r}
	}
	return g, nil
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	return len(t.glyphs)
}

// Runes returns every mapped code point in ascending order.
func (t *Table) Runes() []rune {
	all := make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i] < all[j]
	})
	return all
}

///////

// Drawable is an interface which supports setting an x,y coordinate to a color.
// *image.RGBA and the other draw.Image implementations satisfy it.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// DrawRune displays a single rune in the provided color and position in
// Drawable. The x,y position represents the top-left corner of the rune.
// Drawable.Set is called for each foreground pixel, leaving all other pixels
// as-is. If the rune has no glyph, DrawRune returns false and no drawing is done.
func (t *Table) DrawRune(dr Drawable, x, y int, r rune, clr color.Color) bool {
	g, ok := t.glyphs[r]
	if !ok {
		return false
	}
	for yy := 0; yy < CellHeight; yy++ {
		for xx := 0; xx < g.Width.Pixels(); xx++ {
			if g.Set(xx, yy) {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
	return true
}

// DrawString displays s in the provided color starting at x,y. Each rune
// advances the pen by its glyph width; unmapped runes are skipped.
func (t *Table) DrawString(dr Drawable, x, y int, s string, clr color.Color) {
	for _, r := range s {
		if g, ok := t.glyphs[r]; ok {
			t.DrawRune(dr, x, y, r, clr)
			x += g.Width.Pixels()
		}
	}
}

// MeasureString returns the width in pixels of s drawn with this table.
func (t *Table) MeasureString(s string) (int, error) {
	w := 0
	for _, r := range s {
		g, err := t.Lookup(r)
		if err != nil {
			return 0, err
		}
		w += g.Width.Pixels()
	}
	return w, nil
}
