// Package bdf reads fonts in the Glyph Bitmap Distribution Format and converts
// them into blockfont tables.
package bdf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pbnjay/blockfont"
)

/// https://www.adobe.com/content/dam/acom/en/devnet/font/pdfs/5005.BDF_Spec.pdf

// ErrTruncated is returned when the input ends inside the font definition.
var ErrTruncated = errors.New("bdf: unexpected end of font")

// Char represents a single glyph in the BDF font definition.
type Char struct {
	Name     string // "SPACE"
	Encoding rune   // 32
	Width    int    // pixels, e.g. 8

	BoundingBox [4]int   // Width, Height, X offset, Y offset
	Bitmap      []uint32 // [Height]
}

// field returns how many bits each Bitmap row occupies.
func (x *Char) field() int {
	return (((x.BoundingBox[0] - 1) / 8) + 1) * 8
}

// String returns the glyph in the text representation read by fontgen.
func (x *Char) String() string {
	// width, height, x-offset, top padding
	xpad := strings.Repeat(" ", x.BoundingBox[2])
	rpad := strings.Repeat(" ", max(0, x.Width-(x.BoundingBox[0]+x.BoundingBox[2])))

	s := []string{}
	for y := 0; y < x.BoundingBox[3]; y++ {
		s = append(s, fmt.Sprintf("%c  [%s]", x.Encoding, xpad+strings.Repeat(" ", x.BoundingBox[0])+rpad))
	}

	for _, b := range x.Bitmap {
		raster := fmt.Sprintf("%032b", b)
		o := 32 - x.field()
		raster = raster[o : o+x.BoundingBox[0]]
		raster = strings.ReplaceAll(raster, "0", " ")
		raster = strings.ReplaceAll(raster, "1", "X")
		s = append(s, fmt.Sprintf("%c  [%s]", x.Encoding, xpad+raster+rpad))
	}
	return strings.Join(s, "\n")
}

// Glyph converts the character into a 16 row blockfont cell. Pixels that
// fall outside the cell are clipped.
func (x *Char) Glyph() (blockfont.Glyph, error) {
	w := x.Width
	if w <= 0 {
		w = x.BoundingBox[0] + x.BoundingBox[2]
	}

	var g blockfont.Glyph
	switch {
	case w <= blockfont.Narrow.Pixels():
		g.Width = blockfont.Narrow
	case w <= blockfont.Wide.Pixels():
		g.Width = blockfont.Wide
	default:
		return g, fmt.Errorf("bdf: %s (U+%04X) is %d pixels wide: %w", x.Name, x.Encoding, w, blockfont.ErrFormat)
	}

	px := g.Width.Pixels()
	for i, b := range x.Bitmap {
		y := x.BoundingBox[3] + i
		if y < 0 || y >= blockfont.CellHeight {
			continue
		}
		// move to the top of the u32 (left pixel = MSB), then apply the x offset
		line := uint64(b) << uint(32-x.field())
		line >>= uint(x.BoundingBox[2])
		g.Rows[y] = uint16((line >> uint(32-px)) & (1<<uint(px) - 1))
	}
	return g, nil
}

// Font represents a set of glyphs in the BDF font definition.
type Font struct {
	Version  string // "STARTFONT 2.1"
	Comments string
	FontName string

	PointSize   int // font point size e.g. 8
	ResolutionX int // display resolution e.g. 72
	ResolutionY int

	BoundingBox [4]int // Width, Height, X offset, Y offset

	NumProperties int
	Properties    map[string]string

	NumGlyphs int
	Glyphs    map[rune]*Char
}

// Table builds a blockfont table from every encoded glyph in the font.
func (f *Font) Table() (*blockfont.Table, error) {
	glyphs := make(map[rune]blockfont.Glyph, len(f.Glyphs))
	for r, ch := range f.Glyphs {
		if r < 0 {
			continue
		}
		g, err := ch.Glyph()
		if err != nil {
			return nil, err
		}
		glyphs[r] = g
	}
	return blockfont.NewTable(glyphs), nil
}

// Open parses a BDF font.
func Open(r io.Reader) (*Font, error) {
	fnt := &Font{}

	s := bufio.NewScanner(r)
	scan := func() (string, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return "", err
			}
			return "", ErrTruncated
		}
		return strings.TrimRight(s.Text(), "\r"), nil
	}

	for fnt.NumGlyphs == 0 {
		line, err := scan()
		if err != nil {
			return nil, err
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 1 {
			parts = append(parts, "")
		}
		if fnt.NumProperties != len(fnt.Properties) {
			fnt.Properties[parts[0]] = strings.Trim(parts[1], `"`)
			continue
		}
		if pfunc, ok := parsers[parts[0]]; ok {
			pfunc(fnt, parts[1])
		}
	}

	fnt.Glyphs = make(map[rune]*Char, fnt.NumGlyphs)
	for i := 0; i < fnt.NumGlyphs; i++ {
		line, err := scan()
		for err == nil && !strings.HasPrefix(line, "STARTCHAR") {
			line, err = scan()
		}
		if err != nil {
			return nil, err
		}

		ch := &Char{
			Name:     strings.TrimPrefix(line, "STARTCHAR "),
			Encoding: -1,
		}

		for {
			line, err = scan()
			if err != nil {
				return nil, err
			}
			parts := strings.SplitN(line, " ", 2)
			if parts[0] == "BITMAP" {
				break
			}
			if len(parts) == 1 {
				parts = append(parts, "")
			}
			if cfunc, ok := charparsers[parts[0]]; ok {
				cfunc(ch, parts[1])
			}
		}

		// bounding box offsets are from left-baseline origin
		// so we move them to the top left by adding ascent
		//    e.g. char-W char-H char-X char-Y
		// becomes: font-W font-H left-padding top-padding
		if ch.BoundingBox[2] < 0 {
			// can't support negative X offsets
			ch.BoundingBox[2] = 0
		}

		// NB DESCENT and OFFSET are negative for character that extend below the baseline.
		// so ASCENT = (FONT_HEIGHT + DESCENT) [e.g. 16 + -2 = 14] for ascent=14, descent=2
		// font starts at baseline, y = ascent, so the first bitmap pixel is computed to:
		//   ascent - y_offset - height, or 14 - (-2) - 16 = 0
		//
		// ((FONT_HEIGHT + DESCENT) - Y_OFFSET) - BITMAP_HEIGHT
		ch.BoundingBox[3] = ((fnt.BoundingBox[1] + fnt.BoundingBox[3]) - ch.BoundingBox[3]) - ch.BoundingBox[1]

		ch.Bitmap = make([]uint32, ch.BoundingBox[1])
		for h := range ch.Bitmap {
			line, err = scan()
			if err != nil {
				return nil, err
			}
			if _, err := fmt.Sscanf(line, "%X", &ch.Bitmap[h]); err != nil {
				return nil, fmt.Errorf("bdf: %s bitmap row %d: %v: %w", ch.Name, h, err, blockfont.ErrFormat)
			}
		}

		fnt.Glyphs[ch.Encoding] = ch
	}

	return fnt, nil
}

////////

var charparsers = map[string]func(*Char, string){
	"ENCODING": func(f *Char, line string) {
		nc := -1
		fmt.Sscanf(line, "%d", &nc)
		f.Encoding = rune(nc)
	},
	"DWIDTH": func(f *Char, line string) {
		fmt.Sscanf(line, "%d", &f.Width)
	},
	"BBX": func(f *Char, line string) {
		// width, height, x-offset, y-offset
		fmt.Sscanf(line, "%d %d %d %d", &f.BoundingBox[0], &f.BoundingBox[1], &f.BoundingBox[2], &f.BoundingBox[3])
	},
}

var parsers = map[string]func(*Font, string){
	"STARTFONT": func(f *Font, line string) {
		f.Version = line
	},
	"COMMENT": func(f *Font, line string) {
		f.Comments += line + "\n"
	},
	"FONT": func(f *Font, line string) {
		f.FontName = line
	},
	"SIZE": func(f *Font, line string) {
		fmt.Sscanf(line, "%d %d %d", &f.PointSize, &f.ResolutionX, &f.ResolutionY)
	},
	"FONTBOUNDINGBOX": func(f *Font, line string) {
		fmt.Sscanf(line, "%d %d %d %d", &f.BoundingBox[0], &f.BoundingBox[1], &f.BoundingBox[2], &f.BoundingBox[3])
	},
	"STARTPROPERTIES": func(f *Font, line string) {
		fmt.Sscanf(line, "%d", &f.NumProperties)
		f.Properties = make(map[string]string, f.NumProperties)
	},
	"ENDPROPERTIES": func(f *Font, line string) {
		f.NumProperties = len(f.Properties)
	},
	"CHARS": func(f *Font, line string) {
		fmt.Sscanf(line, "%d", &f.NumGlyphs)
	},
}
