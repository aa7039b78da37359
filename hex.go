package blockfont

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Decode reads a font in the GNU Unifont hex format, one record per line:
//
//	0041:0000000018242442427E424242420000
//
// The code point is hexadecimal of any length. A 32 digit bitmap is a narrow
// glyph (2 digits per row), a 64 digit bitmap is a wide glyph (4 digits per
// row). Blank lines are skipped and a later record for the same code point
// replaces an earlier one.
func Decode(r io.Reader) (*Table, error) {
	glyphs := make(map[rune]Glyph)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, g, err := ParseRecord(line)
		if err != nil {
			if fe, ok := err.(*FormatError); ok {
				fe.Line = lineNo
			}
			return nil, err
		}
		glyphs[c] = g
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("blockfont: reading font: %w", err)
	}

	return &Table{glyphs: glyphs}, nil
}

// ParseRecord parses a single CODEPOINT:BITMAP record.
func ParseRecord(line string) (rune, Glyph, error) {
	code, data, found := strings.Cut(line, ":")
	if !found {
		return 0, Glyph{}, &FormatError{Reason: "missing ':' separator"}
	}

	c, err := strconv.ParseUint(code, 16, 32)
	if err != nil || c > math.MaxInt32 {
		return 0, Glyph{}, &FormatError{Reason: fmt.Sprintf("invalid code point %q", code)}
	}

	var g Glyph
	switch len(data) {
	case 64:
		g.Width = Wide
	case 32:
		g.Width = Narrow
	default:
		return 0, Glyph{}, &FormatError{Reason: fmt.Sprintf("invalid data length: %d", len(data))}
	}

	// 2 hex digits per narrow row, 4 per wide row
	digits := len(data) / CellHeight
	for i := 0; i < CellHeight; i++ {
		v, err := strconv.ParseUint(data[i*digits:(i+1)*digits], 16, 16)
		if err != nil {
			return 0, Glyph{}, &FormatError{Reason: fmt.Sprintf("invalid bitmap row %d %q", i, data[i*digits:(i+1)*digits])}
		}
		g.Rows[i] = uint16(v)
	}
	return rune(c), g, nil
}

// Encode writes t in the hex format read by Decode, sorted by code point.
func Encode(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for _, r := range t.Runes() {
		g := t.glyphs[r]
		fmt.Fprintf(bw, "%04X:", r)
		for _, row := range g.Rows {
			if g.Width == Wide {
				fmt.Fprintf(bw, "%04X", row)
			} else {
				fmt.Fprintf(bw, "%02X", row)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
