// fontgen is a commandline tool for building blockfont hex fonts by hand.
// Draw each glyph in a text file, one pixel row per line, prefixed by the
// character and two spaces, using X for set pixels:
//
//	A  [   XX   ]
//	A  [  X  X  ]
//	A  [ XXXXXX ]
//	A  [ X    X ]
//
// Glyphs up to 8 pixels wide become narrow glyphs, up to 16 become wide
// ones; rows missing at the bottom are left blank. Then simply run:
//
//	./fontgen -txt myglyphs.txt -o myfont.hex
//
// Use -hex to dump an existing font back into the text representation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pbnjay/blockfont"
)

var (
	textName = flag.String("txt", "", "text file to extract pixel font from")
	hexName  = flag.String("hex", "", "hex font to dump as text")
	outName  = flag.String("o", "", "hex file to create (default standard output)")
)

// textRepresentationToBits transforms a string of spaces and Xs into a row
// value with the first character in bit w-1.
func textRepresentationToBits(t string, w int) uint16 {
	var o uint16
	for i := 0; i < len(t) && i < w; i++ {
		if t[i] == 'X' {
			o |= 1 << uint(w-1-i)
		}
	}
	return o
}

func bitsToString(b uint16, w int) string {
	s := make([]byte, w)
	for i := range s {
		if b&(1<<uint(w-1-i)) != 0 {
			s[i] = 'X'
		} else {
			s[i] = ' '
		}
	}
	return string(s)
}

// parseText reads the text representation, returning each glyph's rows.
func parseText(r io.Reader) (map[rune][]string, error) {
	allLetters := make(map[rune][]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, pixoffs := utf8.DecodeRuneInString(line)
		pixoffs += 3
		if len(line) < pixoffs || line[pixoffs-1] != '[' {
			return nil, fmt.Errorf("line %d: expected %q", lineNo, string(c)+"  [")
		}
		ww := strings.IndexRune(line[pixoffs:], ']')
		if ww < 0 {
			return nil, fmt.Errorf("line %d: missing ']'", lineNo)
		}
		allLetters[c] = append(allLetters[c], line[pixoffs:pixoffs+ww])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return allLetters, nil
}

func makeGlyph(c rune, rows []string) (blockfont.Glyph, error) {
	var g blockfont.Glyph
	if len(rows) > blockfont.CellHeight {
		return g, fmt.Errorf("%q has %d rows, at most %d allowed", c, len(rows), blockfont.CellHeight)
	}

	maxWidth := 0
	for _, row := range rows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
	}
	switch {
	case maxWidth <= blockfont.Narrow.Pixels():
		g.Width = blockfont.Narrow
	case maxWidth <= blockfont.Wide.Pixels():
		g.Width = blockfont.Wide
	default:
		return g, fmt.Errorf("%q is %d pixels wide, at most %d allowed", c, maxWidth, blockfont.Wide.Pixels())
	}

	for y, row := range rows {
		g.Rows[y] = textRepresentationToBits(row, g.Width.Pixels())
	}
	return g, nil
}

func buildTable(r io.Reader) (*blockfont.Table, error) {
	allLetters, err := parseText(r)
	if err != nil {
		return nil, err
	}
	glyphs := make(map[rune]blockfont.Glyph, len(allLetters))
	for c, rows := range allLetters {
		g, err := makeGlyph(c, rows)
		if err != nil {
			return nil, err
		}
		glyphs[c] = g
	}
	return blockfont.NewTable(glyphs), nil
}

func dumpFont(w io.Writer, table *blockfont.Table) error {
	bw := bufio.NewWriter(w)
	for _, ch := range table.Runes() {
		g, err := table.Lookup(ch)
		if err != nil {
			return err
		}
		for _, line := range g.Rows {
			fmt.Fprintf(bw, "%c  [%s]\n", ch, bitsToString(line, g.Width.Pixels()))
		}
	}
	return bw.Flush()
}

func main() {
	flag.Parse()

	var err error
	switch {
	case *textName != "":
		err = generate(*textName, *outName)
	case *hexName != "":
		err = dump(*hexName)
	default:
		fmt.Fprintln(os.Stderr, "-txt or -hex should be provided")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	table, err := buildTable(f)
	if err != nil {
		return fmt.Errorf("error parsing file: %w", err)
	}

	if out == "" {
		return blockfont.Encode(os.Stdout, table)
	}
	o, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if err := blockfont.Encode(o, table); err != nil {
		o.Close()
		return err
	}
	if err := o.Close(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "Created font file:", out)
	return nil
}

func dump(in string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	table, err := blockfont.Decode(f)
	if err != nil {
		return err
	}
	return dumpFont(os.Stdout, table)
}
