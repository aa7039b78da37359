package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbnjay/blockfont"
)

type glyphTestCase struct {
	Rows          []string
	ExpectedWidth blockfont.Width
	ExpectedRows  []uint16
}

var glyphTestCases = []*glyphTestCase{
	{
		Rows:          []string{"XXX   X"},
		ExpectedWidth: blockfont.Narrow,
		ExpectedRows:  []uint16{0b11100010},
	},
	{
		Rows:          []string{"XXX   XX", "X X X X "},
		ExpectedWidth: blockfont.Narrow,
		ExpectedRows:  []uint16{0b11100011, 0b10101010},
	},
	{
		Rows:          []string{"XXX   XXX"},
		ExpectedWidth: blockfont.Wide,
		ExpectedRows:  []uint16{0b11100011_10000000},
	},
	{
		Rows:          []string{"XX  XX  XX  XX  ", "X", ""},
		ExpectedWidth: blockfont.Wide,
		ExpectedRows:  []uint16{0b11001100_11001100, 0b10000000_00000000, 0},
	},
}

func TestMakeGlyph(t *testing.T) {
	for i, c := range glyphTestCases {
		t.Run(fmt.Sprintf("%d-%dx%d", i, len(c.Rows[0]), len(c.Rows)), func(t *testing.T) {
			g, err := makeGlyph('?', c.Rows)
			require.NoError(t, err)
			assert.Equal(t, c.ExpectedWidth, g.Width)
			for y, e := range c.ExpectedRows {
				if e != g.Rows[y] {
					t.Errorf("Row %d mismatch\nExpected: %016b\n     Got: %016b\n", y, e, g.Rows[y])
				}
			}
			for y := len(c.ExpectedRows); y < blockfont.CellHeight; y++ {
				assert.Zero(t, g.Rows[y], "padding row %d", y)
			}
		})
	}
}

func TestMakeGlyphLimits(t *testing.T) {
	_, err := makeGlyph('W', []string{strings.Repeat("X", 17)})
	assert.Error(t, err)

	_, err = makeGlyph('T', make([]string, blockfont.CellHeight+1))
	assert.Error(t, err)
}

func TestBuildAndDump(t *testing.T) {
	var document = `A  [X X X]
A  [ X X ]
B  [  XXX]
B  [XX   ]
`
	table, err := buildTable(strings.NewReader(document))
	require.NoError(t, err)
	assert.Equal(t, []rune{'A', 'B'}, table.Runes())

	var hex bytes.Buffer
	require.NoError(t, blockfont.Encode(&hex, table))
	assert.Equal(t,
		"0041:A850"+strings.Repeat("00", 14)+"\n"+
			"0042:38C0"+strings.Repeat("00", 14)+"\n",
		hex.String())

	var dumped bytes.Buffer
	require.NoError(t, dumpFont(&dumped, table))
	lines := strings.Split(dumped.String(), "\n")
	assert.Equal(t, "A  [X X X   ]", lines[0])
	assert.Equal(t, "A  [ X X    ]", lines[1])
	assert.Equal(t, "A  [        ]", lines[2])
	assert.Equal(t, "B  [  XXX   ]", lines[16])

	// the dump parses back into the same font
	again, err := buildTable(&dumped)
	require.NoError(t, err)
	assert.Equal(t, table, again)
}

func TestParseTextErrors(t *testing.T) {
	_, err := parseText(strings.NewReader("A  X X X]\n"))
	assert.Error(t, err)

	_, err = parseText(strings.NewReader("A  [X X X\n"))
	assert.Error(t, err)
}
