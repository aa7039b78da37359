package blockfont

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *Table {
	t.Helper()
	f, err := os.Open("testdata/sample.hex")
	require.NoError(t, err)
	defer f.Close()

	tbl, err := Decode(f)
	require.NoError(t, err)
	return tbl
}

func TestDecodeSample(t *testing.T) {
	tbl := loadSample(t)
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, []rune{' ', 'A', 'B', '一'}, tbl.Runes())

	a, err := tbl.Lookup('A')
	require.NoError(t, err)
	assert.Equal(t, Narrow, a.Width)
	assert.Equal(t, [CellHeight]uint16{
		0x00, 0x00, 0x00, 0x00, 0x18, 0x24, 0x24, 0x42,
		0x42, 0x7E, 0x42, 0x42, 0x42, 0x42, 0x00, 0x00,
	}, a.Rows)

	yi, err := tbl.Lookup('一')
	require.NoError(t, err)
	assert.Equal(t, Wide, yi.Width)
	assert.Equal(t, uint16(0x7FFE), yi.Rows[7])
}

func TestParseRecordNarrow(t *testing.T) {
	c, g, err := ParseRecord("41:FF" + strings.Repeat("80", 15))
	require.NoError(t, err)
	assert.Equal(t, 'A', c)
	assert.Equal(t, Narrow, g.Width)
	for i, row := range g.Rows {
		assert.LessOrEqual(t, row, uint16(0xFF), "row %d", i)
	}
	assert.Equal(t, uint16(0xFF), g.Rows[0])
	assert.Equal(t, uint16(0x80), g.Rows[15])
}

func TestParseRecordWide(t *testing.T) {
	c, g, err := ParseRecord("1F600:" + strings.Repeat("FFFF", 16))
	require.NoError(t, err)
	assert.Equal(t, rune(0x1F600), c)
	assert.Equal(t, Wide, g.Width)
	for _, row := range g.Rows {
		assert.Equal(t, uint16(0xFFFF), row)
	}
}

func TestParseRecordErrors(t *testing.T) {
	for name, line := range map[string]string{
		"short bitmap":   "0041:" + strings.Repeat("0", 31),
		"long bitmap":    "0041:" + strings.Repeat("0", 33),
		"no separator":   "0041" + strings.Repeat("0", 32),
		"bad code point": "00G1:" + strings.Repeat("0", 32),
		"huge code":      "100000000:" + strings.Repeat("0", 32),
		"bad bitmap":     "0041:" + strings.Repeat("0", 30) + "ZZ",
		"signed row":     "0041:+1" + strings.Repeat("0", 30),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ParseRecord(line)
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestDecodeReportsLine(t *testing.T) {
	doc := "0020:" + strings.Repeat("0", 32) + "\n\n0041:" + strings.Repeat("0", 31) + "\n"
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)

	var fe *FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.Line)
	assert.Contains(t, err.Error(), "invalid data length: 31")
}

func TestDecodeSkipsBlankAndCRLF(t *testing.T) {
	doc := "\r\n   \n0041:" + strings.Repeat("0", 32) + "\r\n"
	tbl, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
}

func TestDecodeEmpty(t *testing.T) {
	tbl, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
}

func TestDecodeLastRecordWins(t *testing.T) {
	doc := "41:" + strings.Repeat("00", 16) + "\n41:" + strings.Repeat("FFFF", 16) + "\n"
	tbl, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	g, err := tbl.Lookup('A')
	require.NoError(t, err)
	assert.Equal(t, Wide, g.Width)
}

func TestEncodeRoundTrip(t *testing.T) {
	tbl := loadSample(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tbl))

	want, err := os.ReadFile("testdata/sample.hex")
	require.NoError(t, err)
	// the sample keeps a blank line that Encode does not reproduce
	assert.Equal(t, strings.Replace(string(want), "\n\n", "\n", 1), buf.String())

	again, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl, again)
}
