package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertHex(t *testing.T) {
	f, err := os.Open("../../internal/bdf/testdata/tiny.bdf")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	require.NoError(t, convert(f, &out, false))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "002E:0000000000000000000000000000"+"1818", lines[0])
	assert.Equal(t, "0041:0000000018242442427E424242420000", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "4E00:"))
}

func TestConvertText(t *testing.T) {
	f, err := os.Open("../../internal/bdf/testdata/tiny.bdf")
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	require.NoError(t, convert(f, &out, true))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3*16)
	assert.Equal(t, "A  [   XX   ]", lines[16+4])
}
