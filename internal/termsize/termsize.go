// Package termsize samples the width of the controlling terminal.
package termsize

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/term"

	"github.com/pbnjay/blockfont"
)

// DefaultColumns is assumed when the width cannot be determined.
const DefaultColumns = 80

// getSize is replaced in tests.
var getSize = func(fd int) (int, error) {
	if !term.IsTerminal(fd) {
		return 0, errNotTerminal
	}
	w, _, err := term.GetSize(fd)
	return w, err
}

var errNotTerminal = errors.New("termsize: not a terminal")

// Columns returns the width of the terminal attached to fd. When fd is not a
// terminal, $COLUMNS is used if it holds a positive number, otherwise
// DefaultColumns.
func Columns(fd int) int {
	if w, err := getSize(fd); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return DefaultColumns
}

// Sampler returns a WidthFunc for the terminal on fd. A positive override
// disables detection and is returned on every call.
func Sampler(fd int, override int) blockfont.WidthFunc {
	if override > 0 {
		return blockfont.FixedWidth(override)
	}
	return func() (int, error) {
		return Columns(fd), nil
	}
}
