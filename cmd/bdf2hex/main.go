// Command bdf2hex opens a BDF format font and writes it in the hex format read
// by blockfont. With -txt it prints the text representation read by fontgen
// instead, which is handy for touching up individual glyphs.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pbnjay/blockfont"
	"github.com/pbnjay/blockfont/internal/bdf"
)

var asText = flag.Bool("txt", false, "print the text representation instead of hex")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "USAGE: %s [-txt] filename.bdf > filename.hex\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := convert(f, os.Stdout, *asText); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(r io.Reader, w io.Writer, asText bool) error {
	bfont, err := bdf.Open(r)
	if err != nil {
		return err
	}

	if asText {
		all := make([]rune, 0, len(bfont.Glyphs))
		for ch := range bfont.Glyphs {
			if ch >= 0 {
				all = append(all, ch)
			}
		}
		sort.Slice(all, func(i, j int) bool {
			return all[i] < all[j]
		})
		for _, ch := range all {
			if _, err := fmt.Fprintln(w, bfont.Glyphs[ch]); err != nil {
				return err
			}
		}
		return nil
	}

	table, err := bfont.Table()
	if err != nil {
		return err
	}
	return blockfont.Encode(w, table)
}
