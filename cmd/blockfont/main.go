// Command blockfont prints text as large block-character glyphs sized to the
// terminal, using a GNU Unifont style hex font (or a BDF font):
//
//	blockfont -font unifont.hex Hello
//	tail -f build.log | blockfont -s -i
//
// Settings may also come from BLOCKFONT_* environment variables or a .env
// file in the working directory; flags take precedence.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/pbnjay/blockfont"
	"github.com/pbnjay/blockfont/internal/bdf"
	"github.com/pbnjay/blockfont/internal/config"
	"github.com/pbnjay/blockfont/internal/termsize"
)

var errUsage = errors.New("no text given")

func main() {
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	err = run(cfg, os.Args[1:], os.Stdin, os.Stdout, int(os.Stdout.Fd()))
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

func run(cfg config.Config, args []string, stdin io.Reader, stdout io.Writer, fd int) error {
	fs := flag.NewFlagSet("blockfont", flag.ContinueOnError)
	fs.BoolVar(&cfg.Inverted, "inverted", cfg.Inverted, "swap foreground and background")
	fs.BoolVar(&cfg.Inverted, "i", cfg.Inverted, "shorthand for -inverted")
	stream := fs.Bool("stream", false, "render every line read from standard input")
	fs.BoolVar(stream, "s", false, "shorthand for -stream")
	fs.StringVar(&cfg.FontPath, "font", cfg.FontPath, "hex or .bdf font file")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "line width in columns (0 detects the terminal width)")
	verbose := fs.Bool("v", false, "log debug information to standard error")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "USAGE: %s [flags] text...\n       %s -s [flags] < file\n", fs.Name(), fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	text := strings.Join(fs.Args(), " ")
	if !*stream && text == "" {
		fs.Usage()
		return errUsage
	}

	table, err := loadFont(cfg.FontPath)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"font":   cfg.FontPath,
		"glyphs": table.Len(),
	}).Debug("font loaded")

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	width := termsize.Sampler(fd, cfg.Width)
	if *stream {
		sample := func() (int, error) {
			w, err := width()
			log.WithField("width", w).Debug("sampled line width")
			return w, err
		}
		return explain(blockfont.Stream(stdin, out, table, sample, cfg.Inverted))
	}

	w, err := width()
	if err != nil {
		return err
	}
	log.WithField("width", w).Debug("sampled line width")
	r, err := blockfont.NewRenderer(table, w)
	if err != nil {
		return explain(err)
	}
	r.SetInverted(cfg.Inverted)
	return explain(r.RenderString(out, text))
}

// explain adds the user facing message for a width that is too small.
func explain(err error) error {
	if errors.Is(err, blockfont.ErrWidth) {
		return fmt.Errorf("terminal width must be at least %d: %w", blockfont.MinLineWidth, err)
	}
	return err
}

func loadFont(path string) (*blockfont.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".bdf") {
		fnt, err := bdf.Open(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return fnt.Table()
	}

	table, err := blockfont.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
