package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/weegfx/fontconv"
	"github.com/weegfx/fontconv/glyph"
)

func main() {
	outName := flag.String("o", "", "file to write the header to (defaults to stdout)")
	preview := flag.String("preview", "", "also write a PNG proof sheet of the range to this file")
	width := flag.Int("width", 8, "cell width in pixels (outline fonts only)")
	dpi := flag.Int("dpi", 72, "hinting resolution (outline fonts only)")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: fontconv [options] font.bdf first last")
		fmt.Fprintln(flag.CommandLine.Output(), "Converts a character range of a monospace font to a weegfx C header.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}
	first, err := strconv.Atoi(flag.Arg(1))
	if err != nil {
		log.Fatalln("bad first character code:", flag.Arg(1))
	}
	last, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalln("bad last character code:", flag.Arg(2))
	}

	kind := glyph.DetectKind(flag.Arg(0))
	in, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalln("failed to open font:", err)
	}
	defer in.Close()

	opts := fontconv.Options{
		First:    first,
		Last:     last,
		WidthPx:  *width,
		DPI:      *dpi,
		Warnings: os.Stderr,
	}

	out := os.Stdout
	if *outName != "" {
		if out, err = os.Create(*outName); err != nil {
			log.Fatalln("failed to create output:", err)
		}
	}
	if *preview != "" {
		pv, err := os.Create(*preview)
		if err != nil {
			log.Fatalln("failed to create preview:", err)
		}
		defer pv.Close()
		opts.Preview = pv
	}

	if err := fontconv.Convert(kind, in, out, opts); err != nil {
		// A half-written header must not survive a failed conversion.
		if *outName != "" {
			out.Close()
			os.Remove(*outName)
		}
		if *preview != "" {
			os.Remove(*preview)
		}
		log.Fatalln(err)
	}
	if *outName != "" {
		if err := out.Close(); err != nil {
			log.Fatalln(err)
		}
	}
}
