// The lz8dec command decompresses an LZ8S stream. It must be run with
// the same -o, -l, -m, -A and -n settings the encoder used; -x decodes
// streams written with inverted offsets. On a truncated stream the
// bytes decoded so far are still written before the error is reported.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/dmsc/lz8s"
)

var (
	bitsMOff  = flag.Int("o", 8, "match offset `bits`")
	maxLLen   = flag.Int("l", 255, "max literal run length")
	maxMLen   = flag.Int("m", 255, "max match run length")
	offsetRel = flag.Int("A", -1, "decode position relative to `address` instead of offset")
	zeroOff   = flag.Bool("n", false, "do not omit match offset on zero match length")
	xorOff    = flag.Bool("x", false, "offsets are inverted")
	verbose   = flag.Bool("v", false, "show output size")
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"LZ8D ultra-simple LZ based decompressor.\n"+
			"\n"+
			"Usage: %s [options] <input_file> <output_file>\n"+
			"\n"+
			"If output_file is omitted, write to standard output, and if\n"+
			"input_file is also omitted, read from standard input.\n"+
			"\n"+
			"Options:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: error, %v\nTry '%s -h' for help.\n",
			os.Args[0], err, os.Args[0])
		os.Exit(1)
	}
}

func run() error {
	cfg := lz8s.Config{
		BitsMOff:   *bitsMOff,
		MaxLLen:    *maxLLen,
		MaxMLen:    *maxMLen,
		ZeroOffset: *zeroOff,
		XorOffset:  *xorOff,
		OffsetRel:  *offsetRel,
	}
	dec, err := lz8s.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if flag.NArg() > 2 {
		return fmt.Errorf("too many arguments: one input file and one output file expected")
	}

	input := os.Stdin
	if flag.NArg() > 0 {
		input, err = os.Open(flag.Arg(0))
		if err != nil {
			return fmt.Errorf("can't open input file: %v", err)
		}
		defer input.Close()
	}

	out, decErr := dec.DecodeFrom(nil, bufio.NewReader(input))

	output := os.Stdout
	if flag.NArg() > 1 {
		output, err = os.Create(flag.Arg(1))
		if err != nil {
			return fmt.Errorf("can't open output file: %v", err)
		}
		defer output.Close()
	}
	if _, err := output.Write(out); err != nil {
		return fmt.Errorf("can't write output: %v", err)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "Output size: %d\n", len(out))
	}
	return decErr
}
