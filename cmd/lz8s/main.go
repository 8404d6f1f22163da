// The lz8s command compresses a file (or standard input) with the LZ8S
// format. The decoder must be run with the same -o, -l, -m, -A, -n and
// -x settings; the raw stream does not carry them.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dmsc/lz8s"
)

var (
	bitsMOff  = flag.Int("o", 8, "match offset `bits`")
	maxLLen   = flag.Int("l", 255, "max literal run length")
	maxMLen   = flag.Int("m", 255, "max match run length")
	offsetRel = flag.Int("A", -1, "encode position relative to `address` instead of offset")
	zeroOff   = flag.Bool("n", false, "do not omit match offset on zero match length")
	xorOff    = flag.Bool("x", false, "write inverted offsets")
	debug     = flag.Bool("d", false, "show debug information on compression chain")
	verbose   = flag.Bool("v", false, "show match length/offset statistics")
	quiet     = flag.Bool("q", false, "don't show detailed compression stats")
	fast      = flag.Bool("f", false, "use the hash chain match finder")
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"LZ8S ultra-simple LZ based compressor.\n"+
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
		FastSearch: *fast,
	}
	enc, err := lz8s.NewEncoder(cfg)
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
	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("can't read input: %v", err)
	}

	stats := &lz8s.Stats{}
	enc.Stats = stats
	if *debug {
		enc.Trace = os.Stderr
	}
	out, err := enc.Encode(nil, data)
	if err != nil {
		return err
	}

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

	fmt.Fprintf(os.Stderr, "LZ8S: max offset= %d,\tmax mlen= %d,\tmax llen= %d,\t",
		1<<uint(cfg.BitsMOff), cfg.MaxMLen, cfg.MaxLLen)
	fmt.Fprintf(os.Stderr, "ratio: %5d / %d = %5.2f%%\n",
		len(out), len(data), 100.0*float64(len(out))/float64(len(data)))
	if !*quiet {
		stats.Report(os.Stderr, len(data), len(out))
	}
	if *verbose {
		stats.ReportHistograms(os.Stderr)
	}
	return nil
}
