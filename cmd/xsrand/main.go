// Command xsrand streams generator output as raw bytes, for feeding
// external statistical test harnesses such as PractRand or dieharder:
//
//	xsrand | RNG_test stdin64
//	xsrand -seed 0 -n 1073741824 -o sample.bin
//
// With no flags it seeds from OS entropy and writes to stdout until
// the consumer closes the pipe.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/borkshop/xorsquare"

	"go.uber.org/multierr"
)

func main() {
	seed := flag.String("seed", "", "64-bit seed (decimal or 0x hex); default seeds from OS entropy")
	n := flag.Int64("n", 0, "stop after writing this many bytes; 0 streams forever")
	out := flag.String("o", "", "write to this file instead of stdout")
	flag.Parse()
	log.SetFlags(0)

	if err := run(*seed, *n, *out); err != nil {
		log.Fatalf("xsrand: %v", err)
	}
}

func run(seed string, n int64, path string) error {
	rng, err := newRng(seed)
	if err != nil {
		return err
	}

	if path == "" {
		// A consumer closing the pipe is the normal way an unbounded
		// stream ends, so write errors on stdout are not reported.
		_ = emit(os.Stdout, rng, n)
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return multierr.Append(emit(f, rng, n), f.Close())
}

func newRng(seed string) (*xorsquare.Rng, error) {
	if seed == "" {
		return xorsquare.FromEntropy()
	}
	v, err := strconv.ParseUint(seed, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("bad -seed %q: %w", seed, err)
	}
	return xorsquare.FromUint64(v), nil
}

// emit writes n random bytes to w in 64KiB chunks, or streams forever
// when n is 0.
func emit(w io.Writer, rng *xorsquare.Rng, n int64) error {
	buf := make([]byte, 64*1024)
	var written int64
	for n == 0 || written < n {
		chunk := buf
		if n > 0 && n-written < int64(len(chunk)) {
			chunk = chunk[:n-written]
		}
		rng.FillBytes(chunk)
		m, err := w.Write(chunk)
		written += int64(m)
		if err != nil {
			return err
		}
	}
	return nil
}
