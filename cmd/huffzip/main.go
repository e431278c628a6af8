// Command huffzip compresses or decompresses a single file with Huffman
// coding.
//
// Usage:
//
//     huffzip [-d] [-o OUTPUT] [-dump] [-q] INPUT
//
// Without -o, compression writes INPUT.huf and decompression writes INPUT
// minus its .huf suffix (or INPUT.out if there is none).  An OUTPUT of "-"
// means standard output.
//
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	huffman "github.com/chronos-tachyon/huffzip"
	"github.com/chronos-tachyon/huffzip/internal/logger"
)

const suffix = ".huf"

type options struct {
	decompress bool
	output     string
	dump       bool
	quiet      bool
	input      string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffzip", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.BoolVar(&opts.decompress, "d", false, "decompress instead of compress")
	fs.StringVar(&opts.output, "o", "", "output file (\"-\" for standard output)")
	fs.BoolVar(&opts.dump, "dump", false, "dump the Huffman tree and code table to standard error")
	fs.BoolVar(&opts.quiet, "q", false, "suppress informational messages")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: huffzip [-d] [-o OUTPUT] [-dump] [-q] INPUT\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	opts.input = fs.Arg(0)
	if opts.output == "" {
		opts.output = defaultOutput(opts.input, opts.decompress)
	}

	log := logger.New(stderr, "huffzip: ", opts.quiet)
	if err := process(opts, stdout, stderr, log); err != nil {
		log.Errorf("%s: %v", opts.input, err)
		return 1
	}
	return 0
}

func defaultOutput(input string, decompress bool) string {
	if !decompress {
		return input + suffix
	}
	if trimmed := strings.TrimSuffix(input, suffix); trimmed != input && trimmed != "" {
		return trimmed
	}
	return input + ".out"
}

func process(opts options, stdout, stderr io.Writer, log logger.Logger) (err error) {
	in, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer in.Close()

	if opts.dump {
		if err := dump(in, stderr, opts.decompress); err != nil {
			return err
		}
	}

	var out io.Writer = stdout
	if opts.output != "-" {
		if err := checkDistinct(in, opts.output); err != nil {
			return err
		}
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return createErr
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				_ = os.Remove(opts.output)
			}
		}()
		out = f
	}

	cw := &countingWriter{w: out}
	bw := bufio.NewWriter(cw)
	if opts.decompress {
		err = huffman.Decompress(bw, in)
	} else {
		err = huffman.Compress(bw, in)
	}
	if err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	inSize, outSize := fileSize(in), cw.n
	if opts.decompress {
		log.Infof("decompressed %s to %s (%d -> %d bytes)", opts.input, opts.output, inSize, outSize)
	} else {
		log.Infof("compressed %s to %s (%d -> %d bytes)", opts.input, opts.output, inSize, outSize)
	}
	return nil
}

// dump writes the tree and code table for the input to w, then rewinds the
// input.  For compressed input, the tree comes from the header.
func dump(in *os.File, w io.Writer, decompress bool) error {
	var ft huffman.FrequencyTable
	var err error
	if decompress {
		ft, err = huffman.ReadHeader(bufio.NewReader(in))
	} else {
		ft, err = huffman.BuildFrequencyTable(bufio.NewReader(in))
	}
	if err != nil {
		return err
	}

	t := huffman.BuildTree(ft)
	defer t.Release()

	if _, err := t.Dump(w); err != nil {
		return err
	}
	if _, err := t.Codes().Dump(w); err != nil {
		return err
	}

	_, err = in.Seek(0, io.SeekStart)
	return err
}

// checkDistinct fails if output names the same file as in, since creating
// the output would truncate the input before it is read.
func checkDistinct(in *os.File, output string) error {
	outInfo, err := os.Stat(output)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	inInfo, err := in.Stat()
	if err != nil {
		return err
	}
	if os.SameFile(inInfo, outInfo) {
		return fmt.Errorf("output %s is the same file as the input", output)
	}
	return nil
}

func fileSize(f *os.File) int64 {
	fi, err := f.Stat()
	if err != nil {
		return -1
	}
	return fi.Size()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
