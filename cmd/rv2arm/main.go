// Command rv2arm translates RISC-V (RV64I) assembly text into
// equivalent AArch64 assembly text.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rv2arm/emitter"
	"rv2arm/parser"
	"rv2arm/translator"

	"github.com/pkg/errors"
)

func main() {
	var outPath string
	var verbose bool
	flag.StringVar(&outPath, "o", "", "output file (default: stdout)")
	flag.BoolVar(&verbose, "v", false, "log stage timing and line counts to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o output] [-v] <input.s>\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := flag.Arg(0)

	if err := run(inputFile, outPath, verbose); err != nil {
		fmt.Fprintf(os.Stderr, "rv2arm: %v\n", err)
		os.Exit(1)
	}
}

// run executes the full parse -> translate -> emit pipeline. On any
// error, no output file is written — spec.md §7's no-partial-output
// policy, mirrored here exactly the way cmd/dis68 and cmd/asm68 never
// write a partial result either.
func run(inputFile, outPath string, verbose bool) error {
	src, err := os.ReadFile(inputFile)
	if err != nil {
		return errors.Wrap(err, "reading input file")
	}

	start := time.Now()
	prog, err := parser.Parse(string(src))
	if err != nil {
		return errors.Wrap(err, "parsing")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "rv2arm: parsed %d nodes in %s\n", len(prog.Nodes), time.Since(start))
	}

	start = time.Now()
	target, err := translator.Translate(prog)
	if err != nil {
		return errors.Wrap(err, "translating")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "rv2arm: translated to %d nodes in %s\n", len(target.Nodes), time.Since(start))
	}

	text, err := emitter.Emit(target)
	if err != nil {
		return errors.Wrap(err, "emitting")
	}

	if outPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return errors.Wrap(err, "writing output file")
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "rv2arm: wrote %s\n", outPath)
	}
	return nil
}
