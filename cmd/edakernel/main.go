// SPDX-License-Identifier: MIT

// Command edakernel is a thin stand-in for the editor host that would
// normally drive this kernel: it loads a net segment from an .lp-style
// file, runs the simplifier over it, and writes the result back out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/edakernel/netsimplify"
	"github.com/katalvlaran/edakernel/sexpr"
)

func main() {
	logger := log.New(os.Stderr, "edakernel: ", 0)
	if err := run(os.Args[1:], logger); err != nil {
		logger.Fatal(err)
	}
}

func run(args []string, logger *log.Logger) error {
	fs := flag.NewFlagSet("edakernel", flag.ContinueOnError)
	in := fs.String("in", "", "path to the input .lp-style net segment file")
	out := fs.String("out", "", "path to write the simplified net segment (defaults to -in, in place)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("edakernel: -in is required")
	}
	if *out == "" {
		*out = *in
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("edakernel: reading %s: %w", *in, err)
	}

	root, err := sexpr.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("edakernel: parsing %s: %w", *in, err)
	}

	seg, err := netsimplify.DecodeSegment(root)
	if err != nil {
		return fmt.Errorf("edakernel: decoding %s: %w", *in, err)
	}

	simplifier := netsimplify.NewSimplifier(netsimplify.WithLogger(logger))
	res := simplifier.Simplify(seg)
	logger.Printf("simplified %s: modified=%v new_junctions=%d disconnected=%d",
		*in, res.Modified, len(res.NewJunctions), len(res.DisconnectedPinsOrPads))

	text := sexpr.Format(netsimplify.EncodeSegment(seg))
	if err := os.WriteFile(*out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("edakernel: writing %s: %w", *out, err)
	}
	return nil
}
