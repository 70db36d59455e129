// Command cpql1b solves a graph total-variation problem with a quadratic
// fidelity, an l1 term and box constraints by cut-pursuit.
//
// Usage:
//
//	cpql1b -in problem.json [-out solution.msgpack] [-debug] [-workers 4]
//
// Problem and solution encodings follow the file extension: .msgpack, .mpk
// and .mp are MessagePack, anything else is JSON. Without -out the solution
// is written to stdout in the -format encoding.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/cutpursuit/internal/problem"
)

func main() {
	in := flag.String("in", "", "Path to the problem file (required)")
	out := flag.String("out", "", "Path to the solution file (default: stdout)")
	format := flag.String("format", "json", "Solution encoding on stdout: json or msgpack")
	debug := flag.Bool("debug", false, "Turn on debugging output, one record per iteration")
	workers := flag.Int("workers", 0, "Maximum number of worker goroutines (default: GOMAXPROCS)")
	flag.Parse()

	var (
		zapLogger *zap.Logger
		err       error
	)
	if *debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Printf("can't initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()
	log := zapLogger.Sugar()

	if err := run(zapLogger, *in, *out, *format, *workers); err != nil {
		log.Errorf("cpql1b: %v", err)
		zapLogger.Sync()
		os.Exit(1)
	}
}

// run loads, solves and writes one problem.
func run(logger *zap.Logger, in, out, format string, workers int) error {
	if in == "" {
		return fmt.Errorf("missing -in; run with -h for help")
	}
	enc, err := problem.ParseFormat(format)
	if err != nil {
		return err
	}
	f, err := problem.Load(in)
	if err != nil {
		return err
	}
	inst, err := f.Build(logger.Named("ql1b"), workers)
	if err != nil {
		return err
	}
	logger.Info("problem loaded",
		zap.String("path", in),
		zap.Int("vertices", inst.Graph.V),
		zap.Int("edges", inst.Graph.E()),
	)

	sol, err := inst.Solve()
	if err != nil {
		return err
	}

	if out != "" {
		return problem.Save(out, sol)
	}
	return problem.Encode(os.Stdout, enc, sol)
}
