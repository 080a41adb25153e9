// Command clustereval scores the agreement of two clusterings.
//
// Usage:
//
//	clustereval [-format text|json] [-v] INPUT.yaml
//
// INPUT.yaml holds either two labelings or a raw count table:
//
//	labels:
//	  a: [0, 0, 1, 1, 2]
//	  b: [1, 1, 0, 0, 0]
//	  noise: -1          # optional noise label
//	  break_noise: true  # optional: noise elements become singleton clusters
//
//	counts:
//	  - [5, 1, 0]
//	  - [1, 4, 1]
//
// It prints the cluster-matching accuracy and the Pair Sets Index.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, for tests.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("clustereval", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", formatText, "Output format: text or json")
	verbose := fs.Bool("v", false, "Log solver diagnostics to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: clustereval [-format text|json] [-v] INPUT.yaml")
		fs.PrintDefaults()
		return 2
	}
	if *format != formatText && *format != formatJSON {
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return 2
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = f.Close() }() // read-only file

	table, err := decodeInput(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("clustereval: table loaded",
		"path", fs.Arg(0), "size1", table.Size1(), "size2", table.Size2(), "total", table.Total())

	rep, err := score(table, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err = rep.write(stdout, *format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
