// compare prints the number of changes each diff implementation reports for two files.
package main

import (
	"flag"
	"fmt"
	"os"

	"znkr.io/listdiff/internal/benchmarks"
)

type config struct {
	lib   string
	x, y  string
	txtar string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.lib, "lib", "", "only use this library, all libraries are used if empty")
	flag.StringVar(&cfg.txtar, "txtar", "", "use txtar file instead of two input files")
	flag.Parse()

	if cfg.txtar != "" {
		if flag.CommandLine.NArg() != 0 {
			fmt.Fprintf(os.Stderr, "error: usage: compare -txtar <file>\n")
			os.Exit(1)
		}
	} else {
		if flag.CommandLine.NArg() != 2 {
			fmt.Fprintf(os.Stderr, "error: usage: compare <x> <y>\n")
			os.Exit(1)
		}
		cfg.x = flag.CommandLine.Arg(0)
		cfg.y = flag.CommandLine.Arg(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	var in benchmarks.Input
	if cfg.txtar != "" {
		var err error
		in, err = benchmarks.LoadTxtar(cfg.txtar)
		if err != nil {
			return err
		}
	} else {
		var err error
		in.X, err = os.ReadFile(cfg.x)
		if err != nil {
			return err
		}
		in.Y, err = os.ReadFile(cfg.y)
		if err != nil {
			return err
		}
	}

	found := false
	for _, impl := range benchmarks.Impls {
		if cfg.lib != "" && impl.Name != cfg.lib {
			continue
		}
		found = true
		fmt.Printf("%s: %d changes\n", impl.Name, impl.Changes(in.X, in.Y))
	}
	if !found {
		return fmt.Errorf("lib not found %q", cfg.lib)
	}
	return nil
}
