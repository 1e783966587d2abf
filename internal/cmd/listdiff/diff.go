// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/byteview"
	"znkr.io/listdiff/textdiff"
)

type diffOptions struct {
	keySep string
	batch  bool
	format string
}

func newDiffCommand(log *logrus.Logger) *cobra.Command {
	var opts diffOptions
	cmd := &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Compare two files of keyed lines",
		Long: `Compare two files line by line.

The key of a line is the text before the first key separator, lines without a separator are their
own key. Lines that keep their key but change the rest of the text are reported as updates, lines
that change their relative order are reported as moves.

Positions are zero based. Deletes, updates, and move sources are positions in OLD. Inserts and
move destinations are positions in NEW.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd.OutOrStdout(), log, args[0], args[1], &opts)
		},
	}
	cmd.Flags().StringVar(&opts.keySep, "key-sep", "\t", "separator between key and content of a line")
	cmd.Flags().BoolVar(&opts.batch, "batch", false, "normalize the result for batch updates")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format, one of text, json, yaml")
	return cmd
}

func runDiff(w io.Writer, log *logrus.Logger, oldPath, newPath string, opts *diffOptions) error {
	switch opts.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	x, err := os.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading old file: %w", err)
	}
	y, err := os.ReadFile(newPath)
	if err != nil {
		return fmt.Errorf("reading new file: %w", err)
	}

	dopts := []listdiff.Option{textdiff.KeySeparator(opts.keySep)}
	if opts.batch {
		dopts = append(dopts, listdiff.BatchUpdates())
	}
	start := time.Now()
	r := textdiff.KeyedLines(x, y, dopts...)
	log.WithFields(logrus.Fields{
		"old":      oldPath,
		"new":      newPath,
		"changes":  r.ChangeCount(),
		"duration": time.Since(start),
	}).Debug("compared files")

	switch opts.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReport(r))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReport(r)); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeText(w, r, byteview.SplitLines(byteview.From(x)), byteview.SplitLines(byteview.From(y)))
}

var (
	deleteColor = color.New(color.FgRed)
	insertColor = color.New(color.FgGreen)
	moveColor   = color.New(color.FgYellow)
	updateColor = color.New(color.FgCyan)
)

// writeText writes one instruction per line followed by the text of the line.
func writeText(w io.Writer, r listdiff.Result[string], xs, ys []byteview.ByteView) error {
	for op := range r.Instructions() {
		var err error
		switch op.Op {
		case listdiff.Delete:
			_, err = deleteColor.Fprintf(w, "-%d\t%s\n", op.From, xs[op.From])
		case listdiff.Insert:
			_, err = insertColor.Fprintf(w, "+%d\t%s\n", op.To, ys[op.To])
		case listdiff.Move:
			_, err = moveColor.Fprintf(w, ">%d->%d\t%s\n", op.From, op.To, ys[op.To])
		case listdiff.Update:
			_, err = updateColor.Fprintf(w, "~%d\t%s\n", op.From, xs[op.From])
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d changes\n", r.ChangeCount())
	return err
}

type move struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

type report struct {
	Deletes []int  `json:"deletes" yaml:"deletes"`
	Inserts []int  `json:"inserts" yaml:"inserts"`
	Updates []int  `json:"updates" yaml:"updates"`
	Moves   []move `json:"moves" yaml:"moves"`
	Changes int    `json:"changes" yaml:"changes"`
}

func newReport(r listdiff.Result[string]) report {
	rep := report{
		Deletes: nonNil(r.Deletes),
		Inserts: nonNil(r.Inserts),
		Updates: nonNil(r.Updates),
		Moves:   make([]move, len(r.Moves)),
		Changes: r.ChangeCount(),
	}
	for i, mv := range r.Moves {
		rep.Moves[i] = move{From: mv.From, To: mv.To}
	}
	return rep
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
