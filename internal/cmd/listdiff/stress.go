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
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/cellgen"
	"znkr.io/listdiff/listview"
)

type stressOptions struct {
	iterations int
	size       int
	parallel   int
	seed       uint64
	failures   string
	replay     string
}

func newStressCommand(log *logrus.Logger) *cobra.Command {
	var opts stressOptions
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Apply diffs of random lists to a list view",
		Long: `Generate random lists of cells, change them randomly, and apply the diff between the
original and the changed list to a list view. An iteration fails if the diff is invalid, if the list
view rejects the batch update, or if the list view doesn't show the changed list afterwards.

Failing iterations are stored as YAML fixtures if --failures is set. Use --replay to run a single
fixture again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.replay != "" {
				return replay(log, opts.replay)
			}
			return runStress(cmd.Context(), log, &opts)
		},
	}
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 1000, "number of iterations")
	cmd.Flags().IntVar(&opts.size, "size", 50, "number of cells before changes")
	cmd.Flags().IntVar(&opts.parallel, "parallel", runtime.GOMAXPROCS(0), "number of iterations to run in parallel")
	cmd.Flags().Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "seed of the first iteration")
	cmd.Flags().StringVar(&opts.failures, "failures", "", "directory to store failing iterations in")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "fixture to replay instead of running random iterations")
	return cmd
}

func runStress(ctx context.Context, log *logrus.Logger, opts *stressOptions) error {
	if opts.parallel < 1 {
		return fmt.Errorf("invalid --parallel %d", opts.parallel)
	}
	if opts.failures != "" {
		if err := os.MkdirAll(opts.failures, 0o755); err != nil {
			return fmt.Errorf("creating failures directory: %w", err)
		}
	}

	start := time.Now()
	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallel)
	for i := range opts.iterations {
		if gctx.Err() != nil {
			break
		}
		seed := opts.seed + uint64(i)
		g.Go(func() error {
			gen := cellgen.New(seed)
			m := gen.Mutate(gen.Cells(opts.size), 0, 2*opts.size)
			ilog := log.WithFields(logrus.Fields{
				"seed":    seed,
				"deletes": m.Deletes,
				"inserts": m.Inserts,
				"moves":   m.Moves,
				"updates": m.Updates,
			})
			err := check(m.From, m.To)
			if err == nil {
				ilog.Debug("iteration passed")
				return nil
			}
			failed.Add(1)
			ilog.WithError(err).Error("iteration failed")
			if opts.failures == "" {
				return nil
			}
			return storeFixture(opts.failures, cellgen.Fixture{Seed: seed, From: m.From, To: m.To})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}

	n := failed.Load()
	log.WithFields(logrus.Fields{
		"iterations": opts.iterations,
		"failures":   n,
		"duration":   time.Since(start).Round(time.Millisecond),
	}).Info("stress test done")
	if n > 0 {
		return fmt.Errorf("%d of %d iterations failed", n, opts.iterations)
	}
	return nil
}

func storeFixture(dir string, f cellgen.Fixture) error {
	path := filepath.Join(dir, fmt.Sprintf("seed-%d.yaml", f.Seed))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating fixture: %w", err)
	}
	if err := cellgen.WriteFixture(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func replay(log *logrus.Logger, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer in.Close()
	return replayFrom(log, in, path)
}

func replayFrom(log *logrus.Logger, r io.Reader, name string) error {
	f, err := cellgen.ReadFixture(r)
	if err != nil {
		return err
	}
	if err := check(f.From, f.To); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.WithField("fixture", name).Info("fixture passed")
	return nil
}

// check diffs from and to and verifies the result by applying it to a list view.
func check(from, to []*cellgen.Cell) error {
	r := listdiff.DiffFunc(from, to, (*cellgen.Cell).DiffIdentifier, cellgen.Equal)
	if err := r.Validate(len(from), len(to)); err != nil {
		return fmt.Errorf("invalid diff: %w", err)
	}
	b := r.ForBatchUpdates()
	if err := b.Validate(len(from), len(to)); err != nil {
		return fmt.Errorf("invalid batch update: %w", err)
	}

	l := listview.New(from)
	if err := l.PerformBatchUpdates(to, b.Instructions()); err != nil {
		return fmt.Errorf("batch update rejected: %w", err)
	}
	got := l.Items()
	if len(got) != len(to) {
		return fmt.Errorf("got %d cells after batch update, want %d", len(got), len(to))
	}
	for i := range got {
		if got[i].ID != to[i].ID || !cellgen.Equal(got[i], to[i]) {
			return fmt.Errorf("cell %d: got %v, want %v", i, got[i], to[i])
		}
	}
	return nil
}
