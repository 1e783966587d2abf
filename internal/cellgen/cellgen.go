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

// Package cellgen generates random lists of cells and random changes to them. It's used to stress
// test diffs against list views.
package cellgen

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Cell is the content of a single row of a list view.
type Cell struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// DiffIdentifier returns the identity key of the cell.
func (c *Cell) DiffIdentifier() string { return c.ID }

func (c *Cell) String() string { return fmt.Sprintf("%s(%s, %s)", c.ID, c.Title, c.Subtitle) }

// Equal reports whether a and b show the same content.
func Equal(a, b *Cell) bool {
	return a.Title == b.Title && a.Subtitle == b.Subtitle
}

// Generator produces random cells. The output only depends on the seed.
type Generator struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	var s [32]byte
	binary.LittleEndian.PutUint64(s[:], seed)
	src := rand.NewChaCha8(s)
	return &Generator{src: src, rng: rand.New(src)}
}

func (g *Generator) text() string {
	return fmt.Sprintf("text %d", g.rng.IntN(1000))
}

// Cell returns a new cell with a unique ID.
func (g *Generator) Cell() *Cell {
	return &Cell{
		ID:       uuid.Must(uuid.NewRandomFromReader(g.src)).String(),
		Title:    g.text(),
		Subtitle: g.text(),
	}
}

// Cells returns n new cells with unique IDs.
func (g *Generator) Cells(n int) []*Cell {
	out := make([]*Cell, n)
	for i := range out {
		out[i] = g.Cell()
	}
	return out
}

// Mutation describes a list of cells before and after random changes.
type Mutation struct {
	From, To []*Cell

	// Number of changes of each kind. Changes may overlap, e.g. a cell can be inserted and then
	// moved, so these are not the number of changes a diff finds.
	Deletes, Inserts, Moves, Updates, Duplicates int
}

// Mutate applies a random number of random changes to from. Deletes and inserts are skipped if
// they would leave fewer than minCount or more than maxCount cells. Duplicates insert a new cell
// with the ID of an existing cell.
//
// Cells are never modified, updated cells are replaced with a new cell.
func (g *Generator) Mutate(from []*Cell, minCount, maxCount int) Mutation {
	to := slices.Clone(from)
	m := Mutation{From: from}
	for range g.rng.IntN(len(from)/2 + 2) {
		switch g.rng.IntN(5) {
		case 0:
			if len(to) <= minCount || len(to) == 0 {
				continue
			}
			i := g.rng.IntN(len(to))
			to = slices.Delete(to, i, i+1)
			m.Deletes++
		case 1:
			if len(to) >= maxCount {
				continue
			}
			to = slices.Insert(to, g.rng.IntN(len(to)+1), g.Cell())
			m.Inserts++
		case 2:
			if len(to) < 2 {
				continue
			}
			i := g.rng.IntN(len(to))
			c := to[i]
			to = slices.Delete(to, i, i+1)
			to = slices.Insert(to, g.rng.IntN(len(to)+1), c)
			m.Moves++
		case 3:
			if len(to) == 0 {
				continue
			}
			i := g.rng.IntN(len(to))
			c := *to[i]
			c.Title = g.text()
			to[i] = &c
			m.Updates++
		case 4:
			if len(to) == 0 || len(to) >= maxCount {
				continue
			}
			c := *to[g.rng.IntN(len(to))]
			c.Subtitle = g.text()
			to = slices.Insert(to, g.rng.IntN(len(to)+1), &c)
			m.Duplicates++
		}
	}
	m.To = to
	return m
}

// Fixture is a pair of lists that can be stored to reproduce a failure.
type Fixture struct {
	Seed uint64  `yaml:"seed"`
	From []*Cell `yaml:"from"`
	To   []*Cell `yaml:"to"`
}

// WriteFixture writes f as YAML.
func WriteFixture(w io.Writer, f Fixture) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding fixture: %w", err)
	}
	return enc.Close()
}

// ReadFixture reads a fixture written by [WriteFixture].
func ReadFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("decoding fixture: %w", err)
	}
	return f, nil
}
