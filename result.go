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

package listdiff

import (
	"fmt"
	"strings"
)

// MoveIndex describes an element that moved from position From in the old list to position To in
// the new list.
type MoveIndex struct {
	From, To int
}

func (m MoveIndex) String() string { return fmt.Sprintf("%d->%d", m.From, m.To) }

// Result describes the changes necessary to turn an old list x into a new list y.
//
// Deletes and Updates are positions in x, Inserts are positions in y. All three are sorted in
// ascending order. Moves are ordered by their position in y.
//
// An element that was moved and updated is reported in Moves and in Updates, so a position of x
// can be both an update and the source of a move. Only results returned by
// [Result.ForBatchUpdates] put every position of x in at most one of Deletes, Updates, and the
// sources of Moves. Use it for consumers that can't handle overlaps.
//
// Results must not be modified. Use [Result.ForBatchUpdates] to derive a new result.
type Result[K comparable] struct {
	Inserts []int
	Deletes []int
	Updates []int
	Moves   []MoveIndex

	oldIndex map[K]int
	newIndex map[K]int
}

// ChangeCount returns the total number of changes.
func (r Result[K]) ChangeCount() int {
	return len(r.Inserts) + len(r.Deletes) + len(r.Updates) + len(r.Moves)
}

// HasChanges reports whether the result contains any change.
func (r Result[K]) HasChanges() bool { return r.ChangeCount() > 0 }

// OldIndexFor returns the position of the element with the given key in the old list. If the key
// appears multiple times, the first position is returned.
func (r Result[K]) OldIndexFor(key K) (int, bool) {
	i, ok := r.oldIndex[key]
	return i, ok
}

// NewIndexFor returns the position of the element with the given key in the new list. If the key
// appears multiple times, the first position is returned.
func (r Result[K]) NewIndexFor(key K) (int, bool) {
	i, ok := r.newIndex[key]
	return i, ok
}

// Validate checks that r is a consistent result for an old list of length n and a new list of
// length m.
func (r Result[K]) Validate(n, m int) error {
	if n+len(r.Inserts)-len(r.Deletes) != m {
		return fmt.Errorf("%d elements + %d inserts - %d deletes != %d elements", n, len(r.Inserts), len(r.Deletes), m)
	}

	// Markers for the old and the new positions.
	const (
		deleted = 1 << iota
		updated
		movedFrom
	)
	const (
		inserted = 1 << iota
		movedTo
	)
	xs := make([]uint8, n)
	ys := make([]uint8, m)

	if err := mark(xs, r.Deletes, deleted, "delete"); err != nil {
		return err
	}
	if err := mark(xs, r.Updates, updated, "update"); err != nil {
		return err
	}
	if err := mark(ys, r.Inserts, inserted, "insert"); err != nil {
		return err
	}
	for _, mv := range r.Moves {
		if mv.From < 0 || mv.From >= n || mv.To < 0 || mv.To >= m {
			return fmt.Errorf("move %v out of range", mv)
		}
		if xs[mv.From]&movedFrom != 0 {
			return fmt.Errorf("duplicate move from %d", mv.From)
		}
		if ys[mv.To]&movedTo != 0 {
			return fmt.Errorf("duplicate move to %d", mv.To)
		}
		xs[mv.From] |= movedFrom
		ys[mv.To] |= movedTo
	}

	for s, f := range xs {
		switch {
		case f&deleted != 0 && f&movedFrom != 0:
			return fmt.Errorf("position %d is deleted and moved", s)
		case f&deleted != 0 && f&updated != 0:
			return fmt.Errorf("position %d is deleted and updated", s)
		}
	}
	for t, f := range ys {
		if f&inserted != 0 && f&movedTo != 0 {
			return fmt.Errorf("position %d is inserted and a move destination", t)
		}
	}
	return nil
}

// mark sets flag for all positions in idx. idx must be sorted, unique, and in range.
func mark(flags []uint8, idx []int, flag uint8, what string) error {
	for i, p := range idx {
		if p < 0 || p >= len(flags) {
			return fmt.Errorf("%s at %d out of range [0, %d)", what, p, len(flags))
		}
		if i > 0 && idx[i-1] >= p {
			return fmt.Errorf("%s positions not sorted or not unique: %d after %d", what, p, idx[i-1])
		}
		flags[p] |= flag
	}
	return nil
}

// String returns a human readable representation of the changes in r.
func (r Result[K]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "deletes: %v\n", r.Deletes)
	fmt.Fprintf(&sb, "inserts: %v\n", r.Inserts)
	fmt.Fprintf(&sb, "updates: %v\n", r.Updates)
	fmt.Fprintf(&sb, "moves: %v\n", r.Moves)
	return sb.String()
}
