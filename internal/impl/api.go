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

// Package impl contains the symbol table matcher and the move classifier.
//
// The matcher follows Paul Heckel, "A Technique for Isolating Differences Between Files", CACM
// 21(4), 1978, with one important difference: keys are allowed to appear multiple times in
// both inputs. Duplicates are paired in order of appearance, the n-th unpaired occurrence in y is
// paired with the n-th unpaired occurrence in x. Pairing them in any other order produces
// crossing pairs and with that spurious moves.
package impl

import (
	"slices"

	"znkr.io/listdiff/internal/rvecs"
)

// Diff pairs the elements of x and y that share an identity key and returns the record vectors
// for the pairing together with the positions in x of all pairs that are not equal according to
// eq. The returned updates are sorted.
//
// If eq is nil, key equality implies element equality and updates is always empty.
func Diff[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool) (rx, ry []int, updates []int) {
	rx, ry = rvecs.Make(x, y)
	if len(x) == 0 || len(y) == 0 {
		return
	}

	// Pairing a common prefix directly yields the same result as the symbol table: every earlier
	// position in x is already paired, so the oldest unpaired occurrence of the key is x[s]
	// itself. The same is not true for a common suffix.
	smin := 0
	for smin < len(x) && smin < len(y) && key(x[smin]) == key(y[smin]) {
		rvecs.Pair(rx, ry, smin, smin)
		if eq != nil && !eq(x[smin], y[smin]) {
			updates = append(updates, smin)
		}
		smin++
	}
	if smin == len(x) || smin == len(y) {
		return
	}

	tab := newTable(x, y, smin, key)
	for t := smin; t < len(y); t++ {
		e := &tab.entries[tab.ids[t]]
		if _, ok := e.new.pop(tab.nextNew); !ok {
			panic("never reached")
		}
		s, ok := e.old.pop(tab.nextOld)
		if !ok {
			continue // insertion
		}
		rvecs.Pair(rx, ry, s, t)
		if eq != nil && !eq(x[s], y[t]) {
			updates = append(updates, s)
		}
	}
	slices.Sort(updates)
	return rx, ry, updates
}
