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

package impl

import (
	"iter"

	"znkr.io/listdiff/internal/rvecs"
)

// Moves returns the pairs of the record vectors rx and ry that changed their position, as
// (position in x, position in y), ordered by position in y.
//
// A pair stays in place if its rank among the paired positions of x is the same as its rank among
// the paired positions of y. In other words, after removing all deletions from x and all
// insertions from y, the element sits at the same index. All other pairs are moves. This is a
// single forward pass and doesn't attempt to find the smallest set of moves: swapping two
// neighbors reports both of them as moved, a longest increasing subsequence would report only
// one. The pairs that stay in place always have increasing positions in x, so the moves are
// sufficient to restore y.
func Moves(rx, ry []int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		// rank[s] is the number of paired positions in x before s.
		rank := make([]int, len(rx))
		r := 0
		for s, t := range rx {
			rank[s] = r
			if t != rvecs.None {
				r++
			}
		}

		r = 0
		for t, s := range ry {
			if s == rvecs.None {
				continue
			}
			if rank[s] != r {
				if !yield(s, t) {
					return
				}
			}
			r++
		}
	}
}
