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

import "slices"

// ForBatchUpdates returns a copy of r that can be applied by a consumer that performs deletes,
// inserts, moves, and updates as separate operations against positional indexes, e.g. a list
// view's batch update.
//
// Such consumers reject operations that reference the same position more than once. Every move
// that conflicts with another operation is replaced by a delete of its source and an insert of
// its destination:
//
//   - a move whose source is also updated; the insert fetches the updated element anyway, so the
//     update is dropped.
//   - a move whose source is also deleted.
//   - a move whose destination is also inserted.
//
// The result has no position that is deleted and moved, inserted and moved to, or updated and
// moved. Results returned by this method are not changed by calling it again.
func (r Result[K]) ForBatchUpdates() Result[K] {
	out := Result[K]{
		Inserts:  slices.Clone(r.Inserts),
		Deletes:  slices.Clone(r.Deletes),
		oldIndex: r.oldIndex,
		newIndex: r.newIndex,
	}

	var dropped []int // updates of converted moves
	for _, mv := range r.Moves {
		_, deleted := slices.BinarySearch(r.Deletes, mv.From)
		_, updated := slices.BinarySearch(r.Updates, mv.From)
		_, inserted := slices.BinarySearch(r.Inserts, mv.To)
		if !deleted && !updated && !inserted {
			out.Moves = append(out.Moves, mv)
			continue
		}
		out.Deletes = append(out.Deletes, mv.From)
		out.Inserts = append(out.Inserts, mv.To)
		if updated {
			dropped = append(dropped, mv.From)
		}
	}
	out.Deletes = sortedSet(out.Deletes)
	out.Inserts = sortedSet(out.Inserts)

	slices.Sort(dropped)
	for _, s := range r.Updates {
		if _, ok := slices.BinarySearch(dropped, s); !ok {
			out.Updates = append(out.Updates, s)
		}
	}
	return out
}

func sortedSet(s []int) []int {
	slices.Sort(s)
	return slices.Compact(s)
}
