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

import "znkr.io/listdiff/internal/rvecs"

// queue is a FIFO queue of positions in one of the inputs. The queue doesn't own any memory, the
// positions are linked through a next slice that is shared by all queues for the same input.
type queue struct {
	head, tail int
}

var emptyQueue = queue{rvecs.None, rvecs.None}

func (q *queue) push(next []int, p int) {
	next[p] = rvecs.None
	if q.tail == rvecs.None {
		q.head = p
	} else {
		next[q.tail] = p
	}
	q.tail = p
}

func (q *queue) pop(next []int) (int, bool) {
	p := q.head
	if p == rvecs.None {
		return rvecs.None, false
	}
	q.head = next[p]
	if q.head == rvecs.None {
		q.tail = rvecs.None
	}
	return p, true
}

// entry is the symbol table record for a single identity key. It holds the positions with that
// key that haven't been paired yet, in ascending order, for both inputs.
type entry struct {
	old, new queue
}

// table is a symbol table mapping identity keys to entries.
//
// Keys are only looked up in a map while the table is built. After that, every position in y is
// associated with an entry by a dense ID, so the matcher doesn't hash anything.
type table struct {
	entries []entry
	ids     []int // ids[t] is the entry for y[t]
	nextOld []int // links for old queues, indexed by position in x
	nextNew []int // links for new queues, indexed by position in y
}

// newTable builds the symbol table for x[smin:] and y[smin:].
//
// The table is built by one pass over y followed by one pass over x. Elements of x whose key
// doesn't appear in y are not queued anywhere: they can never be paired and always end up as
// deletions.
func newTable[T any, K comparable](x, y []T, smin int, key func(T) K) *table {
	idx := make(map[K]int, len(y)-smin)
	tab := &table{
		entries: make([]entry, 0, len(y)-smin),
		ids:     make([]int, len(y)),
		nextOld: make([]int, len(x)),
		nextNew: make([]int, len(y)),
	}
	for t := smin; t < len(y); t++ {
		k := key(y[t])
		id, ok := idx[k]
		if !ok {
			id = len(tab.entries)
			idx[k] = id
			tab.entries = append(tab.entries, entry{old: emptyQueue, new: emptyQueue})
		}
		tab.ids[t] = id
		tab.entries[id].new.push(tab.nextNew, t)
	}
	for s := smin; s < len(x); s++ {
		id, ok := idx[key(x[s])]
		if !ok {
			continue // only in x
		}
		tab.entries[id].old.push(tab.nextOld, s)
	}
	return tab
}
