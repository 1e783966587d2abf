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

// Package listview models a list view that is updated incrementally with batch updates.
//
// A batch update is a sequence of [listdiff.Instruction]s. Deletes, updates, and move sources
// refer to positions in the list before the update, inserts and move destinations refer to
// positions after the update. Like the list views of common UI toolkits, a [List] rejects batch
// updates that reference a position more than once or that don't add up to the new number of
// elements. Results of [listdiff.Result.ForBatchUpdates] are always accepted.
package listview

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"znkr.io/listdiff"
)

var (
	// ErrOutOfRange is returned for instructions that refer to positions outside of the list.
	ErrOutOfRange = errors.New("position out of range")

	// ErrConflict is returned for instructions that refer to a position that was already used by
	// an earlier instruction of the same batch update.
	ErrConflict = errors.New("position already used in batch update")

	// ErrCountMismatch is returned if the number of elements after the batch update doesn't
	// match the number of elements in the data source.
	ErrCountMismatch = errors.New("invalid number of elements after batch update")
)

// UpdateError describes an instruction that was rejected.
type UpdateError struct {
	Instruction listdiff.Instruction
	Err         error
}

func (e *UpdateError) Error() string {
	switch e.Instruction.Op {
	case listdiff.Delete, listdiff.Update:
		return fmt.Sprintf("%v %d: %v", e.Instruction.Op, e.Instruction.From, e.Err)
	case listdiff.Insert:
		return fmt.Sprintf("%v %d: %v", e.Instruction.Op, e.Instruction.To, e.Err)
	default:
		return fmt.Sprintf("%v %d -> %d: %v", e.Instruction.Op, e.Instruction.From, e.Instruction.To, e.Err)
	}
}

func (e *UpdateError) Unwrap() error { return e.Err }

// List is a list view showing elements of type T. It's safe for concurrent use, batch updates
// are serialized.
type List[T any] struct {
	mu    sync.Mutex
	items []T
}

// New returns a list view showing items.
func New[T any](items []T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

// Len returns the number of elements shown.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns the elements shown.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.items)
}

// ReloadData replaces all elements without animating any change.
func (l *List[T]) ReloadData(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = slices.Clone(items)
}

// Marks for positions before and after the batch update.
const (
	deleted uint8 = 1 << iota
	movedFrom
	reloaded
)

const (
	inserted uint8 = 1 << iota
	movedTo
)

// PerformBatchUpdates applies ops to the list. The data source items is the content of the list
// after the update, inserted and reloaded elements are read from it.
//
// If any instruction is rejected, the list is not changed and the returned error is an
// *[UpdateError] or wraps [ErrCountMismatch].
func (l *List[T]) PerformBatchUpdates(items []T, ops iter.Seq[listdiff.Instruction]) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.performBatchUpdates(items, ops)
}

func (l *List[T]) performBatchUpdates(items []T, ops iter.Seq[listdiff.Instruction]) error {
	n, m := len(l.items), len(items)
	before := make([]uint8, n)
	after := make([]uint8, m)
	var moves []listdiff.MoveIndex
	ndeleted, ninserted := 0, 0

	for op := range ops {
		switch op.Op {
		case listdiff.Delete, listdiff.Update:
			if op.From < 0 || op.From >= n {
				return &UpdateError{op, ErrOutOfRange}
			}
			if before[op.From] != 0 {
				return &UpdateError{op, ErrConflict}
			}
			if op.Op == listdiff.Delete {
				before[op.From] = deleted
				ndeleted++
			} else {
				before[op.From] = reloaded
			}
		case listdiff.Insert:
			if op.To < 0 || op.To >= m {
				return &UpdateError{op, ErrOutOfRange}
			}
			if after[op.To] != 0 {
				return &UpdateError{op, ErrConflict}
			}
			after[op.To] = inserted
			ninserted++
		case listdiff.Move:
			if op.From < 0 || op.From >= n || op.To < 0 || op.To >= m {
				return &UpdateError{op, ErrOutOfRange}
			}
			if before[op.From] != 0 || after[op.To] != 0 {
				return &UpdateError{op, ErrConflict}
			}
			before[op.From] = movedFrom
			after[op.To] = movedTo
			moves = append(moves, listdiff.MoveIndex{From: op.From, To: op.To})
		default:
			panic(fmt.Sprintf("unknown op: %v", op.Op))
		}
	}

	if n-ndeleted != m-ninserted {
		return fmt.Errorf("%w: %d elements - %d deleted + %d inserted != %d elements in data source",
			ErrCountMismatch, n, ndeleted, ninserted, m)
	}

	out := make([]T, m)
	for t, f := range after {
		if f == inserted {
			out[t] = items[t]
		}
	}
	for _, mv := range moves {
		out[mv.To] = l.items[mv.From]
	}
	t := 0
	for s, f := range before {
		if f == deleted || f == movedFrom {
			continue
		}
		for after[t] != 0 {
			t++
		}
		if f == reloaded {
			out[t] = items[t]
		} else {
			out[t] = l.items[s]
		}
		t++
	}
	l.items = out
	return nil
}

// Update compares the elements shown with items and applies the changes as a batch update.
func Update[T any, K comparable](l *List[T], items []T, key func(T) K, eq func(a, b T) bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	r := listdiff.DiffFunc(l.items, items, key, eq, listdiff.BatchUpdates())
	return l.performBatchUpdates(items, r.Instructions())
}
