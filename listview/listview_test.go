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

package listview

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/cellgen"
)

type item struct {
	key string
	val int
}

func itemKey(e item) string { return e.key }

func itemEqual(a, b item) bool { return a == b }

func TestPerformBatchUpdates(t *testing.T) {
	old := []item{{"a", 1}, {"b", 1}}
	next := []item{{"b", 2}, {"a", 1}}

	t.Run("raw", func(t *testing.T) {
		l := New(old)
		r := listdiff.DiffFunc(old, next, itemKey, itemEqual)
		err := l.PerformBatchUpdates(next, r.Instructions())
		require.ErrorIs(t, err, ErrConflict)

		var uerr *UpdateError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, listdiff.Instruction{Op: listdiff.Update, From: 1}, uerr.Instruction)
		assert.EqualError(t, err, "Update 1: position already used in batch update")
		assert.Equal(t, old, l.Items(), "list must not change")
	})

	t.Run("batch", func(t *testing.T) {
		l := New(old)
		r := listdiff.DiffFunc(old, next, itemKey, itemEqual, listdiff.BatchUpdates())
		require.NoError(t, l.PerformBatchUpdates(next, r.Instructions()))
		assert.Equal(t, next, l.Items())
	})
}

func TestPerformBatchUpdatesErrors(t *testing.T) {
	var (
		del = func(s int) listdiff.Instruction { return listdiff.Instruction{Op: listdiff.Delete, From: s} }
		ins = func(t int) listdiff.Instruction { return listdiff.Instruction{Op: listdiff.Insert, To: t} }
		upd = func(s int) listdiff.Instruction { return listdiff.Instruction{Op: listdiff.Update, From: s} }
		mov = func(s, t int) listdiff.Instruction { return listdiff.Instruction{Op: listdiff.Move, From: s, To: t} }
	)
	old := []item{{"a", 1}, {"b", 1}, {"c", 1}}

	tests := []struct {
		name    string
		items   []item
		ops     []listdiff.Instruction
		want    error
		wantMsg string
	}{
		{
			name:    "delete-out-of-range",
			items:   old[:2],
			ops:     []listdiff.Instruction{del(3)},
			want:    ErrOutOfRange,
			wantMsg: "Delete 3: position out of range",
		},
		{
			name:    "insert-out-of-range",
			items:   append(slices.Clone(old), item{"d", 1}),
			ops:     []listdiff.Instruction{ins(-1)},
			want:    ErrOutOfRange,
			wantMsg: "Insert -1: position out of range",
		},
		{
			name:    "move-out-of-range",
			items:   old,
			ops:     []listdiff.Instruction{mov(0, 3)},
			want:    ErrOutOfRange,
			wantMsg: "Move 0 -> 3: position out of range",
		},
		{
			name:    "double-delete",
			items:   old[:2],
			ops:     []listdiff.Instruction{del(0), del(0)},
			want:    ErrConflict,
			wantMsg: "Delete 0: position already used in batch update",
		},
		{
			name:    "delete-and-move",
			items:   old[:2],
			ops:     []listdiff.Instruction{del(0), mov(0, 1)},
			want:    ErrConflict,
			wantMsg: "Move 0 -> 1: position already used in batch update",
		},
		{
			name:    "insert-and-move",
			items:   old,
			ops:     []listdiff.Instruction{del(2), ins(1), mov(0, 1)},
			want:    ErrConflict,
			wantMsg: "Move 0 -> 1: position already used in batch update",
		},
		{
			name:    "delete-and-update",
			items:   old[:2],
			ops:     []listdiff.Instruction{del(1), upd(1)},
			want:    ErrConflict,
			wantMsg: "Update 1: position already used in batch update",
		},
		{
			name:    "count-mismatch",
			items:   old,
			ops:     []listdiff.Instruction{del(0)},
			want:    ErrCountMismatch,
			wantMsg: "invalid number of elements after batch update: 3 elements - 1 deleted + 0 inserted != 3 elements in data source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(old)
			err := l.PerformBatchUpdates(tt.items, slices.Values(tt.ops))
			require.ErrorIs(t, err, tt.want)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, old, l.Items(), "list must not change")
		})
	}
}

func TestPerformBatchUpdatesApply(t *testing.T) {
	l := New([]item{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}})
	items := []item{{"x", 1}, {"d", 1}, {"b", 2}, {"a", 1}}
	ops := []listdiff.Instruction{
		{Op: listdiff.Delete, From: 2},
		{Op: listdiff.Insert, To: 0},
		{Op: listdiff.Move, From: 3, To: 1},
		{Op: listdiff.Move, From: 0, To: 3},
		{Op: listdiff.Update, From: 1},
	}
	require.NoError(t, l.PerformBatchUpdates(items, slices.Values(ops)))
	assert.Equal(t, items, l.Items())
}

func TestReloadData(t *testing.T) {
	l := New([]item{{"a", 1}})
	l.ReloadData([]item{{"b", 1}, {"c", 1}})
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []item{{"b", 1}, {"c", 1}}, l.Items())
}

func TestUpdate(t *testing.T) {
	l := New([]item{{"a", 1}, {"b", 1}, {"c", 1}, {"a", 2}})
	steps := [][]item{
		{{"b", 2}, {"a", 1}, {"a", 3}},
		{},
		{{"a", 1}, {"a", 1}, {"b", 1}},
		{{"b", 1}, {"a", 1}, {"c", 1}, {"a", 2}},
	}
	for i, items := range steps {
		require.NoError(t, Update(l, items, itemKey, itemEqual), "step %d", i)
		assert.Equal(t, items, l.Items(), "step %d", i)
	}
}

func TestUpdateStress(t *testing.T) {
	const iterations = 500
	for seed := range uint64(iterations) {
		g := cellgen.New(seed)
		m := g.Mutate(g.Cells(int(seed%40)), 0, 60)
		l := New(m.From)
		err := Update(l, m.To, (*cellgen.Cell).DiffIdentifier, cellgen.Equal)
		require.NoError(t, err, "seed %d", seed)

		got := l.Items()
		require.Len(t, got, len(m.To), "seed %d", seed)
		for i := range got {
			if got[i].ID != m.To[i].ID || !cellgen.Equal(got[i], m.To[i]) {
				t.Fatalf("seed %d: position %d: got %v, want %v", seed, i, got[i], m.To[i])
			}
		}
	}
}

func ExampleUpdate() {
	l := New([]string{"a", "b", "c"})
	id := func(s string) string { return s }
	if err := Update(l, []string{"c", "a", "d"}, id, nil); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(l.Items())

	err := l.PerformBatchUpdates([]string{"c"}, slices.Values([]listdiff.Instruction{
		{Op: listdiff.Delete, From: 0},
	}))
	fmt.Println(errors.Is(err, ErrCountMismatch))
	// Output:
	// [c a d]
	// true
}
