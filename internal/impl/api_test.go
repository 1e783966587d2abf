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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/listdiff/internal/rvecs"
)

const o = rvecs.None

type kv struct {
	k, v string
}

func key(e kv) string { return e.k }

func eq(a, b kv) bool { return a == b }

func ident(s string) string { return s }

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []string
		wantRx []int
		wantRy []int
	}{
		{
			name:   "identical",
			x:      []string{"foo", "bar", "baz"},
			y:      []string{"foo", "bar", "baz"},
			wantRx: []int{0, 1, 2},
			wantRy: []int{0, 1, 2},
		},
		{
			name:   "empty",
			wantRx: []int{},
			wantRy: []int{},
		},
		{
			name:   "x-empty",
			y:      []string{"foo", "bar"},
			wantRx: []int{},
			wantRy: []int{o, o},
		},
		{
			name:   "y-empty",
			x:      []string{"foo", "bar"},
			wantRx: []int{o, o},
			wantRy: []int{},
		},
		{
			name:   "swap",
			x:      []string{"1", "2"},
			y:      []string{"2", "1"},
			wantRx: []int{1, 0},
			wantRy: []int{1, 0},
		},
		{
			name:   "duplicates-pair-in-order",
			x:      strings.Split("12334", ""),
			y:      strings.Split("23134", ""),
			wantRx: []int{2, 0, 1, 3, 4},
			wantRy: []int{1, 2, 0, 3, 4},
		},
		{
			name:   "duplicates-shifted",
			x:      strings.Split("aab", ""),
			y:      strings.Split("baa", ""),
			wantRx: []int{1, 2, 0},
			wantRy: []int{2, 0, 1},
		},
		{
			name:   "more-duplicates-in-y",
			x:      strings.Split("a", ""),
			y:      strings.Split("aa", ""),
			wantRx: []int{0},
			wantRy: []int{0, o},
		},
		{
			name:   "more-duplicates-in-x",
			x:      strings.Split("baa", ""),
			y:      strings.Split("a", ""),
			wantRx: []int{o, 0, o},
			wantRy: []int{1},
		},
		{
			name:   "ABCABBA_to_CBABAC",
			x:      strings.Split("ABCABBA", ""),
			y:      strings.Split("CBABAC", ""),
			wantRx: []int{2, 1, 0, 4, 3, o, o},
			wantRy: []int{2, 1, 0, 4, 3, o},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry, updates := Diff(tt.x, tt.y, ident, nil)
			if diff := cmp.Diff(tt.wantRx, rx); diff != "" {
				t.Errorf("Diff(...) rx differs [-want,+got]:\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantRy, ry); diff != "" {
				t.Errorf("Diff(...) ry differs [-want,+got]:\n%s", diff)
			}
			if len(updates) != 0 {
				t.Errorf("Diff(...) updates = %v, want none", updates)
			}
		})
	}
}

func TestDiffUpdates(t *testing.T) {
	tests := []struct {
		name        string
		x, y        []kv
		wantUpdates []int
	}{
		{
			name:        "unchanged",
			x:           []kv{{"a", "1"}, {"b", "1"}},
			y:           []kv{{"a", "1"}, {"b", "1"}},
			wantUpdates: nil,
		},
		{
			name:        "changed-in-prefix",
			x:           []kv{{"a", "1"}, {"b", "1"}, {"c", "1"}},
			y:           []kv{{"a", "1"}, {"b", "2"}, {"c", "1"}},
			wantUpdates: []int{1},
		},
		{
			name:        "changed-and-moved",
			x:           []kv{{"a", "1"}, {"b", "1"}, {"c", "1"}},
			y:           []kv{{"c", "2"}, {"a", "1"}, {"b", "2"}},
			wantUpdates: []int{1, 2},
		},
		{
			name:        "changed-duplicates",
			x:           []kv{{"a", "1"}, {"a", "2"}},
			y:           []kv{{"x", "0"}, {"a", "2"}, {"a", "2"}},
			wantUpdates: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, got := Diff(tt.x, tt.y, key, eq)
			if diff := cmp.Diff(tt.wantUpdates, got); diff != "" {
				t.Errorf("Diff(...) updates differ [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestDiffOnlyComparesPairedElements(t *testing.T) {
	x := []kv{{"a", "1"}, {"b", "1"}, {"c", "1"}}
	y := []kv{{"c", "1"}, {"d", "1"}, {"a", "1"}}
	Diff(x, y, key, func(a, b kv) bool {
		if a.k != b.k {
			t.Errorf("eq(%v, %v) called with different keys", a, b)
		}
		return a == b
	})
}

func TestMoves(t *testing.T) {
	type move struct{ From, To int }
	tests := []struct {
		name string
		x, y []string
		want []move
	}{
		{
			name: "identical",
			x:    strings.Split("abc", ""),
			y:    strings.Split("abc", ""),
			want: nil,
		},
		{
			name: "empty",
			want: nil,
		},
		{
			name: "swap",
			x:    strings.Split("12", ""),
			y:    strings.Split("21", ""),
			want: []move{{1, 0}, {0, 1}},
		},
		{
			name: "duplicates",
			x:    strings.Split("12334", ""),
			y:    strings.Split("23134", ""),
			want: []move{{1, 0}, {2, 1}, {0, 2}},
		},
		{
			name: "deletes-and-inserts-dont-move",
			x:    strings.Split("abcd", ""),
			y:    strings.Split("xacyd", ""),
			want: nil,
		},
		{
			name: "ABCABBA_to_CBABAC",
			x:    strings.Split("ABCABBA", ""),
			y:    strings.Split("CBABAC", ""),
			want: []move{{2, 0}, {0, 2}, {4, 3}, {3, 4}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rx, ry, _ := Diff(tt.x, tt.y, ident, nil)
			var got []move
			for from, to := range Moves(rx, ry) {
				got = append(got, move{from, to})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Moves(...) differ [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMovesStopsEarly(t *testing.T) {
	rx, ry, _ := Diff(strings.Split("abc", ""), strings.Split("cba", ""), ident, nil)
	n := 0
	for range Moves(rx, ry) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iterated %d moves after break, want 1", n)
	}
}

func TestMovesKeepIncreasingRun(t *testing.T) {
	x := strings.Split("the quick brown fox jumps over the lazy dog", " ")
	y := strings.Split("the lazy fox jumps quick over the brown dog", " ")
	rx, ry, _ := Diff(x, y, ident, nil)
	moved := make(map[int]bool)
	for from := range Moves(rx, ry) {
		moved[from] = true
	}
	last := -1
	for _, s := range ry {
		if s == o || moved[s] {
			continue
		}
		if s <= last {
			t.Fatalf("unmoved pairs not increasing in x: %d after %d", s, last)
		}
		last = s
	}
}
