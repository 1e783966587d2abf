// Package benchmarks compares the keyed list diff with line based diffs of other libraries. The
// other libraries compute a longest common subsequence and report every moved line as a delete
// and an insert.
package benchmarks

import (
	"bytes"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"

	"znkr.io/listdiff"
	"znkr.io/listdiff/textdiff"
)

// Impl is a diff implementation. Changes returns the number of changes reported for x and y.
type Impl struct {
	Name    string
	Changes func(x, y []byte) int
}

var Impls = []Impl{
	{
		Name: "listdiff",
		Changes: func(x, y []byte) int {
			return textdiff.KeyedLines(x, y).ChangeCount()
		},
	},
	{
		Name: "listdiff-batch",
		Changes: func(x, y []byte) int {
			return textdiff.KeyedLines(x, y, listdiff.BatchUpdates()).ChangeCount()
		},
	},
	{
		Name: "listdiff-lines",
		Changes: func(x, y []byte) int {
			return textdiff.Lines(x, y).ChangeCount()
		},
	},
	{
		Name: "go-internal",
		Changes: func(x, y []byte) int {
			return countUnified(gointernal.Diff("x", x, "y", y))
		},
	},
	{
		Name: "diffmatchpatch",
		Changes: func(x, y []byte) int {
			dmp := diffmatchpatch.New()
			rx, ry, lines := dmp.DiffLinesToRunes(string(x), string(y))
			diffs := dmp.DiffMainRunes(rx, ry, false)
			diffs = dmp.DiffCharsToLines(diffs, lines)
			n := 0
			for _, diff := range diffs {
				if diff.Type != diffmatchpatch.DiffEqual {
					n += countLines(diff.Text)
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Changes: func(x, y []byte) int {
			return countUnified([]byte(godebug.Diff(string(x), string(y))))
		},
	},
	{
		Name: "mb0",
		Changes: func(x, y []byte) int {
			d := mb0lines{
				x: bytes.SplitAfter(x, []byte("\n")),
				y: bytes.SplitAfter(y, []byte("\n")),
			}
			n := 0
			for _, ch := range mb0.Diff(len(d.x), len(d.y), d) {
				n += ch.Del + ch.Ins
			}
			return n
		},
	},
	{
		Name: "udiff",
		Changes: func(x, y []byte) int {
			return countUnified([]byte(udiff.Unified("x", "y", string(x), string(y))))
		},
	},
}

type mb0lines struct {
	x [][]byte
	y [][]byte
}

func (d mb0lines) Equal(i, j int) bool { return bytes.Equal(d.x[i], d.y[j]) }

// countUnified counts the deleted and inserted lines of a diff in unified format.
func countUnified(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("+++ ")) || bytes.HasPrefix(line, []byte("--- ")) {
			continue
		}
		if bytes.HasPrefix(line, []byte{'+'}) || bytes.HasPrefix(line, []byte{'-'}) {
			n++
		}
	}
	return n
}

func countLines(s string) int {
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	return n
}
