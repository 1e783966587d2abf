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

import "iter"

// Op describes a single operation of a result.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Delete Op = iota // Remove the element at From from the old list
	Insert           // Insert the element at To of the new list
	Move             // Move the element at From in the old list to To in the new list
	Update           // Reload the element at From in the old list
)

// Instruction describes a single operation.
//
//   - For Delete and Update, From is a position in the old list and To is unset (zero value).
//   - For Insert, To is a position in the new list and From is unset (zero value).
//   - For Move, both From and To are set.
type Instruction struct {
	Op       Op
	From, To int
}

// Instructions returns the operations in r in the order a list view expects them in a batch
// update: deletes, inserts, moves, and finally updates.
//
// Deletes, updates and move sources refer to positions in the old list, inserts and move
// destinations refer to positions in the new list. That is, positions don't shift while
// instructions are applied. Consumers that can't handle more than one instruction per position
// must only use instructions of a result returned by [Result.ForBatchUpdates].
func (r Result[K]) Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		for _, s := range r.Deletes {
			if !yield(Instruction{Op: Delete, From: s}) {
				return
			}
		}
		for _, t := range r.Inserts {
			if !yield(Instruction{Op: Insert, To: t}) {
				return
			}
		}
		for _, mv := range r.Moves {
			if !yield(Instruction{Op: Move, From: mv.From, To: mv.To}) {
				return
			}
		}
		for _, s := range r.Updates {
			if !yield(Instruction{Op: Update, From: s}) {
				return
			}
		}
	}
}
