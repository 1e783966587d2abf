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

// Package listdiff computes the changes necessary to turn one list of identifiable elements into
// another: deletions, insertions, moves, and updates of elements whose content changed.
//
// The main use case is driving incremental updates of list views. Instead of reloading a whole
// list, a view applies the [Result] of comparing the old and the new list and only touches the
// rows that changed. Use [Result.ForBatchUpdates] before applying a result to a view that applies
// operations one by one against positional indexes.
//
// Every element has an identity key that is used to pair elements across the two lists and an
// equality test that decides if a paired element was updated. [Diff] uses the elements
// themselves for both, [DiffFunc] and [DiffIdentifiable] let callers provide them. Keys may
// appear more than once in a list, duplicates are paired in order of appearance.
//
// Performance: Time and space complexity are O(N) where N = len(x) + len(y), assuming constant
// time hashing of keys. The moves are not guaranteed to be minimal, but they are always sufficient
// to reconstruct the new list.
//
// Note: For comparing text line by line or word by word, please see [znkr.io/listdiff/textdiff].
//
// [znkr.io/listdiff/textdiff]: https://pkg.go.dev/znkr.io/listdiff/textdiff
package listdiff
