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

// Package rvecs contains functions to work with the record vectors, the internal representation
// of the pairing between the two inputs that's used by the matcher and is then translated to a
// user facing API.
//
// For inputs x and y, rx[s] is the position in y that x[s] was paired with and ry[t] is the
// position in x that y[t] was paired with. Unpaired positions hold [None].
package rvecs

// None marks a position that isn't paired with any position of the other input.
const None = -1

// Make allocates record vectors for x and y from a single buffer with every position unpaired.
func Make[T any](x, y []T) (rx, ry []int) {
	r := make([]int, len(x)+len(y))
	for i := range r {
		r[i] = None
	}
	rx = r[:len(x):len(x)]
	ry = r[len(x):]
	return
}

// Pair records that x[s] and y[t] are paired.
func Pair(rx, ry []int, s, t int) {
	rx[s] = t
	ry[t] = s
}
