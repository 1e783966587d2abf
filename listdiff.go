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

import (
	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/impl"
	"znkr.io/listdiff/internal/rvecs"
)

// Identifiable is implemented by elements that carry their own identity key.
type Identifiable[K comparable] interface {
	DiffIdentifier() K
}

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other. Every element is its own identity key, so the result never contains updates.
//
// The following options are supported: [BatchUpdates], [Check]
func Diff[T comparable](x, y []T, opts ...Option) Result[T] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check)
	return diff(x, y, identity[T], nil, cfg)
}

// DiffFunc compares the contents of x and y and returns the changes necessary to convert from one
// to the other.
//
// Elements are paired by the identity key returned by key. Paired elements for which eq returns
// false are reported as updates. eq is only ever called with elements that have the same key. It
// may compare values (e.g. all fields of a struct) or references (e.g. pointer identity),
// depending on what counts as a change for the caller. If eq is nil, elements with the same key
// are considered equal.
//
// The following options are supported: [BatchUpdates], [Check]
func DiffFunc[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool, opts ...Option) Result[K] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check)
	return diff(x, y, key, eq, cfg)
}

// DiffIdentifiable is like [DiffFunc] for elements that implement [Identifiable].
//
// The following options are supported: [BatchUpdates], [Check]
func DiffIdentifiable[K comparable, T Identifiable[K]](x, y []T, eq func(a, b T) bool, opts ...Option) Result[K] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check)
	return diff(x, y, func(v T) K { return v.DiffIdentifier() }, eq, cfg)
}

// Equal reports whether a == b. It can be used as equality test for [DiffFunc] on comparable
// types. For pointers, this compares references.
func Equal[T comparable](a, b T) bool { return a == b }

func identity[T any](v T) T { return v }

func diff[T any, K comparable](x, y []T, key func(T) K, eq func(a, b T) bool, cfg config.Config) Result[K] {
	rx, ry, updates := impl.Diff(x, y, key, eq)
	r := Result[K]{
		Updates:  updates,
		oldIndex: indexOf(x, key),
		newIndex: indexOf(y, key),
	}
	for s, t := range rx {
		if t == rvecs.None {
			r.Deletes = append(r.Deletes, s)
		}
	}
	for t, s := range ry {
		if s == rvecs.None {
			r.Inserts = append(r.Inserts, t)
		}
	}
	for from, to := range impl.Moves(rx, ry) {
		r.Moves = append(r.Moves, MoveIndex{From: from, To: to})
	}

	if cfg.BatchUpdates {
		r = r.ForBatchUpdates()
	}
	if cfg.Check {
		if err := r.Validate(len(x), len(y)); err != nil {
			panic("invalid diff result: " + err.Error())
		}
	}
	return r
}

// indexOf maps every key in x to the position of its first occurrence.
func indexOf[T any, K comparable](x []T, key func(T) K) map[K]int {
	m := make(map[K]int, len(x))
	for i, e := range x {
		k := key(e)
		if _, ok := m[k]; !ok {
			m[k] = i
		}
	}
	return m
}
