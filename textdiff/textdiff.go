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

// Package textdiff provides functions to compare text line by line or word by word.
//
// Lines and words are their own identity keys. Use [KeyedLines] for line oriented records where
// only a part of the line identifies the record and the rest is content that may change.
//
// For []byte inputs, the keys in the results share memory with the inputs. The inputs must not be
// modified while the result is in use.
package textdiff

import (
	"znkr.io/listdiff"
	"znkr.io/listdiff/internal/byteview"
	"znkr.io/listdiff/internal/config"
)

// Lines compares the lines in x and y and returns the changes necessary to convert from one to
// the other. Lines are split on '\n', the newline character is not part of a line.
//
// The following options are supported: [listdiff.BatchUpdates], [listdiff.Check]
func Lines[T string | []byte](x, y T, opts ...listdiff.Option) listdiff.Result[string] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check)
	xs := byteview.SplitLines(byteview.From(x))
	ys := byteview.SplitLines(byteview.From(y))
	return listdiff.DiffFunc(xs, ys, byteview.ByteView.String, nil, options(cfg)...)
}

// Words compares the words in x and y and returns the changes necessary to convert from one to
// the other. Words are separated by white space.
//
// The following options are supported: [listdiff.BatchUpdates], [listdiff.Check]
func Words[T string | []byte](x, y T, opts ...listdiff.Option) listdiff.Result[string] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check)
	xs := byteview.SplitWords(byteview.From(x))
	ys := byteview.SplitWords(byteview.From(y))
	return listdiff.DiffFunc(xs, ys, byteview.ByteView.String, nil, options(cfg)...)
}

// KeyedLines compares the lines in x and y and returns the changes necessary to convert from one
// to the other. The identity key of a line is the text before the first key separator, lines
// without a separator are their own key. Lines with the same key but different text are reported
// as updates.
//
// The following options are supported: [listdiff.BatchUpdates], [listdiff.Check], [KeySeparator]
func KeyedLines[T string | []byte](x, y T, opts ...listdiff.Option) listdiff.Result[string] {
	cfg := config.FromOptions(opts, config.BatchUpdates|config.Check|config.KeySeparator)
	xs := byteview.SplitLines(byteview.From(x))
	ys := byteview.SplitLines(byteview.From(y))
	key := func(v byteview.ByteView) string {
		k, _ := v.Cut(cfg.KeySeparator)
		return k.String()
	}
	eq := func(a, b byteview.ByteView) bool { return a == b }
	return listdiff.DiffFunc(xs, ys, key, eq, options(cfg)...)
}

// options translates the listdiff part of cfg back into options.
func options(cfg config.Config) []listdiff.Option {
	var opts []listdiff.Option
	if cfg.BatchUpdates {
		opts = append(opts, listdiff.BatchUpdates())
	}
	if cfg.Check {
		opts = append(opts, listdiff.Check())
	}
	return opts
}
