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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
//
// Views of a []byte share memory with the slice. The slice must not be modified while a view or
// any string obtained from it is in use.
package byteview

import (
	"strings"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string without copying.
func (v ByteView) String() string { return v.data }

// Cut returns the part of v before the first instance of sep. If sep doesn't appear in v or sep
// is empty, Cut returns v, false.
func (v ByteView) Cut(sep string) (before ByteView, found bool) {
	if sep == "" {
		return v, false
	}
	before0, _, found := strings.Cut(v.data, sep)
	return ByteView{before0}, found
}

// SplitLines splits the input on '\n' and returns the lines without the newline character. A
// trailing newline doesn't start another line.
func SplitLines(v ByteView) []ByteView {
	s := v.data
	n := strings.Count(s, "\n")
	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}
	a := make([]ByteView, 0, n)
	for len(s) > 0 {
		m := strings.IndexByte(s, '\n')
		if m < 0 {
			a = append(a, ByteView{s})
			break
		}
		a = append(a, ByteView{s[:m]})
		s = s[m+1:]
	}
	return a
}

// SplitWords splits the input around each instance of one or more consecutive white space
// characters, as defined by unicode.IsSpace.
func SplitWords(v ByteView) []ByteView {
	fields := strings.Fields(v.data)
	a := make([]ByteView, len(fields))
	for i, f := range fields {
		a[i] = ByteView{f}
	}
	return a
}
