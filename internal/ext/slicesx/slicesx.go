// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package slicesx contains extensions to Go's package slices, mostly for
// using a slice as a stack.
package slicesx

// Get performs a bounds check and returns the value at idx.
//
// If the bounds check fails, returns the zero value and false.
func Get[S ~[]E, E any](s S, idx int) (element E, ok bool) {
	if idx < 0 || idx >= len(s) {
		return element, false
	}
	return s[idx], true
}

// Last returns the last element of the slice, unless it is empty, in which
// case it returns the zero value and false.
func Last[S ~[]E, E any](s S) (element E, ok bool) {
	return Get(s, len(s)-1)
}

// Pop removes and returns the last element of *s, unless it is empty, in
// which case it returns the zero value and false.
//
// The vacated slot is zeroed so that it does not keep its value alive.
func Pop[S ~[]E, E any](s *S) (element E, ok bool) {
	element, ok = Last(*s)
	if !ok {
		return element, false
	}

	var zero E
	(*s)[len(*s)-1] = zero
	*s = (*s)[:len(*s)-1]
	return element, true
}

// PopN removes the last n elements of *s and returns a copy of them, in
// their original order.
//
// Returns false without modifying *s if it has fewer than n elements.
func PopN[S ~[]E, E any](s *S, n int) (S, bool) {
	if n < 0 || n > len(*s) {
		return nil, false
	}

	top := len(*s) - n
	out := make(S, n)
	copy(out, (*s)[top:])
	clear((*s)[top:])
	*s = (*s)[:top]
	return out, true
}

// PushReversed appends elems to *s in reverse order, so that popping yields
// them front to back.
func PushReversed[S ~[]E, E any](s *S, elems ...E) {
	for i := len(elems) - 1; i >= 0; i-- {
		*s = append(*s, elems[i])
	}
}
