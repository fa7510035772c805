// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package array

import "cmp"

// Predicate abstracts the notion of a function which identifies something.
type Predicate[T any] func(T) bool

// Comparable interface which can be implemented by non-primitive types.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, or 0 if they are equal, or >
	// 0 if this is greater than other.
	Cmp(other T) int
}

// Compare two slices of ordered elements lexicographically, where shorter
// slices come first.
func Compare[T Comparable[T]](lhs []T, rhs []T) int {
	return CompareFunc(lhs, rhs, func(l, r T) int { return l.Cmp(r) })
}

// CompareFunc compares two slices using a given element comparator.  Slices of
// different lengths are ordered by length first.
func CompareFunc[T any](lhs []T, rhs []T, fn func(T, T) int) int {
	c := cmp.Compare(len(lhs), len(rhs))
	//
	for i := 0; c == 0 && i < len(lhs); i++ {
		c = fn(lhs[i], rhs[i])
	}
	//
	return c
}

// ContainsMatching checks whether a given array contains an item matching a
// given predicate.
func ContainsMatching[T any](items []T, predicate Predicate[T]) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	//
	return false
}

// MergeSorted merges two sorted slices into a fresh sorted slice, retaining
// duplicates.
func MergeSorted[T Comparable[T]](lhs []T, rhs []T) []T {
	var (
		res  = make([]T, 0, len(lhs)+len(rhs))
		i, j int
	)
	//
	for i < len(lhs) && j < len(rhs) {
		if lhs[i].Cmp(rhs[j]) <= 0 {
			res = append(res, lhs[i])
			i++
		} else {
			res = append(res, rhs[j])
			j++
		}
	}
	// Copy over whatever remains
	res = append(res, lhs[i:]...)
	//
	return append(res, rhs[j:]...)
}

// IntersectSorted returns the elements common to two sorted slices.  An
// element occurring n times in one and m times in the other occurs min(n,m)
// times in the result.
func IntersectSorted[T Comparable[T]](lhs []T, rhs []T) []T {
	var (
		res  []T
		i, j int
	)
	//
	for i < len(lhs) && j < len(rhs) {
		switch c := lhs[i].Cmp(rhs[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			res = append(res, lhs[i])
			i++
			j++
		}
	}
	//
	return res
}

// SubtractSorted removes the elements of one sorted slice from another sorted
// slice, producing a fresh slice.  This fails if some element of rhs does not
// occur (often enough) in lhs.
func SubtractSorted[T Comparable[T]](lhs []T, rhs []T) ([]T, bool) {
	var (
		res  = make([]T, 0, len(lhs))
		i, j int
	)
	//
	for ; i < len(lhs); i++ {
		if j < len(rhs) {
			if c := lhs[i].Cmp(rhs[j]); c == 0 {
				j++
				continue
			} else if c > 0 {
				return nil, false
			}
		}
		//
		res = append(res, lhs[i])
	}
	//
	return res, j == len(rhs)
}
