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
package hash

// Hasher provides a generic definition of a hashing function suitable for use
// within an interning table.  Hash codes need not be unique, since collisions
// are resolved using equality.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

// Table interns items, such that every item inserted is replaced by the first
// equal item inserted before it (if any).  This is a true hashtable in that
// collisions are handled gracefully using buckets, rather than assuming the
// hash code uniquely identifies an item.
type Table[T Hasher[T]] struct {
	// items maps hashcodes to *buckets* of items.
	items map[uint64][]T
}

// NewTable creates a new interning table with a given underlying capacity.
func NewTable[T Hasher[T]](size uint) *Table[T] {
	return &Table[T]{make(map[uint64][]T, size)}
}

// Intern returns the unique representative of a given item.  That is, an
// equal item already in the table or, failing that, the item itself after it
// has been added.
func (p *Table[T]) Intern(item T) T {
	var (
		hash   = item.Hash()
		bucket = p.items[hash]
	)
	//
	for _, other := range bucket {
		if item.Equals(other) {
			return other
		}
	}
	//
	p.items[hash] = append(bucket, item)
	//
	return item
}
