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

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Fnv is an incremental FNV-1a hash over 64-bit words, bytes and strings.  It
// is deterministic across runs, which matters because hashes are used to order
// otherwise incomparable structures.
type Fnv struct {
	hash uint64
}

// NewFnv constructs a fresh hash in its initial state.
func NewFnv() Fnv {
	return Fnv{offset64}
}

// Word mixes a 64-bit word into this hash.
func (p Fnv) Word(w uint64) Fnv {
	h := p.hash
	// Mix in bytes from lowest to highest.
	for i := 0; i < 8; i++ {
		h ^= w & 0xff
		h *= prime64
		w >>= 8
	}
	//
	return Fnv{h}
}

// Bytes mixes a sequence of bytes into this hash.
func (p Fnv) Bytes(bytes []byte) Fnv {
	h := p.hash
	//
	for _, b := range bytes {
		h ^= uint64(b)
		h *= prime64
	}
	//
	return Fnv{h}
}

// String mixes a string into this hash.  The length is mixed in first, so that
// consecutive strings cannot alias.
func (p Fnv) String(s string) Fnv {
	return p.Word(uint64(len(s))).Bytes([]byte(s))
}

// Sum64 returns the hashcode accumulated so far.
func (p Fnv) Sum64() uint64 {
	return p.hash
}
