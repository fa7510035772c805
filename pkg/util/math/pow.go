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
package math

import (
	"math/big"
	"math/bits"
)

// IsPowerOfTwo checks whether a given (non-zero) value is an exact power of
// two.  Observe that zero is not considered a power of two.
func IsPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of a given power of two.  If the argument
// is not a power of two, then the floor of the logarithm is returned.
func Log2(n uint64) uint {
	if n == 0 {
		panic("logarithm of zero")
	}
	//
	return uint(bits.Len64(n) - 1)
}

// BigPowerOfTwo checks whether a given big integer is an exact (positive) power
// of two and, if so, returns its exponent.
func BigPowerOfTwo(n *big.Int) (uint, bool) {
	if n.Sign() <= 0 {
		return 0, false
	}
	// A power of two has exactly one bit set, which must therefore be the
	// lowest set bit.
	k := n.TrailingZeroBits()
	//
	return k, uint(n.BitLen()) == k+1
}

// BigMask constructs the value 2^k-1 (i.e. a mask of k one bits).
func BigMask(k uint) *big.Int {
	var mask big.Int
	//
	mask.Lsh(big.NewInt(1), k)
	//
	return mask.Sub(&mask, big.NewInt(1))
}

// BigIsMask checks whether a given big integer has the form 2^k-1 for some k,
// returning k when it does.  Zero is the (empty) mask for k=0.
func BigIsMask(n *big.Int) (uint, bool) {
	var tmp big.Int
	//
	if n.Sign() < 0 {
		return 0, false
	}
	//
	tmp.Add(n, big.NewInt(1))
	//
	return BigPowerOfTwo(&tmp)
}
