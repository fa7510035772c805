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
	"testing"
)

func Test_PowerOfTwo_01(t *testing.T) {
	for i := uint(0); i < 63; i++ {
		n := uint64(1) << i
		if !IsPowerOfTwo(n) {
			t.Errorf("%d should be a power of two", n)
		} else if Log2(n) != i {
			t.Errorf("log2(%d) == %d != %d", n, Log2(n), i)
		}
	}
}

func Test_PowerOfTwo_02(t *testing.T) {
	for _, n := range []uint64{0, 3, 5, 6, 7, 9, 12, 100} {
		if IsPowerOfTwo(n) {
			t.Errorf("%d should not be a power of two", n)
		}
	}
}

func Test_BigPowerOfTwo_01(t *testing.T) {
	for i := uint(0); i < 100; i += 7 {
		var n big.Int
		//
		n.Lsh(big.NewInt(1), i)
		//
		if k, ok := BigPowerOfTwo(&n); !ok || k != i {
			t.Errorf("2^%d not recognised (got %d, %t)", i, k, ok)
		}
		// Check mask
		if k, ok := BigIsMask(BigMask(i)); !ok || k != i {
			t.Errorf("mask of %d bits not recognised (got %d, %t)", i, k, ok)
		}
	}
}

func Test_BigPowerOfTwo_02(t *testing.T) {
	for _, n := range []int64{-4, 0, 3, 6, 10, 1023} {
		if _, ok := BigPowerOfTwo(big.NewInt(n)); ok {
			t.Errorf("%d should not be a power of two", n)
		}
	}
}
