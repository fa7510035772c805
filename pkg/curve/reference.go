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
package curve

// MortonIndex computes the Z-order offset of a given row and column within a
// square of side 2^levels directly.  This provides a reference against which
// symbolic Morton expressions can be checked.
func MortonIndex(row uint64, col uint64, levels uint) uint64 {
	var d uint64
	//
	for b := range levels {
		d |= ((row>>b)&1)<<(2*b+1) | ((col>>b)&1)<<(2*b)
	}
	//
	return d
}

// HilbertIndex computes the Hilbert offset of a given row and column within a
// square of side 2^levels directly, using the classic "xy2d" algorithm (with x
// as the row and y as the column).  This provides a reference against which
// symbolic Hilbert expressions can be checked.
func HilbertIndex(row uint64, col uint64, levels uint) uint64 {
	var (
		n    = uint64(1) << levels
		x, y = row, col
		d    uint64
	)
	//
	for s := n / 2; s > 0; s /= 2 {
		var rx, ry uint64
		//
		if x&s != 0 {
			rx = 1
		}
		//
		if y&s != 0 {
			ry = 1
		}
		//
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(n, x, y, rx, ry)
	}
	//
	return d
}

// HilbertPoint is the inverse of HilbertIndex, converting an offset along the
// Hilbert curve back into a row and column.
func HilbertPoint(d uint64, levels uint) (uint64, uint64) {
	var (
		n    = uint64(1) << levels
		x, y uint64
	)
	//
	for s := uint64(1); s < n; s *= 2 {
		rx := 1 & (d / 2)
		ry := 1 & (d ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		d /= 4
	}
	//
	return x, y
}

// Rotate (and possibly reflect) a quadrant of side n.
func rotate(n uint64, x uint64, y uint64, rx uint64, ry uint64) (uint64, uint64) {
	if ry != 0 {
		return x, y
	} else if rx == 1 {
		x = n - 1 - x
		y = n - 1 - y
	}
	//
	return y, x
}
