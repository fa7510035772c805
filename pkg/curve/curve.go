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

import (
	"github.com/consensys/go-lil/pkg/expr"
)

// Morton constructs the Z-order (Morton) offset of a given row and column
// within a square of side 2^levels.  The offset interleaves the bits of both
// indices, such that bit b of the row becomes bit 2b+1 of the offset and bit b
// of the column becomes bit 2b.  The result is not simplified.  A curve with
// zero levels (i.e. a single element) has offset zero.
func Morton(row expr.Expr, col expr.Expr, levels uint) expr.Expr {
	var terms = make([]expr.Expr, 0, 2*levels)
	//
	for b := uint(0); b < levels; b++ {
		terms = append(terms,
			expr.Shl(bit(row, b), 2*b+1),
			expr.Shl(bit(col, b), 2*b))
	}
	//
	return expr.Sum(terms...)
}

// Hilbert constructs the offset of a given row and column along the Hilbert
// curve within a square of side 2^levels.  This follows the classic "xy2d"
// formulation, taking x as the row and y as the column.  That algorithm visits
// levels from the most significant bit downwards, determining at each level the
// quadrant (rx,ry) containing the point and then rotating (and possibly
// reflecting) the remaining lower-order bits accordingly.
//
// Since the rotation depends upon the bits of the row and column, it cannot be
// resolved when constructing the expression.  Instead, the accumulated rotation
// is tracked by two single-bit expressions: a swap flag S (which holds when row
// and column have been exchanged) and a complement flag V (which holds when all
// bits have been flipped).  The effective bits at each level are then selected
// without branching using "(a & S) | (b & (S ^ 1))".  The result is not
// simplified, and shares subexpressions extensively between levels.  A curve
// with zero levels has offset zero.
func Hilbert(row expr.Expr, col expr.Expr, levels uint) expr.Expr {
	var (
		one   = expr.Const64(1)
		swap  = expr.Const64(0)
		flip  = expr.Const64(0)
		terms = make([]expr.Expr, 0, 2*levels)
	)
	//
	for b := levels; b > 0; b-- {
		var (
			xb = bit(row, b-1)
			yb = bit(col, b-1)
			// Effective bits at this level
			rx = expr.Xor(choose(swap, yb, xb), flip)
			ry = expr.Xor(choose(swap, xb, yb), flip)
			// Lower quadrant bit is rx ^ ry, upper is rx.
			q0 = expr.Xor(rx, ry)
			// Rotation happens when ry == 0
			rotate = expr.Xor(ry, one)
		)
		//
		terms = append(terms, expr.Shl(rx, 2*b-1), expr.Shl(q0, 2*b-2))
		// Update rotation state
		swap = expr.Xor(swap, rotate)
		flip = expr.Xor(flip, expr.And(rx, rotate))
	}
	//
	return expr.Sum(terms...)
}

// Extract bit b of a given expression.
func bit(e expr.Expr, b uint) expr.Expr {
	return expr.And(expr.Shr(e, b), expr.Const64(1))
}

// Select between two bits based on a single-bit condition, such that the
// result is lhs if cond holds and rhs otherwise.
func choose(cond expr.Expr, lhs expr.Expr, rhs expr.Expr) expr.Expr {
	var ncond = expr.Xor(cond, expr.Const64(1))
	//
	return expr.Or(expr.And(lhs, cond), expr.And(rhs, ncond))
}
