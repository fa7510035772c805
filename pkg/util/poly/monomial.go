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
package poly

import (
	"math/big"
	"slices"

	"github.com/consensys/go-lil/pkg/util/collection/array"
)

var one = big.NewInt(1)

// Monomial represents a product of a constant coefficient and zero or more
// variables (i.e. atoms) within a polynomial.  A variable may occur more than
// once, and variables are always held in sorted order.
type Monomial[S array.Comparable[S]] struct {
	coefficient big.Int
	vars        []S
}

// NewMonomial constructs a new monomial with a given coefficient and zero or
// more variables.
func NewMonomial[S array.Comparable[S]](coefficient *big.Int, vars ...S) Monomial[S] {
	var res Monomial[S]
	// Clone incoming variables
	res.vars = slices.Clone(vars)
	// Sort incoming variables
	slices.SortFunc(res.vars, func(a, b S) int { return a.Cmp(b) })
	//
	res.coefficient.Set(coefficient)
	//
	return res
}

// Clone a monomial
func (p Monomial[S]) Clone() Monomial[S] {
	var res Monomial[S]
	// Copy variables
	res.vars = slices.Clone(p.vars)
	// Copy coefficient
	res.coefficient.Set(&p.coefficient)
	//
	return res
}

// Coefficient returns (a copy of) the coefficient of this monomial.
func (p Monomial[S]) Coefficient() *big.Int {
	var c big.Int
	//
	return c.Set(&p.coefficient)
}

// IsZero checks whether or not the coefficient of this monomial is zero.
func (p Monomial[S]) IsZero() bool {
	return p.coefficient.Sign() == 0
}

// IsConstant checks whether or not this monomial has no variables.
func (p Monomial[S]) IsConstant() bool {
	return len(p.vars) == 0
}

// HasUnitCoefficient checks whether the coefficient of this monomial is one.
func (p Monomial[S]) HasUnitCoefficient() bool {
	return p.coefficient.Cmp(one) == 0
}

// Len returns the number of variables in this monomial.
func (p Monomial[S]) Len() uint {
	return uint(len(p.vars))
}

// Nth returns the nth variable in this monomial.
func (p Monomial[S]) Nth(index uint) S {
	return p.vars[index]
}

// Vars returns the variables of this monomial as an array.
func (p Monomial[S]) Vars() []S {
	return p.vars
}

// Matches determines whether or not the variables of this monomial match those
// of the other.
func (p Monomial[S]) Matches(other Monomial[S]) bool {
	return array.Compare(p.vars, other.vars) == 0
}

// Cmp implementation for the Comparable interface.  Variables are compared
// before coefficients, so that adjusting a coefficient never moves a monomial
// within a sorted polynomial.
func (p Monomial[S]) Cmp(other Monomial[S]) int {
	if c := array.Compare(p.vars, other.vars); c != 0 {
		return c
	}
	//
	return p.coefficient.Cmp(&other.coefficient)
}

// Mul returns a fresh monomial representing the multiplication of this monomial
// and another.
func (p Monomial[S]) Mul(other Monomial[S]) Monomial[S] {
	var res Monomial[S]
	// Multiply coefficients
	res.coefficient.Mul(&p.coefficient, &other.coefficient)
	// Merge variables
	res.vars = array.MergeSorted(p.vars, other.vars)
	// Done
	return res
}

// MulScalar returns a fresh monomial whose coefficient is multiplied by a
// given scalar.
func (p Monomial[S]) MulScalar(scalar *big.Int) Monomial[S] {
	var res = p.Clone()
	//
	res.coefficient.Mul(&res.coefficient, scalar)
	//
	return res
}

// QuoScalar returns a fresh monomial whose coefficient is divided by a given
// scalar, provided the division is exact.
func (p Monomial[S]) QuoScalar(scalar *big.Int) (Monomial[S], bool) {
	var (
		res = p.Clone()
		rem big.Int
	)
	//
	res.coefficient.QuoRem(&res.coefficient, scalar, &rem)
	//
	return res, rem.Sign() == 0
}

// Quo returns a fresh monomial representing the division of this monomial by
// another, provided the division is exact.  That is, every variable of the
// divisor occurs in this monomial and its coefficient divides ours.
func (p Monomial[S]) Quo(divisor Monomial[S]) (Monomial[S], bool) {
	var (
		res Monomial[S]
		rem big.Int
		ok  bool
	)
	//
	if res.vars, ok = array.SubtractSorted(p.vars, divisor.vars); !ok {
		return res, false
	}
	//
	res.coefficient.QuoRem(&p.coefficient, &divisor.coefficient, &rem)
	//
	return res, rem.Sign() == 0
}
