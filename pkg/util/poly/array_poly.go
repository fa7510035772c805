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

// ArrayPoly is a simple polynomial implementation which holds its monomials in
// an array, sorted by their variables.  Monomials with identical variables are
// always merged, and monomials with zero coefficients are always dropped.
// Thus, two polynomials describing the same sum of terms have identical
// representations.  Observe that an unitialised ArrayPoly variable corresponds
// with zero.
type ArrayPoly[S array.Comparable[S]] struct {
	terms []Monomial[S]
}

// NewArrayPoly constructs a polynomial from zero or more monomials.
func NewArrayPoly[S array.Comparable[S]](terms ...Monomial[S]) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	for _, t := range terms {
		res.AddTerm(t)
	}
	//
	return &res
}

// Constant constructs a polynomial representing a single constant.
func Constant[S array.Comparable[S]](val *big.Int) *ArrayPoly[S] {
	return NewArrayPoly(NewMonomial[S](val))
}

// Len returns the number of terms in this polynomial.
func (p *ArrayPoly[S]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this polynomial.
func (p *ArrayPoly[S]) Term(ith uint) Monomial[S] {
	return p.terms[ith]
}

// Terms returns the terms of this polynomial.
func (p *ArrayPoly[S]) Terms() []Monomial[S] {
	return p.terms
}

// Clone performs a deep copy of this polynomial
func (p *ArrayPoly[S]) Clone() *ArrayPoly[S] {
	nterms := make([]Monomial[S], len(p.terms))
	//
	for i := range nterms {
		nterms[i] = p.terms[i].Clone()
	}
	//
	return &ArrayPoly[S]{nterms}
}

// IsZero checks whether this polynomial is identically zero.
func (p *ArrayPoly[S]) IsZero() bool {
	return len(p.terms) == 0
}

// IsConstant checks whether this polynomial has no variables and, if so,
// returns its value.
func (p *ArrayPoly[S]) IsConstant() (*big.Int, bool) {
	switch {
	case len(p.terms) == 0:
		return big.NewInt(0), true
	case len(p.terms) == 1 && p.terms[0].IsConstant():
		return p.terms[0].Coefficient(), true
	default:
		return nil, false
	}
}

// Add another polynomial onto this polynomial, producing a fresh polynomial.
func (p *ArrayPoly[S]) Add(other *ArrayPoly[S]) *ArrayPoly[S] {
	var res = p.Clone()
	//
	for _, t := range other.terms {
		res.AddTerm(t)
	}
	//
	return res
}

// Mul this polynomial by another polynomial, producing a fresh polynomial.
// This corresponds to distributing every term of one over every term of the
// other.
func (p *ArrayPoly[S]) Mul(other *ArrayPoly[S]) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	for _, ith := range p.terms {
		for _, jth := range other.terms {
			res.AddTerm(ith.Mul(jth))
		}
	}
	//
	return &res
}

// MulScalar multiplies every term of this polynomial by a given scalar,
// producing a fresh polynomial.
func (p *ArrayPoly[S]) MulScalar(scalar *big.Int) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	if scalar.Sign() == 0 {
		return &res
	}
	//
	res.terms = make([]Monomial[S], len(p.terms))
	//
	for i, t := range p.terms {
		res.terms[i] = t.MulScalar(scalar)
	}
	//
	return &res
}

// AddTerm adds a single term into this polynomial (in place), merging it with
// any existing term over the same variables.
func (p *ArrayPoly[S]) AddTerm(other Monomial[S]) {
	if other.IsZero() {
		return
	}
	// Find position for this term.
	i, found := slices.BinarySearchFunc(p.terms, other, func(a, b Monomial[S]) int {
		return array.Compare(a.vars, b.vars)
	})
	//
	if !found {
		p.terms = slices.Insert(p.terms, i, other.Clone())
		return
	}
	// Merge coefficients.  Cloning here ensures terms shared with other
	// polynomials are not modified.
	ith := p.terms[i].Clone()
	ith.coefficient.Add(&ith.coefficient, &other.coefficient)
	// Check whether its now zero (or not)
	if ith.IsZero() {
		p.terms = slices.Delete(p.terms, i, i+1)
	} else {
		p.terms[i] = ith
	}
}

// Partition splits this polynomial into those terms whose coefficients are
// exact multiples of a given divisor, and those which are not.
func (p *ArrayPoly[S]) Partition(divisor *big.Int) (*ArrayPoly[S], *ArrayPoly[S]) {
	var (
		lhs, rhs ArrayPoly[S]
		rem      big.Int
	)
	//
	for _, t := range p.terms {
		if rem.Rem(&t.coefficient, divisor); rem.Sign() == 0 {
			lhs.terms = append(lhs.terms, t)
		} else {
			rhs.terms = append(rhs.terms, t)
		}
	}
	//
	return &lhs, &rhs
}

// QuoScalar divides every term of this polynomial by a given divisor, which is
// assumed to divide every coefficient exactly.
func (p *ArrayPoly[S]) QuoScalar(divisor *big.Int) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	res.terms = make([]Monomial[S], len(p.terms))
	//
	for i, t := range p.terms {
		ith, ok := t.QuoScalar(divisor)
		if !ok {
			panic("inexact polynomial division")
		}
		//
		res.terms[i] = ith
	}
	//
	return &res
}

// Content returns the largest monomial dividing every term of this (non-zero)
// polynomial.  Its coefficient is the greatest common divisor of all
// coefficients, and its variables are those common to every term.
func (p *ArrayPoly[S]) Content() Monomial[S] {
	var res = p.terms[0].Clone()
	//
	res.coefficient.Abs(&res.coefficient)
	//
	for _, t := range p.terms[1:] {
		res.coefficient.GCD(nil, nil, &res.coefficient, &t.coefficient)
		res.vars = array.IntersectSorted(res.vars, t.vars)
	}
	//
	return res
}

// Quo divides every term of this polynomial by a given monomial, which is
// assumed to divide every term exactly.
func (p *ArrayPoly[S]) Quo(divisor Monomial[S]) *ArrayPoly[S] {
	var res ArrayPoly[S]
	//
	for _, t := range p.terms {
		ith, ok := t.Quo(divisor)
		if !ok {
			panic("inexact polynomial division")
		}
		// Division can reorder terms
		res.AddTerm(ith)
	}
	//
	return &res
}

// Eval evaluates a given polynomial with a given environment (i.e. mapping of
// variables to values).
func Eval[S array.Comparable[S]](poly *ArrayPoly[S], env func(S) *big.Int) *big.Int {
	val := big.NewInt(0)
	// Sum evaluated terms
	for _, term := range poly.terms {
		var acc big.Int
		// Initialise accumulator
		acc.Set(&term.coefficient)
		//
		for _, v := range term.vars {
			acc.Mul(&acc, env(v))
		}
		//
		val.Add(val, &acc)
	}
	// Done
	return val
}
