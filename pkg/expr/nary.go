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
package expr

import (
	"math/big"
	"slices"

	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// ============================================================================
// Addition
// ============================================================================

// Add represents the sum of two or more expressions.
type Add struct {
	node
	args []Expr
}

// Sum constructs the sum of zero or more expressions.  No simplification is
// performed, except that the empty sum is zero and the sum of one expression is
// that expression.
func Sum(args ...Expr) Expr {
	switch len(args) {
	case 0:
		return Const64(0)
	case 1:
		return args[0]
	}
	//
	args = slices.Clone(args)
	//
	return &Add{newNode(ADD, 0, args...), args}
}

// Kind implementation for Expr interface.
func (p *Add) Kind() Kind { return ADD }

// Args implementation for Expr interface.
func (p *Add) Args() []Expr { return p.args }

// Lisp implementation for Expr interface.
func (p *Add) Lisp() sexp.SExp { return lispOf("+", p.args...) }

func (p *Add) String() string { return p.Lisp().String() }

func (p *Add) rebuild(args []Expr) Expr { return Sum(args...) }

func (p *Add) apply(_ Environment, args []*big.Int) (*big.Int, error) {
	var val big.Int
	//
	for _, arg := range args {
		val.Add(&val, arg)
	}
	//
	return &val, nil
}

func (p *Add) simplify(s *simplifier, args []Expr) Expr { return s.sum(args...) }

// ============================================================================
// Multiplication
// ============================================================================

// Mul represents the product of two or more expressions.
type Mul struct {
	node
	args []Expr
}

// Product constructs the product of zero or more expressions.  No
// simplification is performed, except that the empty product is one and the
// product of one expression is that expression.
func Product(args ...Expr) Expr {
	switch len(args) {
	case 0:
		return Const64(1)
	case 1:
		return args[0]
	}
	//
	args = slices.Clone(args)
	//
	return &Mul{newNode(MUL, 0, args...), args}
}

// Kind implementation for Expr interface.
func (p *Mul) Kind() Kind { return MUL }

// Args implementation for Expr interface.
func (p *Mul) Args() []Expr { return p.args }

// Lisp implementation for Expr interface.
func (p *Mul) Lisp() sexp.SExp { return lispOf("*", p.args...) }

func (p *Mul) String() string { return p.Lisp().String() }

func (p *Mul) rebuild(args []Expr) Expr { return Product(args...) }

func (p *Mul) apply(_ Environment, args []*big.Int) (*big.Int, error) {
	var val = big.NewInt(1)
	//
	for _, arg := range args {
		val.Mul(val, arg)
	}
	//
	return val, nil
}

func (p *Mul) simplify(s *simplifier, args []Expr) Expr { return s.product(args...) }
