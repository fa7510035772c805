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
	"fmt"
	"math/big"

	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// ============================================================================
// Shifts
// ============================================================================

// Shift represents a left (SHL) or right (SHR) shift of an expression by a
// constant number of bits.
type Shift struct {
	node
	op     Kind
	arg    Expr
	amount uint
}

// Shl constructs the left shift of an expression by a constant amount.
func Shl(arg Expr, amount uint) Expr {
	return &Shift{newNode(SHL, uint64(amount), arg), SHL, arg, amount}
}

// Shr constructs the right shift of an expression by a constant amount.
func Shr(arg Expr, amount uint) Expr {
	return &Shift{newNode(SHR, uint64(amount), arg), SHR, arg, amount}
}

// Arg returns the expression being shifted.
func (p *Shift) Arg() Expr { return p.arg }

// Amount returns the number of bits being shifted.
func (p *Shift) Amount() uint { return p.amount }

// Kind implementation for Expr interface.
func (p *Shift) Kind() Kind { return p.op }

// Args implementation for Expr interface.
func (p *Shift) Args() []Expr { return []Expr{p.arg} }

// Lisp implementation for Expr interface.
func (p *Shift) Lisp() sexp.SExp {
	return sexp.NewList([]sexp.SExp{
		sexp.NewSymbol(p.op.Operator()),
		p.arg.Lisp(),
		sexp.NewSymbol(fmt.Sprintf("%d", p.amount)),
	})
}

func (p *Shift) String() string { return p.Lisp().String() }

func (p *Shift) rebuild(args []Expr) Expr {
	if p.op == SHL {
		return Shl(args[0], p.amount)
	}
	//
	return Shr(args[0], p.amount)
}

func (p *Shift) apply(_ Environment, args []*big.Int) (*big.Int, error) {
	var val big.Int
	//
	if p.op == SHL {
		return val.Lsh(args[0], p.amount), nil
	}
	//
	return val.Rsh(args[0], p.amount), nil
}

func (p *Shift) simplify(s *simplifier, args []Expr) Expr {
	if p.op == SHL {
		return s.shl(args[0], p.amount)
	}
	//
	return s.shr(args[0], p.amount)
}

// ============================================================================
// Binary operators
// ============================================================================

// Binary represents a binary operator applied to two expressions.  This is
// either integer division (DIV), remainder (MOD) or one of the bitwise
// operators (AND, OR, XOR).
type Binary struct {
	node
	op  Kind
	lhs Expr
	rhs Expr
}

// Div constructs the (floor) division of one expression by another.
func Div(lhs Expr, rhs Expr) Expr { return newBinary(DIV, lhs, rhs) }

// Mod constructs the remainder of dividing one expression by another.
func Mod(lhs Expr, rhs Expr) Expr { return newBinary(MOD, lhs, rhs) }

// And constructs the bitwise conjunction of two expressions.
func And(lhs Expr, rhs Expr) Expr { return newBinary(AND, lhs, rhs) }

// Or constructs the bitwise disjunction of two expressions.
func Or(lhs Expr, rhs Expr) Expr { return newBinary(OR, lhs, rhs) }

// Xor constructs the bitwise exclusive-or of two expressions.
func Xor(lhs Expr, rhs Expr) Expr { return newBinary(XOR, lhs, rhs) }

func newBinary(op Kind, lhs Expr, rhs Expr) Expr {
	return &Binary{newNode(op, 0, lhs, rhs), op, lhs, rhs}
}

// Lhs returns the left-hand side of this operator.
func (p *Binary) Lhs() Expr { return p.lhs }

// Rhs returns the right-hand side of this operator.
func (p *Binary) Rhs() Expr { return p.rhs }

// Kind implementation for Expr interface.
func (p *Binary) Kind() Kind { return p.op }

// Args implementation for Expr interface.
func (p *Binary) Args() []Expr { return []Expr{p.lhs, p.rhs} }

// Lisp implementation for Expr interface.
func (p *Binary) Lisp() sexp.SExp { return lispOf(p.op.Operator(), p.lhs, p.rhs) }

func (p *Binary) String() string { return p.Lisp().String() }

func (p *Binary) rebuild(args []Expr) Expr { return newBinary(p.op, args[0], args[1]) }

func (p *Binary) apply(_ Environment, args []*big.Int) (*big.Int, error) {
	var (
		val      big.Int
		lhs, rhs = args[0], args[1]
	)
	//
	switch p.op {
	case DIV, MOD:
		if rhs.Sign() == 0 {
			return nil, divisionByZero(p)
		} else if p.op == DIV {
			return val.Quo(lhs, rhs), nil
		}
		//
		return val.Rem(lhs, rhs), nil
	case AND:
		return val.And(lhs, rhs), nil
	case OR:
		return val.Or(lhs, rhs), nil
	case XOR:
		return val.Xor(lhs, rhs), nil
	}
	//
	panic("unreachable")
}

func (p *Binary) simplify(s *simplifier, args []Expr) Expr {
	var lhs, rhs = args[0], args[1]
	//
	switch p.op {
	case DIV:
		return s.div(lhs, rhs)
	case MOD:
		return s.mod(lhs, rhs)
	case AND:
		return s.and(lhs, rhs)
	case OR:
		return s.or(lhs, rhs)
	case XOR:
		return s.xor(lhs, rhs)
	}
	//
	panic("unreachable")
}
