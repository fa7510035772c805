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
	"math"
	"math/big"

	"github.com/consensys/go-lil/pkg/util/collection/hash"
	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// Kind identifies the variant of an index expression.  The order of kinds is
// significant, since it determines the canonical order of otherwise unrelated
// expressions.
type Kind uint8

const (
	// CONST is an integer constant
	CONST Kind = iota
	// VAR is a named variable
	VAR
	// MUL is the product of two or more expressions
	MUL
	// ADD is the sum of two or more expressions
	ADD
	// SHL is a left shift by a constant amount
	SHL
	// SHR is a right shift by a constant amount
	SHR
	// DIV is (floor) integer division
	DIV
	// MOD is integer remainder
	MOD
	// AND is bitwise conjunction
	AND
	// XOR is bitwise exclusive-or
	XOR
	// OR is bitwise disjunction
	OR
)

var operators = [...]string{"", "", "*", "+", "<<", ">>", "/", "%", "&", "^", "|"}

// Operator returns the symbol conventionally used for this kind of expression.
// Constants and variables have no operator.
func (k Kind) Operator() string {
	return operators[k]
}

// Expr represents an index expression.  That is, an arithmetic or bitwise
// expression over non-negative integers and named variables.  Expressions are
// immutable once constructed and, hence, subexpressions can be freely shared
// between expressions.  Every expression caches its structural hash, its size
// (as a tree) and the least variable name it contains, since these are needed
// repeatedly when ordering expressions.
type Expr interface {
	// Kind identifies what variant of expression this is.
	Kind() Kind
	// Args returns the immediate subexpressions of this expression (if any).
	// The returned slice must not be modified.
	Args() []Expr
	// Hash returns the structural hash of this expression.  Structurally equal
	// expressions always have the same hash.
	Hash() uint64
	// Size returns the number of nodes in this expression, when viewed as a
	// tree (i.e. shared subexpressions are counted each time they occur).
	Size() uint
	// LeastVar returns the least variable name (in lexicographic order)
	// occurring in this expression, or "" if there are none.
	LeastVar() string
	// Lisp converts this expression into an S-Expression, for example so it
	// can be printed.
	Lisp() sexp.SExp
	// String returns the S-Expression form of this expression.
	String() string
	// rebuild constructs an expression of the same kind (and with the same
	// non-expression fields) over a given set of arguments.
	rebuild(args []Expr) Expr
	// apply evaluates this expression given the values of its arguments.
	apply(env Environment, args []*big.Int) (*big.Int, error)
	// simplify constructs a simplified expression of the same kind over a
	// given set of (already simplified) arguments.
	simplify(s *simplifier, args []Expr) Expr
}

// node holds the information cached by every expression.
type node struct {
	hash  uint64
	size  uint
	least string
}

// Hash implementation for Expr interface.
func (p *node) Hash() uint64 { return p.hash }

// Size implementation for Expr interface.
func (p *node) Size() uint { return p.size }

// LeastVar implementation for Expr interface.
func (p *node) LeastVar() string { return p.least }

// Construct the cached information for a non-leaf expression of a given kind,
// where extra is mixed into the hash (e.g. a shift amount).
func newNode(kind Kind, extra uint64, args ...Expr) node {
	var (
		h     = hash.NewFnv().Word(uint64(kind)).Word(extra)
		size  = uint(1)
		least string
	)
	//
	for _, arg := range args {
		h = h.Word(arg.Hash())
		// Saturate size, since shared subexpressions can make trees large.
		if size > math.MaxUint-arg.Size() {
			size = math.MaxUint
		} else {
			size += arg.Size()
		}
		//
		if l := arg.LeastVar(); l != "" && (least == "" || l < least) {
			least = l
		}
	}
	//
	return node{h.Sum64(), size, least}
}

func lispOf(op string, args ...Expr) sexp.SExp {
	var list = make([]sexp.SExp, len(args)+1)
	//
	list[0] = sexp.NewSymbol(op)
	//
	for i, arg := range args {
		list[i+1] = arg.Lisp()
	}
	//
	return sexp.NewList(list)
}
