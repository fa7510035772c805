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

	"github.com/consensys/go-lil/pkg/util/collection/hash"
	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// ============================================================================
// Constant
// ============================================================================

// Constant represents a non-negative integer constant.
type Constant struct {
	node
	value big.Int
}

// Const constructs a constant expression from a given (non-negative) value.
func Const(val *big.Int) Expr {
	var c = &Constant{}
	//
	if val.Sign() < 0 {
		panic("negative constant")
	}
	//
	c.value.Set(val)
	c.node = node{hash.NewFnv().Word(uint64(CONST)).Bytes(val.Bytes()).Sum64(), 1, ""}
	//
	return c
}

// Const64 constructs a constant expression from a given (non-negative) value.
func Const64(val int64) Expr {
	return Const(big.NewInt(val))
}

// Value returns (a copy of) the value of this constant.
func (p *Constant) Value() *big.Int {
	var val big.Int
	//
	return val.Set(&p.value)
}

// IsZero checks whether this constant is zero.
func (p *Constant) IsZero() bool {
	return p.value.Sign() == 0
}

// IsOne checks whether this constant is one.
func (p *Constant) IsOne() bool {
	return p.value.IsUint64() && p.value.Uint64() == 1
}

// Kind implementation for Expr interface.
func (p *Constant) Kind() Kind { return CONST }

// Args implementation for Expr interface.
func (p *Constant) Args() []Expr { return nil }

// Lisp implementation for Expr interface.
func (p *Constant) Lisp() sexp.SExp { return sexp.NewSymbol(p.value.String()) }

func (p *Constant) String() string { return p.value.String() }

func (p *Constant) rebuild([]Expr) Expr { return p }

func (p *Constant) apply(Environment, []*big.Int) (*big.Int, error) { return p.Value(), nil }

func (p *Constant) simplify(*simplifier, []Expr) Expr { return p }

// ============================================================================
// Variable
// ============================================================================

// Variable represents a named variable, whose value is determined by the
// environment in which an expression is evaluated.
type Variable struct {
	node
	name string
}

// Var constructs a variable expression with a given name.
func Var(name string) Expr {
	var h = hash.NewFnv().Word(uint64(VAR)).String(name).Sum64()
	//
	return &Variable{node{h, 1, name}, name}
}

// Name returns the name of this variable.
func (p *Variable) Name() string { return p.name }

// Kind implementation for Expr interface.
func (p *Variable) Kind() Kind { return VAR }

// Args implementation for Expr interface.
func (p *Variable) Args() []Expr { return nil }

// Lisp implementation for Expr interface.
func (p *Variable) Lisp() sexp.SExp { return sexp.NewSymbol(p.name) }

func (p *Variable) String() string { return p.name }

func (p *Variable) rebuild([]Expr) Expr { return p }

func (p *Variable) apply(env Environment, _ []*big.Int) (*big.Int, error) {
	if val, ok := env(p.name); ok {
		return val, nil
	}
	//
	return nil, unboundVariable(p.name)
}

func (p *Variable) simplify(*simplifier, []Expr) Expr { return p }
