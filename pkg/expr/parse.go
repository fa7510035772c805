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

	"github.com/consensys/go-lil/pkg/util/source"
	"github.com/consensys/go-lil/pkg/util/source/bexp"
)

// Parse an index expression from a given string, such as "i*3" or "j + m".  The
// environment determines which variable names are permitted.  The result is not
// simplified.
func Parse(input string, environment func(string) bool) (Expr, []source.SyntaxError) {
	term, errs := bexp.Parse[parsed](input, environment)
	//
	return term.Expr, errs
}

// parsed adapts expressions for use with the generic expression parser.
type parsed struct {
	Expr
}

func (parsed) Variable(name string) parsed { return parsed{Var(name)} }

func (parsed) Number(n big.Int) parsed { return parsed{Const(&n)} }

func (p parsed) Add(args ...parsed) parsed { return parsed{Sum(unwrap(p, args)...)} }

func (p parsed) Mul(args ...parsed) parsed { return parsed{Product(unwrap(p, args)...)} }

func (p parsed) Div(o parsed) parsed { return parsed{Div(p.Expr, o.Expr)} }

func (p parsed) Mod(o parsed) parsed { return parsed{Mod(p.Expr, o.Expr)} }

func (p parsed) Shl(n uint) parsed { return parsed{Shl(p.Expr, n)} }

func (p parsed) Shr(n uint) parsed { return parsed{Shr(p.Expr, n)} }

func (p parsed) And(o parsed) parsed { return parsed{And(p.Expr, o.Expr)} }

func (p parsed) Or(o parsed) parsed { return parsed{Or(p.Expr, o.Expr)} }

func (p parsed) Xor(o parsed) parsed { return parsed{Xor(p.Expr, o.Expr)} }

func unwrap(first parsed, rest []parsed) []Expr {
	var args = make([]Expr, len(rest)+1)
	//
	args[0] = first.Expr
	//
	for i, arg := range rest {
		args[i+1] = arg.Expr
	}
	//
	return args
}
