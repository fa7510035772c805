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
package render

import (
	"fmt"
	"strings"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// Operator precedence, from loosest to tightest.
const (
	precOr = iota + 1
	precXor
	precAnd
	precShift
	precAdd
	precMul
	precAtom
)

func precedence(kind expr.Kind) int {
	switch kind {
	case expr.OR:
		return precOr
	case expr.XOR:
		return precXor
	case expr.AND:
		return precAnd
	case expr.SHL, expr.SHR:
		return precShift
	case expr.ADD:
		return precAdd
	case expr.MUL, expr.DIV, expr.MOD:
		return precMul
	default:
		return precAtom
	}
}

// Associative operators can be chained without parentheses.
func associative(kind expr.Kind) bool {
	switch kind {
	case expr.ADD, expr.MUL, expr.AND, expr.OR, expr.XOR:
		return true
	default:
		return false
	}
}

// renderer renders expressions, naming subexpressions where appropriate.
type renderer struct {
	// Names given to shared subexpressions
	names map[expr.Expr]string
	// Named subexpressions in order of definition, such that any named
	// subexpression is defined before it is used.
	order []expr.Expr
}

// Construct a renderer for a given expression.  If sharing is enabled, every
// non-leaf subexpression which has more than one parent is named.
func newRenderer(e expr.Expr, shared bool) *renderer {
	var r = &renderer{make(map[expr.Expr]string), nil}
	//
	if shared {
		var (
			parents = make(map[expr.Expr]uint)
			visited []expr.Expr
		)
		//
		countParents(e, parents, &visited)
		// Visited nodes are in post-order, hence children come first.
		for _, node := range visited {
			if parents[node] > 1 && len(node.Args()) > 0 {
				r.names[node] = fmt.Sprintf("t%d", len(r.order))
				r.order = append(r.order, node)
			}
		}
	}
	//
	return r
}

// Count the number of (distinct) parents of every subexpression, recording the
// order in which subexpressions are first completed.
func countParents(e expr.Expr, parents map[expr.Expr]uint, visited *[]expr.Expr) {
	for _, arg := range e.Args() {
		if parents[arg]++; parents[arg] == 1 {
			countParents(arg, parents, visited)
		}
	}
	//
	*visited = append(*visited, e)
}

// Render the body of an expression (i.e. ignoring any name it has).
func (r *renderer) body(e expr.Expr, lisp bool, width uint) string {
	if lisp {
		return sexp.NewFormatter(width).Format(r.defineLisp(e))
	}
	//
	return r.define(e)
}

// Render an expression in infix form, using its name if it has one.
func (r *renderer) infix(e expr.Expr) string {
	if name, ok := r.names[e]; ok {
		return name
	}
	//
	return r.define(e)
}

// Render the body of an expression in infix form.
func (r *renderer) define(e expr.Expr) string {
	switch e := e.(type) {
	case *expr.Constant:
		return e.Value().String()
	case *expr.Variable:
		return e.Name()
	case *expr.Add:
		return r.join(e, " + ")
	case *expr.Mul:
		return r.join(e, "*")
	case *expr.Shift:
		return fmt.Sprintf("%s %s %d", r.operand(e, e.Arg(), false), e.Kind().Operator(), e.Amount())
	case *expr.Binary:
		var op = e.Kind().Operator()
		// Arithmetic operators bind tightly, so are not spaced.
		if precedence(e.Kind()) != precMul {
			op = " " + op + " "
		}
		//
		return r.operand(e, e.Lhs(), false) + op + r.operand(e, e.Rhs(), true)
	default:
		panic(fmt.Sprintf("unknown expression %s", e.String()))
	}
}

func (r *renderer) join(e expr.Expr, op string) string {
	var parts = make([]string, len(e.Args()))
	//
	for i, arg := range e.Args() {
		parts[i] = r.operand(e, arg, i > 0)
	}
	//
	return strings.Join(parts, op)
}

// Render an operand of a given parent expression, inserting parentheses as
// necessary.  An operand to the right of its operator requires parentheses
// when it has the same precedence, unless both are the same associative
// operator.
func (r *renderer) operand(parent expr.Expr, arg expr.Expr, right bool) string {
	var (
		text  = r.infix(arg)
		outer = precedence(parent.Kind())
		inner = precedence(arg.Kind())
	)
	//
	if _, ok := r.names[arg]; ok {
		return text
	} else if inner < outer {
		return "(" + text + ")"
	} else if right && inner == outer && (parent.Kind() != arg.Kind() || !associative(arg.Kind())) {
		return "(" + text + ")"
	}
	//
	return text
}

// Render the body of an expression as an S-Expression, using names for any
// named subexpressions.
func (r *renderer) defineLisp(e expr.Expr) sexp.SExp {
	var elements []sexp.SExp
	//
	switch e := e.(type) {
	case *expr.Constant, *expr.Variable:
		return e.Lisp()
	case *expr.Shift:
		elements = []sexp.SExp{
			sexp.NewSymbol(e.Kind().Operator()),
			r.lisp(e.Arg()),
			sexp.NewSymbol(fmt.Sprintf("%d", e.Amount())),
		}
	default:
		elements = []sexp.SExp{sexp.NewSymbol(e.Kind().Operator())}
		//
		for _, arg := range e.Args() {
			elements = append(elements, r.lisp(arg))
		}
	}
	//
	return sexp.NewList(elements)
}

func (r *renderer) lisp(e expr.Expr) sexp.SExp {
	if name, ok := r.names[e]; ok {
		return sexp.NewSymbol(name)
	}
	//
	return r.defineLisp(e)
}
