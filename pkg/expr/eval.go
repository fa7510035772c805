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

	"github.com/pkg/errors"
)

// ErrUnboundVariable signals an attempt to evaluate a variable which has no
// value in the given environment.
var ErrUnboundVariable = errors.New("unbound variable")

// ErrDivisionByZero signals an attempt to divide (or take the remainder) by
// zero during evaluation.
var ErrDivisionByZero = errors.New("division by zero")

func unboundVariable(name string) error {
	return errors.Wrapf(ErrUnboundVariable, "variable %q", name)
}

func divisionByZero(e Expr) error {
	return errors.Wrapf(ErrDivisionByZero, "evaluating %s", e.String())
}

// Environment maps variable names to their values.
type Environment func(string) (*big.Int, bool)

// Bindings constructs an environment from a given set of variable bindings.
func Bindings(bindings map[string]uint64) Environment {
	return func(name string) (*big.Int, bool) {
		if val, ok := bindings[name]; ok {
			return new(big.Int).SetUint64(val), true
		}
		//
		return nil, false
	}
}

// Eval evaluates an expression in a given environment.  Shared subexpressions
// are evaluated once only.  An error is returned if a variable is not bound by
// the environment, or if a division by zero arises.
func Eval(e Expr, env Environment) (*big.Int, error) {
	var p = evaluator{env, make(map[Expr]*big.Int)}
	//
	val, err := p.eval(e)
	if err != nil {
		return nil, err
	}
	// Values held in the cache may be shared, hence return a copy.
	return new(big.Int).Set(val), nil
}

type evaluator struct {
	env   Environment
	cache map[Expr]*big.Int
}

func (p *evaluator) eval(e Expr) (*big.Int, error) {
	if val, ok := p.cache[e]; ok {
		return val, nil
	}
	//
	var (
		args = e.Args()
		vals = make([]*big.Int, len(args))
	)
	//
	for i, arg := range args {
		val, err := p.eval(arg)
		if err != nil {
			return nil, err
		}
		//
		vals[i] = val
	}
	//
	val, err := e.apply(p.env, vals)
	if err != nil {
		return nil, err
	}
	//
	p.cache[e] = val
	//
	return val, nil
}

// Substitute replaces variables in an expression according to a given mapping.
// Variables not in the mapping are left as is.  Subexpressions which are
// unaffected by the substitution are retained (rather than copied) and sharing
// within the expression is preserved.  No simplification is performed.
func Substitute(e Expr, mapping map[string]Expr) Expr {
	var cache = make(map[Expr]Expr)
	//
	return substitute(e, mapping, cache)
}

func substitute(e Expr, mapping map[string]Expr, cache map[Expr]Expr) Expr {
	if r, ok := cache[e]; ok {
		return r
	} else if v, ok := e.(*Variable); ok {
		if r, ok := mapping[v.name]; ok {
			return r
		}
		//
		return e
	}
	//
	var (
		args    = e.Args()
		nargs   = make([]Expr, len(args))
		changed = false
		result  = e
	)
	//
	for i, arg := range args {
		nargs[i] = substitute(arg, mapping, cache)
		changed = changed || nargs[i] != arg
	}
	//
	if changed {
		result = e.rebuild(nargs)
	}
	//
	cache[e] = result
	//
	return result
}

// Vars returns the names of all variables occurring in an expression, in
// sorted order.
func Vars(e Expr) []string {
	var (
		visited = make(map[Expr]bool)
		names   = make(map[string]bool)
		result  []string
	)
	//
	collectVars(e, visited, names)
	//
	for name := range names {
		result = append(result, name)
	}
	//
	slices.Sort(result)
	//
	return result
}

func collectVars(e Expr, visited map[Expr]bool, names map[string]bool) {
	if visited[e] {
		return
	} else if v, ok := e.(*Variable); ok {
		names[v.name] = true
	}
	//
	visited[e] = true
	//
	for _, arg := range e.Args() {
		collectVars(arg, visited, names)
	}
}
