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
	"cmp"
	"math/big"
	"strings"

	"github.com/consensys/go-lil/pkg/util/collection/array"
)

// Equal determines whether two expressions are structurally identical.
func Equal(lhs Expr, rhs Expr) bool {
	if lhs == rhs {
		return true
	} else if lhs.Hash() != rhs.Hash() || lhs.Kind() != rhs.Kind() || lhs.Size() != rhs.Size() {
		return false
	}
	//
	switch l := lhs.(type) {
	case *Constant:
		return l.value.Cmp(&rhs.(*Constant).value) == 0
	case *Variable:
		return l.name == rhs.(*Variable).name
	case *Shift:
		if l.amount != rhs.(*Shift).amount {
			return false
		}
	}
	//
	largs, rargs := lhs.Args(), rhs.Args()
	//
	if len(largs) != len(rargs) {
		return false
	}
	//
	for i := range largs {
		if !Equal(largs[i], rargs[i]) {
			return false
		}
	}
	//
	return true
}

// Compare two expressions according to the canonical order, returning a
// negative value if lhs precedes rhs, a positive value if rhs precedes lhs and
// zero if they are structurally identical.  Expressions are ordered first by
// the least variable they contain (with constants coming first), then by their
// non-constant factors and finally by their constant coefficient.  Thus, "8*i"
// precedes "j", whilst "i" precedes "24*i".
func Compare(lhs Expr, rhs Expr) int {
	if lhs == rhs {
		return 0
	} else if c := strings.Compare(lhs.LeastVar(), rhs.LeastVar()); c != 0 {
		return c
	}
	//
	lc, lfs := factors(lhs)
	rc, rfs := factors(rhs)
	//
	if c := array.CompareFunc(lfs, rfs, compareStructure); c != 0 {
		return c
	} else if c := lc.Cmp(rc); c != 0 {
		return c
	}
	//
	return compareStructure(lhs, rhs)
}

// Split an expression into its constant coefficient and its (non-constant)
// factors.
func factors(e Expr) (*big.Int, []Expr) {
	switch e := e.(type) {
	case *Constant:
		return &e.value, nil
	case *Mul:
		if c, ok := e.args[0].(*Constant); ok {
			return &c.value, e.args[1:]
		}
		//
		return big.NewInt(1), e.args
	}
	//
	return big.NewInt(1), []Expr{e}
}

// Compare two expressions based purely on their structure.
func compareStructure(lhs Expr, rhs Expr) int {
	if lhs == rhs {
		return 0
	} else if c := cmp.Compare(lhs.Kind(), rhs.Kind()); c != 0 {
		return c
	}
	//
	switch l := lhs.(type) {
	case *Constant:
		return l.value.Cmp(&rhs.(*Constant).value)
	case *Variable:
		return strings.Compare(l.name, rhs.(*Variable).name)
	case *Shift:
		if c := cmp.Compare(l.amount, rhs.(*Shift).amount); c != 0 {
			return c
		}
	}
	//
	return array.CompareFunc(lhs.Args(), rhs.Args(), Compare)
}
