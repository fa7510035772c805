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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func Test_Eval_01(t *testing.T) {
	checkEval(t, "8*i + j", map[string]uint64{"i": 3, "j": 7}, 31)
}

func Test_Eval_02(t *testing.T) {
	checkEval(t, "((i >> 1) & 1) << 3 | (j % 4) ^ 1", map[string]uint64{"i": 6, "j": 7}, 10)
}

func Test_Eval_03(t *testing.T) {
	checkEval(t, "i / 3 + i % 3", map[string]uint64{"i": 11}, 5)
}

func Test_Eval_04(t *testing.T) {
	e := parseExpr(t, "i + j")
	//
	if _, err := Eval(e, Bindings(map[string]uint64{"i": 1})); !errors.Is(err, ErrUnboundVariable) {
		t.Errorf("expected unbound variable, got %v", err)
	}
}

func Test_Eval_05(t *testing.T) {
	e := parseExpr(t, "i / j")
	//
	if _, err := Eval(e, Bindings(map[string]uint64{"i": 1, "j": 0})); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("expected division by zero, got %v", err)
	}
}

func Test_Substitute_01(t *testing.T) {
	var (
		e = parseExpr(t, "8*x + y")
		r = Substitute(e, map[string]Expr{"x": parseExpr(t, "i*3"), "y": parseExpr(t, "j + m")})
	)
	//
	if s := Simplify(r).String(); s != "(+ (* 24 i) j m)" {
		t.Errorf("unexpected result %s", s)
	}
}

func Test_Substitute_02(t *testing.T) {
	var (
		i = Var("i")
		e = Sum(i, Const64(1))
		f = Product(e, Var("j"))
		r = Substitute(f, map[string]Expr{"j": Var("k")})
	)
	// Unaffected subexpressions are retained
	if r.Args()[0] != e {
		t.Errorf("substitution did not preserve %s", e.String())
	}
	// Unaffected expressions are returned as is
	if Substitute(f, map[string]Expr{"z": i}) != f {
		t.Errorf("substitution did not preserve %s", f.String())
	}
}

func Test_Vars_01(t *testing.T) {
	var e = parseExpr(t, "(m + i) * j + (i & 3)")
	//
	if diff := cmp.Diff([]string{"i", "j", "m"}, Vars(e)); diff != "" {
		t.Errorf("unexpected variables (-expected +actual):\n%s", diff)
	}
}

func Test_Vars_02(t *testing.T) {
	if vars := Vars(parseExpr(t, "1 + 2")); len(vars) != 0 {
		t.Errorf("unexpected variables %v", vars)
	}
}

func Test_Equal_01(t *testing.T) {
	var (
		lhs = parseExpr(t, "(i + 1) * 2")
		rhs = parseExpr(t, "(i + 1) * 2")
	)
	//
	if !Equal(lhs, rhs) || lhs.Hash() != rhs.Hash() {
		t.Errorf("expected %s to equal %s", lhs.String(), rhs.String())
	}
}

func Test_Equal_02(t *testing.T) {
	var pairs = [][2]string{
		{"i + 1", "1 + i"},
		{"i >> 1", "i >> 2"},
		{"i / 2", "i % 2"},
		{"i", "j"},
		{"2", "3"},
	}
	//
	for _, p := range pairs {
		if lhs, rhs := parseExpr(t, p[0]), parseExpr(t, p[1]); Equal(lhs, rhs) {
			t.Errorf("expected %s to differ from %s", lhs.String(), rhs.String())
		}
	}
}

func Test_Compare_01(t *testing.T) {
	checkOrder(t, "0", "1", "i", "2*i", "i*j", "j", "j >> 2", "m")
}

func Test_Compare_02(t *testing.T) {
	checkOrder(t, "8*i", "24*i", "j", "m")
}

func Test_Compare_03(t *testing.T) {
	checkOrder(t, "i & 1", "i & 2", "(i & 1) | j")
}

func Test_Size_01(t *testing.T) {
	if n := parseExpr(t, "(i + 1) * (j >> 2)").Size(); n != 6 {
		t.Errorf("unexpected size %d", n)
	}
}

func Test_Size_02(t *testing.T) {
	var e = Var("i")
	// Shared subexpressions cause the size to saturate
	for n := 0; n < 80; n++ {
		e = Sum(e, e)
	}
	//
	if e.Size() != math.MaxUint {
		t.Errorf("unexpected size %d", e.Size())
	}
	//
	val, err := Eval(e, Bindings(map[string]uint64{"i": 1}))
	//
	if err != nil || val.Cmp(new(big.Int).Lsh(big.NewInt(1), 80)) != 0 {
		t.Errorf("unexpected value %v (%v)", val, err)
	}
}

func Test_Lisp_01(t *testing.T) {
	if s := parseExpr(t, "(i << 2) ^ 3").String(); s != "(^ (<< i 2) 3)" {
		t.Errorf("unexpected string %s", s)
	}
}

func Test_Parse_01(t *testing.T) {
	_, errs := Parse("i + k", func(name string) bool { return name == "i" })
	//
	if len(errs) != 1 {
		t.Errorf("expected one error, got %d", len(errs))
	}
}

func checkEval(t *testing.T, input string, env map[string]uint64, expected int64) {
	e := parseExpr(t, input)
	// Check unsimplified and simplified forms agree
	for _, f := range []Expr{e, Simplify(e)} {
		val, err := Eval(f, Bindings(env))
		//
		if err != nil {
			t.Errorf("unexpected error evaluating %s: %s", f.String(), err.Error())
		} else if val.Cmp(big.NewInt(expected)) != 0 {
			t.Errorf("%s evaluated to %s, expected %d", f.String(), val.String(), expected)
		}
	}
}

// Check the canonical order of a list of expressions given in order.
func checkOrder(t *testing.T, inputs ...string) {
	var (
		expected []string
		actual   []Expr
	)
	//
	for _, input := range inputs {
		e := Simplify(parseExpr(t, input))
		expected = append(expected, e.String())
		actual = append(actual, e)
	}
	//
	slices.Reverse(actual)
	slices.SortFunc(actual, Compare)
	//
	var strs []string
	for _, e := range actual {
		strs = append(strs, e.String())
	}
	//
	if diff := cmp.Diff(expected, strs); diff != "" {
		t.Errorf("unexpected order (-expected +actual):\n%s", diff)
	}
}
