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
	"strings"
	"testing"

	"github.com/consensys/go-lil/pkg/curve"
	"github.com/consensys/go-lil/pkg/expr"
	"github.com/google/go-cmp/cmp"
)

func Test_Infix_01(t *testing.T) {
	checkInfix(t, "8*i + j", "8*i + j")
}

func Test_Infix_02(t *testing.T) {
	checkInfix(t, "(i + j)*(k + 1)", "(i + j)*(k + 1)")
}

func Test_Infix_03(t *testing.T) {
	checkInfix(t, "i/(j*2)", "i/(j*2)")
}

func Test_Infix_04(t *testing.T) {
	checkInfix(t, "i*(j/4)", "i*(j/4)")
}

func Test_Infix_05(t *testing.T) {
	checkInfix(t, "(i/4)*j", "i/4*j")
}

func Test_Infix_06(t *testing.T) {
	checkInfix(t, "(i >> 2) & 3", "i >> 2 & 3")
}

func Test_Infix_07(t *testing.T) {
	checkInfix(t, "(i | j) & k", "(i | j) & k")
}

func Test_Infix_08(t *testing.T) {
	checkInfix(t, "i ^ (j | k)", "i ^ (j | k)")
}

func Test_Infix_09(t *testing.T) {
	checkInfix(t, "i & (j & k)", "i & j & k")
}

func Test_Infix_10(t *testing.T) {
	checkInfix(t, "i % (j % 3)", "i%(j%3)")
}

func Test_Infix_11(t *testing.T) {
	checkInfix(t, "(i + j) << 2", "i + j << 2")
}

func Test_Infix_12(t *testing.T) {
	// Simplified forms
	checkSimplified(t, "i*3*8 + (j + m)", "24*i + j + m")
	checkSimplified(t, "(j + 3*i) + 4*i", "7*i + j")
	checkSimplified(t, "i*M + j", "M*i + j")
}

func Test_Infix_13(t *testing.T) {
	// Rendering is faithful to precedence
	inputs := []string{
		"8*i + j", "(i + j)*(k + 1)", "i/(j*2)", "i*(j/4)", "(i/4)*j", "(i >> 2) & 3", "(i | j) & k",
		"i ^ (j | k)", "i % (j % 3 + 1)", "(i + j) << 2", "(i ^ j) >> 1", "i | (j ^ k & 1)", "(i % 3) / 2",
		"(i * 2) % (j + 1)", "((i >> 1) << 1) + j",
	}
	//
	for _, input := range inputs {
		e := parse(t, input)
		r := parse(t, Infix(e))
		//
		for i := range uint64(5) {
			for j := range uint64(5) {
				env := expr.Bindings(map[string]uint64{"i": 17 * i, "j": 5*j + 1, "k": i + j})
				lhs, lerr := expr.Eval(e, env)
				rhs, rerr := expr.Eval(r, env)
				//
				if lerr != nil || rerr != nil {
					t.Fatalf("unexpected errors evaluating %q (%v, %v)", input, lerr, rerr)
				} else if lhs.Cmp(rhs) != 0 {
					t.Errorf("%q rendered as %q which differs at (%d,%d)", input, Infix(e), i, j)
				}
			}
		}
	}
}

func Test_Lisp_01(t *testing.T) {
	e := expr.Simplify(parse(t, "i*8 + j"))
	//
	if s := Lisp(e, 0); s != "(+ (* 8 i) j)" {
		t.Errorf("unexpected lisp %q", s)
	} else if s := Lisp(e, 12); s != "(+\n   (* 8 i)\n   j)" {
		t.Errorf("unexpected lisp %q", s)
	}
}

func Test_Shared_01(t *testing.T) {
	var (
		x = expr.Sum(expr.Var("i"), expr.Var("j"))
		e = expr.And(x, expr.Xor(x, expr.Const64(1)))
	)
	//
	checkLines(t, Shared(e), "t0 = i + j", "t0 & (t0 ^ 1)")
}

func Test_Shared_02(t *testing.T) {
	// Leaves are never named
	e := parse(t, "(i + 1)*(i + 2)")
	//
	checkLines(t, Shared(e), "(i + 1)*(i + 2)")
}

func Test_Shared_03(t *testing.T) {
	var (
		x = expr.Sum(expr.Var("i"), expr.Var("j"))
		y = expr.Xor(x, expr.Const64(1))
		e = expr.Sum(expr.And(x, y), expr.Or(x, y))
	)
	//
	checkLines(t, Shared(e), "t0 = i + j", "t1 = t0 ^ 1", "(t0 & t1) + (t0 | t1)")
}

func Test_Shared_04(t *testing.T) {
	// Reconstruct the curve from its listing
	var (
		e        = expr.Simplify(curve.Hilbert(expr.Var("i"), expr.Var("j"), 3))
		lines    = Shared(e)
		bindings = make(map[string]expr.Expr)
	)
	//
	for _, line := range lines[:len(lines)-1] {
		name, body, _ := strings.Cut(line, " = ")
		bindings[name] = expr.Substitute(parse(t, body), bindings)
	}
	//
	r := expr.Substitute(parse(t, lines[len(lines)-1]), bindings)
	//
	for i := range uint64(8) {
		for j := range uint64(8) {
			val, err := expr.Eval(r, expr.Bindings(map[string]uint64{"i": i, "j": j}))
			//
			if err != nil {
				t.Fatalf("unexpected error: %s", err.Error())
			} else if !val.IsUint64() || val.Uint64() != curve.HilbertIndex(i, j, 3) {
				t.Errorf("listing evaluates to %s at (%d,%d)", val.String(), i, j)
			}
		}
	}
}

func Test_Line_01(t *testing.T) {
	if s := Line("Concrete", []string{"3", "7"}, expr.Const64(31)); s != "Concrete args:\tf(3, 7) = 31" {
		t.Errorf("unexpected line %q", s)
	}
}

func Test_Print_01(t *testing.T) {
	var (
		x = expr.Sum(expr.Var("i"), expr.Var("j"))
		e = expr.And(x, expr.Xor(x, expr.Const64(1)))
		p = NewPrinter(Options{Shared: true})
	)
	//
	checkLines(t, p.Print("Symbolic", []string{"i", "j"}, e),
		"Symbolic args:\tf(i, j) = t0 & (t0 ^ 1)", "\tt0 = i + j")
}

func Test_Print_02(t *testing.T) {
	var (
		x = expr.Sum(expr.Var("i"), expr.Var("j"))
		e = expr.And(x, expr.Xor(x, expr.Const64(1)))
		p = NewPrinter(Options{Shared: true, Lisp: true})
	)
	//
	checkLines(t, p.Print("Symbolic", []string{"i", "j"}, e),
		"Symbolic args:\tf(i, j) = (& t0 (^ t0 1))", "\tt0 = (+ i j)")
}

func Test_Print_03(t *testing.T) {
	p := NewPrinter(Options{})
	e := expr.Simplify(parse(t, "i*3*8 + (j + m)"))
	//
	checkLines(t, p.Print("Mixed", []string{"i*3", "j + m"}, e), "Mixed args:\tf(i*3, j + m) = 24*i + j + m")
}

func Test_Print_04(t *testing.T) {
	// A generous width gives the same lines as no width at all
	e := expr.Simplify(curve.Hilbert(expr.Var("i"), expr.Var("j"), 2))
	//
	for _, shared := range []bool{false, true} {
		lhs := NewPrinter(Options{Shared: shared}).Print("Symbolic", []string{"i", "j"}, e)
		rhs := NewPrinter(Options{Shared: shared, Width: 100000}).Print("Symbolic", []string{"i", "j"}, e)
		//
		if diff := cmp.Diff(lhs, rhs); diff != "" {
			t.Errorf("unexpected lines (-unwrapped +wrapped):\n%s", diff)
		}
	}
}

func Test_Wrap_01(t *testing.T) {
	checkLines(t, Wrap("a + b + c", 0), "a + b + c")
	checkLines(t, Wrap("a + b + c", 9), "a + b + c")
	checkLines(t, Wrap("a + b + c + d", 9), "a + b + c", "    + d")
}

func Test_Wrap_02(t *testing.T) {
	// Words longer than the width are never split
	checkLines(t, Wrap("abcdefgh + i", 4), "abcdefgh", "    +", "    i")
}

func checkInfix(t *testing.T, input string, expected string) {
	if s := Infix(parse(t, input)); s != expected {
		t.Errorf("%q rendered as %q, expected %q", input, s, expected)
	}
}

func checkSimplified(t *testing.T, input string, expected string) {
	if s := Infix(expr.Simplify(parse(t, input))); s != expected {
		t.Errorf("%q rendered as %q, expected %q", input, s, expected)
	}
}

func checkLines(t *testing.T, actual []string, expected ...string) {
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("unexpected lines (-expected +actual):\n%s", diff)
	}
}

func parse(t *testing.T, input string) expr.Expr {
	e, errs := expr.Parse(input, allNames)
	if len(errs) != 0 {
		t.Fatalf("unexpected error parsing %q: %s", input, errs[0].Error())
	}
	//
	return e
}

func allNames(string) bool { return true }
