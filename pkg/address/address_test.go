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
package address

import (
	"context"
	"testing"

	"github.com/consensys/go-lil/pkg/curve"
	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"github.com/consensys/go-lil/pkg/layout/parser"
	"github.com/pkg/errors"
)

func Test_Concrete_01(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkResult(t, "concrete", checked(Concrete(af, 3, 7)), "31")
}

func Test_Concrete_02(t *testing.T) {
	af := build(t, "ZMORTON(4, 4, ROWMAJ(4, 4, 1))")
	//
	for r := range int64(16) {
		for c := range int64(16) {
			expected := curve.MortonIndex(uint64(r/4), uint64(c/4), 2)*16 + uint64((r%4)*4+c%4)
			checkValue(t, checked(Concrete(af, r, c)), expected)
		}
	}
}

func Test_Concrete_03(t *testing.T) {
	af := build(t, "HILBERT(8, 8, 1)")
	//
	for r := range int64(8) {
		for c := range int64(8) {
			checkValue(t, checked(Concrete(af, r, c)), curve.HilbertIndex(uint64(r), uint64(c), 3))
		}
	}
}

func Test_Concrete_04(t *testing.T) {
	// Parameters remain free
	af := build(t, "ROWMAJ(N, M, 1)")
	//
	checkResult(t, "concrete", checked(Concrete(af, 3, 7)), "(+ 7 (* 3 M))")
}

func Test_Concrete_05(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkError(t, layout.ErrInvalidArgument)(Concrete(af, -1, 0))
	checkError(t, layout.ErrInvalidArgument)(Concrete(af, 0, -3))
}

func Test_Concrete_06(t *testing.T) {
	af := build(t, "ROWMAJ(2, 4, COLMAJ(2, 2, 1))")
	//
	checkValue(t, checked(Concrete(af, 3, 7)), 31)
	checkError(t, layout.ErrInvalidArgument)(Concrete(af, 4, 0))
	checkError(t, layout.ErrInvalidArgument)(Concrete(af, 0, 8))
}

func Test_Symbolic_01(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkResult(t, "symbolic", checked(Symbolic(af, "i", "j")), "(+ (* 8 i) j)")
}

func Test_Symbolic_02(t *testing.T) {
	af := build(t, "COLMAJ(4, 6, 4)")
	//
	checkResult(t, "symbolic", checked(Symbolic(af, "row", "col")), "(+ (* 16 col) (* 4 row))")
}

func Test_Symbolic_03(t *testing.T) {
	af := build(t, "ROWMAJ(N, M, 1)")
	//
	checkResult(t, "symbolic", checked(Symbolic(af, "i", "j")), "(+ (* M i) j)")
	checkError(t, layout.ErrNameCollision)(Symbolic(af, "N", "j"))
	checkError(t, layout.ErrNameCollision)(Symbolic(af, "i", "M"))
}

func Test_Symbolic_04(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkError(t, layout.ErrInvalidArgument)(Symbolic(af, "$row", "j"))
	checkError(t, layout.ErrInvalidArgument)(Symbolic(af, "i", ""))
	checkError(t, layout.ErrInvalidArgument)(Symbolic(af, "1i", "j"))
}

func Test_Symbolic_05(t *testing.T) {
	// Index names are distinct from the reserved symbols
	af := build(t, "ZMORTON(2, 2, 1)")
	//
	checkResult(t, "symbolic", checked(Symbolic(af, "col", "row")), "(+ (* 2 (& col 1)) (& row 1))")
}

func Test_Mixed_01(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkResult(t, "mixed", checked(Mixed(af, parse(t, "i*3"), parse(t, "j+m"))), "(+ (* 24 i) j m)")
}

func Test_Mixed_02(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkResult(t, "mixed", checked(Mixed(af, parse(t, "2"), parse(t, "j"))), "(+ 16 j)")
}

func Test_Mixed_03(t *testing.T) {
	af := build(t, "ROWMAJ(N, M, 1)")
	//
	checkError(t, layout.ErrNameCollision)(Mixed(af, parse(t, "i"), parse(t, "M+1")))
	checkError(t, layout.ErrNameCollision)(Mixed(af, parse(t, "N*i"), parse(t, "j")))
}

func Test_Mixed_04(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	//
	checkError(t, layout.ErrInvalidArgument)(Mixed(af, parse(t, "4*2"), parse(t, "j")))
}

func Test_Mixed_05(t *testing.T) {
	// Mixed instantiation agrees with concrete instantiation
	af := build(t, "HILBERT(4, 4, ZMORTON(2, 2, 3))")
	//
	for r := range int64(8) {
		for c := range int64(8) {
			mixed := checked(Mixed(af, expr.Const64(r), expr.Const64(c)))
			concrete := checked(Concrete(af, r, c))
			//
			if !expr.Equal(mixed, concrete) {
				t.Errorf("mixed %s differs from concrete %s", mixed.String(), concrete.String())
			}
		}
	}
}

func Test_Mixed_06(t *testing.T) {
	// Factored arguments combine with like terms from the layout
	af := build(t, "COLMAJ(4, 4, 2)")
	e := checked(Mixed(af, parse(t, "m*(7+8*j)"), parse(t, "m")))
	//
	checkResult(t, "mixed", e, "(+ (* 16 j m) (* 22 m))")
	//
	if r := expr.Simplify(e); !expr.Equal(e, r) {
		t.Errorf("mixed instantiation %s simplified again to %s", e.String(), r.String())
	}
}

func Test_Instantiate_01(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	req := Request{3, 7, "i", "j", Binding{parse(t, "i*3"), parse(t, "j+m")}}
	//
	res, err := Instantiate(context.Background(), af, req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	//
	checkResult(t, "concrete", res.Concrete, "31")
	checkResult(t, "symbolic", res.Symbolic, "(+ (* 8 i) j)")
	checkResult(t, "mixed", res.Mixed, "(+ (* 24 i) j m)")
}

func Test_Instantiate_02(t *testing.T) {
	af := build(t, "ROWMAJ(N, M, 1)")
	req := Request{3, 7, "N", "j", Binding{parse(t, "i"), parse(t, "j")}}
	//
	if res, err := Instantiate(context.Background(), af, req); res != nil || !errors.Is(err, layout.ErrNameCollision) {
		t.Errorf("expected name collision, got %v", err)
	}
}

func Test_Instantiate_03(t *testing.T) {
	af := build(t, "ROWMAJ(8, 8, 1)")
	req := Request{3, 7, "i", "j", Binding{parse(t, "i"), parse(t, "j")}}
	ctx, cancel := context.WithCancel(context.Background())
	//
	cancel()
	//
	if res, err := Instantiate(ctx, af, req); res != nil || !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}

func build(t *testing.T, input string) *layout.AddressFunction {
	d, errs := parser.ParseString(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected error parsing %q: %s", input, errs[0].Error())
	}
	//
	af, err := layout.Build(d, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error building %q: %s", input, err.Error())
	}
	//
	return af
}

func parse(t *testing.T, input string) expr.Expr {
	e, errs := expr.Parse(input, layout.IsValidName)
	if len(errs) != 0 {
		t.Fatalf("unexpected error parsing %q: %s", input, errs[0].Error())
	}
	//
	return e
}

func checked(e expr.Expr, err error) expr.Expr {
	if err != nil {
		panic(err.Error())
	}
	//
	return e
}

func checkResult(t *testing.T, mode string, actual expr.Expr, expected string) {
	if actual.String() != expected {
		t.Errorf("%s instantiation gave %s, expected %s", mode, actual.String(), expected)
	}
}

func checkValue(t *testing.T, actual expr.Expr, expected uint64) {
	c, ok := actual.(*expr.Constant)
	//
	if !ok || !c.Value().IsUint64() || c.Value().Uint64() != expected {
		t.Errorf("instantiation gave %s, expected %d", actual.String(), expected)
	}
}

func checkError(t *testing.T, expected error) func(expr.Expr, error) {
	return func(actual expr.Expr, err error) {
		if actual != nil || !errors.Is(err, expected) {
			t.Errorf("expected %v, got %v", expected, err)
		}
	}
}
