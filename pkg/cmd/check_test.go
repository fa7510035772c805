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
package cmd

import (
	"math/big"
	"strings"
	"testing"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"github.com/consensys/go-lil/pkg/layout/parser"
)

func Test_Check_01(t *testing.T) {
	checkOffsets(t, "ZMORTON(4, 4, ROWMAJ(4, 4, 1))", 0)
}

func Test_Check_02(t *testing.T) {
	checkOffsets(t, "HILBERT(8, 8, COLMAJ(2, 3, HILBERT(2, 2, 5)))", 0)
}

func Test_Check_03(t *testing.T) {
	// Swapping two offsets gives two discrepancies
	checkOffsets(t, "ROWMAJ(3, 3, 2)", 2, func(offsets [][]uint64) {
		offsets[0][1], offsets[2][2] = offsets[2][2], offsets[0][1]
	})
}

func Test_Check_04(t *testing.T) {
	// A duplicated offset also disagrees with the reference
	checkOffsets(t, "HILBERT(4, 4, 1)", 1, func(offsets [][]uint64) {
		offsets[3][3] = offsets[0][0]
	})
}

func Test_Check_05(t *testing.T) {
	// Offsets beyond 64 bits are reported
	var huge = expr.Sum(expr.Var(layout.ColSymbol), expr.Const(new(big.Int).Lsh(big.NewInt(1), 70)))
	//
	if _, err := evalRow(huge, 0, 2); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("expected out of range offset, got %v", err)
	}
}

func checkOffsets(t *testing.T, input string, expected uint, mutators ...func([][]uint64)) {
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
	var (
		body       = expr.Simplify(af.Expr())
		rows, cols = concreteExtent(d.LogicalRows()), concreteExtent(d.LogicalCols())
		offsets    = make([][]uint64, rows)
	)
	//
	for r := range rows {
		if offsets[r], err = evalRow(body, r, cols); err != nil {
			t.Fatalf("unexpected error evaluating %q: %s", input, err.Error())
		}
	}
	//
	for _, mutate := range mutators {
		mutate(offsets)
	}
	//
	if n := compareOffsets(d, offsets); n != expected {
		t.Errorf("%q has %d discrepancies, expected %d", input, n, expected)
	}
}
