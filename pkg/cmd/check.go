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
	"fmt"
	"os"
	"runtime"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"github.com/consensys/go-lil/pkg/util"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Maximum number of discrepancies reported by a check.
const maxReported = 10

// Check an address function agrees with the reference offsets of its layout
// across the entire logical domain, and that no two positions share an
// offset.  Rows are checked in parallel.  Any discrepancies are reported, and
// terminate execution.
func checkAddressFunction(af *layout.AddressFunction) {
	var (
		stats   = util.NewPerfStats()
		d       = af.Layout()
		body    = expr.Simplify(af.Expr())
		offsets [][]uint64
		g       errgroup.Group
	)
	//
	if len(af.Params()) != 0 {
		fmt.Printf("cannot check %s (has parameters)\n", d.String())
		os.Exit(1)
	}
	//
	rows, cols := concreteExtent(d.LogicalRows()), concreteExtent(d.LogicalCols())
	offsets = make([][]uint64, rows)
	//
	g.SetLimit(runtime.NumCPU())
	//
	for r := range rows {
		g.Go(func() error {
			var err error
			offsets[r], err = evalRow(body, r, cols)
			//
			return err
		})
	}
	//
	if err := g.Wait(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	//
	stats.Log("Evaluating address function")
	//
	if n := compareOffsets(d, offsets); n > 0 {
		fmt.Printf("Check failed: %d discrepancies\n", n)
		os.Exit(1)
	}
	//
	stats.Log("Checking address function")
	//
	fmt.Printf("Check passed: %d positions\n", rows*cols)
}

// Evaluate the offsets of every column within a given row.
func evalRow(body expr.Expr, row uint64, cols uint64) ([]uint64, error) {
	var offsets = make([]uint64, cols)
	//
	for c := range cols {
		env := expr.Bindings(map[string]uint64{layout.RowSymbol: row, layout.ColSymbol: c})
		//
		val, err := expr.Eval(body, env)
		if err != nil {
			return nil, err
		} else if !val.IsUint64() {
			return nil, errors.Errorf("offset %s at (%d,%d) out of range", val.String(), row, c)
		}
		//
		offsets[c] = val.Uint64()
	}
	//
	return offsets, nil
}

// Compare offsets against the reference offsets, and check they are distinct.
// This returns the number of discrepancies found, reporting the first few.
func compareOffsets(d *layout.Descriptor, offsets [][]uint64) uint {
	var (
		count uint
		seen   = make(map[uint64][2]uint64)
	)
	//
	report := func(msg string, args ...any) {
		if count++; count <= maxReported {
			fmt.Printf(msg, args...)
		}
	}
	//
	for r, row := range offsets {
		for c, actual := range row {
			var (
				i, j     = uint64(r), uint64(c)
				expected = layout.Offset(d, i, j)
			)
			//
			if actual != expected {
				report("offset at (%d,%d) is %d, expected %d\n", i, j, actual, expected)
			} else if prev, ok := seen[actual]; ok {
				report("offset %d at (%d,%d) already used by (%d,%d)\n", actual, i, j, prev[0], prev[1])
			}
			//
			seen[actual] = [2]uint64{i, j}
		}
	}
	//
	return count
}

// Evaluate an extent which is known to be concrete.
func concreteExtent(e expr.Expr) uint64 {
	val, err := expr.Eval(e, expr.Bindings(nil))
	if err != nil || !val.IsUint64() {
		panic(fmt.Sprintf("extent %s is not concrete", e.String()))
	}
	//
	return val.Uint64()
}
