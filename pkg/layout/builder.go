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
package layout

import (
	"github.com/consensys/go-lil/pkg/curve"
	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/util/math"
	log "github.com/sirupsen/logrus"
)

// RowSymbol is the reserved variable name representing the row index within an
// address function.  This cannot clash with any valid parameter name.
const RowSymbol = "$row"

// ColSymbol is the reserved variable name representing the column index within
// an address function.
const ColSymbol = "$col"

// AddressFunction maps a (row, column) index within the logical domain of a
// layout to its offset in memory.  This is represented as an (unsimplified)
// index expression over the reserved variables RowSymbol and ColSymbol, along
// with any parameters of the layout itself.
type AddressFunction struct {
	layout *Descriptor
	body   expr.Expr
	params []string
}

// Layout returns the layout from which this address function was built.
func (p *AddressFunction) Layout() *Descriptor {
	return p.layout
}

// Expr returns the body of this address function.
func (p *AddressFunction) Expr() expr.Expr {
	return p.body
}

// Params returns the parameters of the layout (i.e. names of any symbolic
// extents), which are free variables of this address function.
func (p *AddressFunction) Params() []string {
	return p.params
}

// Build constructs the address function for a given layout, after first
// validating the layout.  For a nested layout "outer(n, m, inner(p, q, k))" the
// address function covers the full logical domain of n*p rows and m*q columns.
// An index (row, col) is decomposed into the block (row/p, col/q) which is
// located using the outer layout, and the position (row%p, col%q) within that
// block which is located using the inner layout.
func Build(d *Descriptor, cfg Config) (*AddressFunction, error) {
	if err := Validate(d, cfg); err != nil {
		return nil, err
	}
	//
	body := offset(d, expr.Var(RowSymbol), expr.Var(ColSymbol))
	//
	log.Debugf("built address function for %s (%d nodes)", d.String(), body.Size())
	//
	return &AddressFunction{d, body, d.Params()}, nil
}

// Construct the offset of a given row and column within a layout.
func offset(d *Descriptor, row expr.Expr, col expr.Expr) expr.Expr {
	if !d.element.IsNested() {
		return expr.Product(fragment(d, row, col), d.element.size.Expr())
	}
	//
	var (
		inner = d.element.nested
		rows  = inner.LogicalRows()
		cols  = inner.LogicalCols()
		// Locate the block
		outer = fragment(d, expr.Div(row, rows), expr.Div(col, cols))
	)
	// Locate within the block
	return expr.Sum(
		expr.Product(outer, inner.Size()),
		offset(inner, expr.Mod(row, rows), expr.Mod(col, cols)))
}

// Construct the index of a given element (row, col) within a layout, where
// elements are numbered consecutively.
func fragment(d *Descriptor, row expr.Expr, col expr.Expr) expr.Expr {
	switch d.tag {
	case RowMajor:
		return expr.Sum(expr.Product(row, d.cols.Expr()), col)
	case ColMajor:
		return expr.Sum(expr.Product(col, d.rows.Expr()), row)
	case ZMorton:
		return curve.Morton(row, col, math.Log2(d.rows.value))
	case Hilbert:
		return curve.Hilbert(row, col, math.Log2(d.rows.value))
	}
	//
	panic("unreachable")
}
