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
	"math/big"
	"slices"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Binding identifies the expressions to be substituted for the row and column
// indices of an address function.
type Binding struct {
	Row expr.Expr
	Col expr.Expr
}

// Concrete instantiates an address function with concrete row and column
// indices, producing a constant offset.  Indices must be non-negative and, when
// the logical extent of the layout is known, within that extent.
func Concrete(af *layout.AddressFunction, row int64, col int64) (expr.Expr, error) {
	if row < 0 || col < 0 {
		return nil, errors.Wrapf(layout.ErrInvalidArgument, "negative index (%d,%d)", row, col)
	}
	//
	var binding = Binding{expr.Const64(row), expr.Const64(col)}
	//
	if err := checkExtents(af, binding); err != nil {
		return nil, err
	}
	//
	return bind(af, binding), nil
}

// Symbolic instantiates an address function with fresh variables for the row
// and column indices.  The names given must be valid identifiers which do not
// clash with any parameter of the layout.
func Symbolic(af *layout.AddressFunction, rowName string, colName string) (expr.Expr, error) {
	for _, name := range []string{rowName, colName} {
		if !layout.IsValidName(name) {
			return nil, errors.Wrapf(layout.ErrInvalidArgument, "invalid variable name %q", name)
		} else if slices.Contains(af.Params(), name) {
			return nil, errors.Wrapf(layout.ErrNameCollision, "variable %q is a parameter of %s", name,
				af.Layout().String())
		}
	}
	//
	return bind(af, Binding{expr.Var(rowName), expr.Var(colName)}), nil
}

// Mixed instantiates an address function with arbitrary expressions for the
// row and column indices.  No free variable of either expression may clash with
// a parameter of the layout.  An argument which is a constant must lie within
// the logical extent of the layout (when that is known).
func Mixed(af *layout.AddressFunction, rowExpr expr.Expr, colExpr expr.Expr) (expr.Expr, error) {
	var binding = Binding{rowExpr, colExpr}
	//
	for _, arg := range []expr.Expr{rowExpr, colExpr} {
		for _, name := range expr.Vars(arg) {
			if slices.Contains(af.Params(), name) {
				return nil, errors.Wrapf(layout.ErrNameCollision, "variable %q is a parameter of %s", name,
					af.Layout().String())
			}
		}
	}
	//
	if err := checkExtents(af, binding); err != nil {
		return nil, err
	}
	//
	return bind(af, binding), nil
}

// Substitute the bound expressions for the row and column indices, and then
// simplify.
func bind(af *layout.AddressFunction, binding Binding) expr.Expr {
	body := expr.Substitute(af.Expr(), map[string]expr.Expr{
		layout.RowSymbol: binding.Row,
		layout.ColSymbol: binding.Col,
	})
	//
	result := expr.Simplify(body)
	//
	log.Debugf("instantiated %s at (%s,%s) with %d nodes (from %d)", af.Layout().String(), binding.Row.String(),
		binding.Col.String(), result.Size(), body.Size())
	//
	return result
}

// Check that any constant argument lies within the logical extent of the
// layout.  Extents which are not known (i.e. involve parameters) impose no
// constraint.
func checkExtents(af *layout.AddressFunction, binding Binding) error {
	var (
		rows = af.Layout().LogicalRows()
		cols = af.Layout().LogicalCols()
	)
	//
	if err := checkExtent("row", binding.Row, rows); err != nil {
		return err
	}
	//
	return checkExtent("column", binding.Col, cols)
}

func checkExtent(what string, arg expr.Expr, extent expr.Expr) error {
	index, ok := constantOf(arg)
	if !ok {
		return nil
	}
	//
	limit, ok := constantOf(extent)
	//
	if ok && index.Cmp(limit) >= 0 {
		return errors.Wrapf(layout.ErrInvalidArgument, "%s index %s outside extent %s", what, index.String(),
			limit.String())
	}
	//
	return nil
}

// Determine the value of an expression without free variables.
func constantOf(e expr.Expr) (*big.Int, bool) {
	if len(expr.Vars(e)) != 0 {
		return nil, false
	}
	//
	val, err := expr.Eval(e, expr.Bindings(nil))
	//
	return val, err == nil
}
