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

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/layout"
	"golang.org/x/sync/errgroup"
)

// Request identifies the arguments for each of the three ways of instantiating
// an address function.
type Request struct {
	// Row and column indices for the concrete instantiation.
	Row, Col int64
	// Variable names for the symbolic instantiation.
	RowName, ColName string
	// Argument expressions for the mixed instantiation.
	Mixed Binding
}

// Result holds the (simplified) outcome of each instantiation.
type Result struct {
	Concrete expr.Expr
	Symbolic expr.Expr
	Mixed    expr.Expr
}

// Instantiate an address function in all three ways at once.  Since address
// functions are immutable, the instantiations proceed in parallel.  If any
// instantiation fails then an error is returned, and no result.  Instantiations
// not yet started when one fails are skipped.
func Instantiate(ctx context.Context, af *layout.AddressFunction, req Request) (*Result, error) {
	var result Result
	// Nothing to do if already cancelled
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	//
	g, gctx := errgroup.WithContext(ctx)
	// Instantiate unless another instantiation has already failed.
	instantiate := func(target *expr.Expr, fn func() (expr.Expr, error)) {
		g.Go(func() (err error) {
			if err = gctx.Err(); err == nil {
				*target, err = fn()
			}
			//
			return err
		})
	}
	//
	instantiate(&result.Concrete, func() (expr.Expr, error) {
		return Concrete(af, req.Row, req.Col)
	})
	//
	instantiate(&result.Symbolic, func() (expr.Expr, error) {
		return Symbolic(af, req.RowName, req.ColName)
	})
	//
	instantiate(&result.Mixed, func() (expr.Expr, error) {
		return Mixed(af, req.Mixed.Row, req.Mixed.Col)
	})
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	return &result, nil
}
