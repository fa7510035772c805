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
	"fmt"
	"math/big"

	"github.com/consensys/go-lil/pkg/expr"
)

// Extent represents a dimension (or element size) of a layout.  This is either
// a concrete integer, or a named parameter whose value is left open.  Named
// parameters become free variables of the resulting address function.
type Extent struct {
	value uint64
	name  string
}

// Fixed constructs a concrete extent.
func Fixed(value uint64) Extent {
	return Extent{value, ""}
}

// Param constructs a named (i.e. symbolic) extent.
func Param(name string) Extent {
	return Extent{0, name}
}

// IsConcrete determines whether or not this extent has a known value.
func (p Extent) IsConcrete() bool {
	return p.name == ""
}

// Value returns the value of a concrete extent.
func (p Extent) Value() uint64 {
	return p.value
}

// Name returns the name of a symbolic extent.
func (p Extent) Name() string {
	return p.name
}

// Expr returns this extent as an index expression.
func (p Extent) Expr() expr.Expr {
	if p.IsConcrete() {
		return expr.Const(new(big.Int).SetUint64(p.value))
	}
	//
	return expr.Var(p.name)
}

func (p Extent) String() string {
	if p.IsConcrete() {
		return fmt.Sprintf("%d", p.value)
	}
	//
	return p.name
}
