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
	"github.com/consensys/go-lil/pkg/util/math"
)

// Offset computes the offset of a given row and column within a layout
// directly, without constructing an address function.  This serves as a
// reference against which address functions can be checked.  The layout must
// be valid with all extents concrete, and the row and column must lie within
// its logical extent.
func Offset(d *Descriptor, row uint64, col uint64) uint64 {
	if !d.element.IsNested() {
		return index(d, row, col) * d.element.size.Value()
	}
	//
	var (
		inner      = d.element.nested
		rows, cols = inner.logicalExtents()
	)
	//
	return index(d, row/rows, col/cols)*inner.size() + Offset(inner, row%rows, col%cols)
}

// Index of a given element within a layout, where elements are numbered
// consecutively.
func index(d *Descriptor, row uint64, col uint64) uint64 {
	switch d.tag {
	case RowMajor:
		return row*d.cols.Value() + col
	case ColMajor:
		return col*d.rows.Value() + row
	case ZMorton:
		return curve.MortonIndex(row, col, math.Log2(d.rows.Value()))
	case Hilbert:
		return curve.HilbertIndex(row, col, math.Log2(d.rows.Value()))
	}
	//
	panic("unreachable")
}

// Logical extents of a concrete layout.
func (p *Descriptor) logicalExtents() (uint64, uint64) {
	if p.element.IsNested() {
		rows, cols := p.element.nested.logicalExtents()
		return p.rows.Value() * rows, p.cols.Value() * cols
	}
	//
	return p.rows.Value(), p.cols.Value()
}

// Total size of a concrete layout.
func (p *Descriptor) size() uint64 {
	if p.element.IsNested() {
		return p.rows.Value() * p.cols.Value() * p.element.nested.size()
	}
	//
	return p.rows.Value() * p.cols.Value() * p.element.size.Value()
}
