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
	"slices"
	"strings"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/pkg/errors"
)

// Tag identifies the kind of a layout.
type Tag uint8

const (
	// RowMajor lays out elements one row after another.
	RowMajor Tag = iota
	// ColMajor lays out elements one column after another.
	ColMajor
	// ZMorton lays out elements in Z-order, by interleaving the bits of the
	// row and column.
	ZMorton
	// Hilbert lays out elements along a Hilbert curve.
	Hilbert
)

var tagNames = [...]string{"ROWMAJ", "COLMAJ", "ZMORTON", "HILBERT"}

func (p Tag) String() string {
	if p <= Hilbert {
		return tagNames[p]
	}
	//
	return fmt.Sprintf("TAG#%d", p)
}

// TagOf determines the layout tag for a given name.  Any non-empty prefix of a
// layout's name identifies that layout, so "Z" and "ZMORTON" both identify
// Z-order layouts.
func TagOf(name string) (Tag, error) {
	if name != "" {
		for i, n := range tagNames {
			if strings.HasPrefix(n, name) {
				return Tag(i), nil
			}
		}
	}
	//
	return 0, errors.Wrapf(ErrUnsupportedLayoutTag, "%q", name)
}

// Element describes the elements of a layout.  These are either opaque blocks
// of a fixed size, or are themselves laid out according to a nested layout.
type Element struct {
	size   Extent
	nested *Descriptor
}

// FixedSize constructs an element of a given size.
func FixedSize(size Extent) Element {
	return Element{size, nil}
}

// Nested constructs an element which is itself a layout.
func Nested(layout *Descriptor) Element {
	return Element{Extent{}, layout}
}

// IsNested checks whether this element is a nested layout.
func (p Element) IsNested() bool {
	return p.nested != nil
}

// Layout returns the nested layout of this element, or nil if it has a fixed
// size.
func (p Element) Layout() *Descriptor {
	return p.nested
}

// Size returns the size of a fixed-size element.
func (p Element) Size() Extent {
	return p.size
}

func (p Element) String() string {
	if p.nested != nil {
		return p.nested.String()
	}
	//
	return p.size.String()
}

// Descriptor describes the layout of a two-dimensional array in (linear)
// memory, consisting of a given number of rows and columns of some element.
// Descriptors are immutable.
type Descriptor struct {
	tag     Tag
	rows    Extent
	cols    Extent
	element Element
}

// Make constructs a layout descriptor without validating it.  This is useful
// for descriptors built up in pieces (e.g. by a parser), which can then be
// validated as a whole using Validate.
func Make(tag Tag, rows Extent, cols Extent, element Element) *Descriptor {
	return &Descriptor{tag, rows, cols, element}
}

// New constructs a (validated) layout descriptor using the default
// configuration.
func New(tag Tag, rows Extent, cols Extent, element Element) (*Descriptor, error) {
	var d = Make(tag, rows, cols, element)
	//
	if err := Validate(d, DefaultConfig()); err != nil {
		return nil, err
	}
	//
	return d, nil
}

// Tag returns the kind of this layout.
func (p *Descriptor) Tag() Tag {
	return p.tag
}

// Rows returns the number of rows (of elements) in this layout.
func (p *Descriptor) Rows() Extent {
	return p.rows
}

// Cols returns the number of columns (of elements) in this layout.
func (p *Descriptor) Cols() Extent {
	return p.cols
}

// Element returns the elements of this layout.
func (p *Descriptor) Element() Element {
	return p.element
}

// Depth returns the number of layouts nested within this layout (including
// itself).
func (p *Descriptor) Depth() uint {
	if p.element.IsNested() {
		return 1 + p.element.nested.Depth()
	}
	//
	return 1
}

// Size returns the total storage occupied by this layout.
func (p *Descriptor) Size() expr.Expr {
	return expr.Product(p.rows.Expr(), p.cols.Expr(), p.ElemSize())
}

// ElemSize returns the storage occupied by a single element of this layout.
func (p *Descriptor) ElemSize() expr.Expr {
	if p.element.IsNested() {
		return p.element.nested.Size()
	}
	//
	return p.element.size.Expr()
}

// LogicalRows returns the number of rows in the full logical domain of this
// layout.  That is, the number of rows of this layout multiplied by the number
// of rows of any nested layout.
func (p *Descriptor) LogicalRows() expr.Expr {
	if p.element.IsNested() {
		return expr.Product(p.rows.Expr(), p.element.nested.LogicalRows())
	}
	//
	return p.rows.Expr()
}

// LogicalCols returns the number of columns in the full logical domain of this
// layout.
func (p *Descriptor) LogicalCols() expr.Expr {
	if p.element.IsNested() {
		return expr.Product(p.cols.Expr(), p.element.nested.LogicalCols())
	}
	//
	return p.cols.Expr()
}

// Params returns the names of all symbolic extents used within this layout
// (including nested layouts), in sorted order.
func (p *Descriptor) Params() []string {
	var params []string
	//
	for d := p; d != nil; d = d.element.nested {
		for _, e := range []Extent{d.rows, d.cols, d.element.size} {
			if !e.IsConcrete() && !slices.Contains(params, e.name) {
				params = append(params, e.name)
			}
		}
	}
	//
	slices.Sort(params)
	//
	return params
}

// String returns this descriptor in its textual form, e.g. "ROWMAJ(8, 8, 1)".
func (p *Descriptor) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", p.tag.String(), p.rows.String(), p.cols.String(), p.element.String())
}
