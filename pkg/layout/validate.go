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
	"github.com/consensys/go-lil/pkg/util/math"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// DEFAULT_MAX_NESTING determines the default limit on how deeply layouts can
// be nested.
const DEFAULT_MAX_NESTING = 16

// Config provides options which control the construction of address
// functions.
type Config struct {
	// MaxNesting bounds the number of layouts which can be nested within each
	// other, thereby bounding the size of any resulting address function.
	MaxNesting uint
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{MaxNesting: DEFAULT_MAX_NESTING}
}

// Validate checks a layout descriptor is well-formed.  Specifically, that no
// extent is zero, that Z-order and Hilbert layouts have equal extents which
// are powers of two, that symbolic extents have valid names and that nesting is
// not excessively deep.  All errors found across the descriptor (and its nested
// layouts) are reported together.
func Validate(d *Descriptor, cfg Config) error {
	var err error
	//
	if depth := d.Depth(); depth > cfg.MaxNesting {
		err = errors.Wrapf(ErrInvalidLayoutExtent, "nesting too deep (%d layouts, maximum %d)", depth,
			cfg.MaxNesting)
	}
	//
	for ; d != nil; d = d.element.nested {
		err = multierr.Append(err, validateLayout(d))
	}
	//
	return err
}

func validateLayout(d *Descriptor) error {
	var err error
	//
	switch d.tag {
	case RowMajor, ColMajor:
		err = multierr.Combine(validateExtent(d, "rows", d.rows), validateExtent(d, "columns", d.cols))
	case ZMorton, Hilbert:
		err = validateSquare(d)
	default:
		return errors.Wrapf(ErrUnsupportedLayoutTag, "%s", d.tag.String())
	}
	//
	if !d.element.IsNested() {
		err = multierr.Append(err, validateExtent(d, "element size", d.element.size))
	}
	//
	return err
}

func validateExtent(d *Descriptor, what string, extent Extent) error {
	switch {
	case extent.IsConcrete() && extent.value == 0:
		return errors.Wrapf(ErrInvalidLayoutExtent, "%s has zero %s", d.String(), what)
	case !extent.IsConcrete() && !IsValidName(extent.name):
		return errors.Wrapf(ErrInvalidLayoutExtent, "%s has invalid %s %q", d.String(), what, extent.name)
	default:
		return nil
	}
}

// Z-order and Hilbert layouts must be square, with a side which is a power of
// two.
func validateSquare(d *Descriptor) error {
	switch {
	case !d.rows.IsConcrete() || !d.cols.IsConcrete():
		return errors.Wrapf(ErrInvalidLayoutExtent, "%s requires concrete extents", d.String())
	case d.rows.value != d.cols.value:
		return errors.Wrapf(ErrInvalidLayoutExtent, "%s is not square", d.String())
	case !math.IsPowerOfTwo(d.rows.value):
		return errors.Wrapf(ErrInvalidLayoutExtent, "%s extent is not a power of two", d.String())
	default:
		return nil
	}
}

// IsValidName checks whether a given name can be used for a layout parameter or
// an index variable.  Valid names are identifiers and, in particular, can never
// clash with the reserved row and column symbols.
func IsValidName(name string) bool {
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	//
	return name != ""
}
