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

import "github.com/pkg/errors"

// ErrInvalidLayoutExtent signals a layout whose extents are not permitted.  For
// example, a Z-order or Hilbert layout whose extents are not equal powers of
// two, or any layout with a zero extent.
var ErrInvalidLayoutExtent = errors.New("invalid layout extent")

// ErrInvalidArgument signals an argument given for instantiating an address
// function which is outside its domain, such as a negative index.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNameCollision signals that a name supplied for instantiating an address
// function clashes with a parameter of the layout itself.
var ErrNameCollision = errors.New("name collision")

// ErrUnsupportedLayoutTag signals a layout kind outside of those supported.
var ErrUnsupportedLayoutTag = errors.New("unsupported layout tag")
