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
package bexp

import "math/big"

// Term represents an abstraction over non-negative integer expressions, such
// that the parser can construct terms without knowing their representation.
type Term[T any] interface {
	// Construct a new variable.
	Variable(string) T
	// Construct a new constant.
	Number(big.Int) T
	// Arithmetic
	Add(...T) T
	Mul(...T) T
	Div(T) T
	Mod(T) T
	// Shifts (by constant amounts)
	Shl(uint) T
	Shr(uint) T
	// Bitwise
	And(T) T
	Or(T) T
	Xor(T) T
}
