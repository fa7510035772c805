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

import (
	"math/big"
	"testing"
)

// value is a trivial term which evaluates expressions directly, using a fixed
// assignment of variables.
type value int64

var assignment = map[string]value{"i": 2, "j": 5, "m": 7}

func (value) Variable(name string) value { return assignment[name] }
func (value) Number(n big.Int) value     { return value(n.Int64()) }
func (p value) Div(o value) value        { return p / o }
func (p value) Mod(o value) value        { return p % o }
func (p value) Shl(n uint) value         { return p << n }
func (p value) Shr(n uint) value         { return p >> n }
func (p value) And(o value) value        { return p & o }
func (p value) Or(o value) value         { return p | o }
func (p value) Xor(o value) value        { return p ^ o }

func (p value) Add(os ...value) value {
	for _, o := range os {
		p += o
	}
	//
	return p
}

func (p value) Mul(os ...value) value {
	for _, o := range os {
		p *= o
	}
	//
	return p
}

func Test_Parse_01(t *testing.T) {
	checkParse(t, "i*3", 6)
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "j+m", 12)
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "1 + 2 * 3", 7)
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, "(1 + 2) * 3", 9)
}

func Test_Parse_05(t *testing.T) {
	// shifts bind looser than addition
	checkParse(t, "1 + 1 << 2", 8)
}

func Test_Parse_06(t *testing.T) {
	checkParse(t, "m >> 1 & 1", 1)
}

func Test_Parse_07(t *testing.T) {
	checkParse(t, "j | i ^ m & 3", 5|(2^(7&3)))
}

func Test_Parse_08(t *testing.T) {
	checkParse(t, "m / 2 % 2 + m % 4", 4)
}

func Test_Parse_09(t *testing.T) {
	checkParse(t, "((i))", 2)
}

func Test_Invalid_01(t *testing.T) {
	checkInvalid(t, "i -")
}

func Test_Invalid_02(t *testing.T) {
	checkInvalid(t, "x + 1")
}

func Test_Invalid_03(t *testing.T) {
	checkInvalid(t, "i << j")
}

func Test_Invalid_04(t *testing.T) {
	checkInvalid(t, "(i + 1")
}

func Test_Invalid_05(t *testing.T) {
	checkInvalid(t, "i j")
}

func Test_Invalid_06(t *testing.T) {
	checkInvalid(t, "")
}

func environment(name string) bool {
	_, ok := assignment[name]
	return ok
}

func checkParse(t *testing.T, input string, expected value) {
	val, errs := Parse[value](input, environment)
	//
	if len(errs) != 0 {
		t.Errorf("unexpected error parsing %q: %s", input, errs[0].Error())
	} else if val != expected {
		t.Errorf("%q evaluated to %d, expected %d", input, val, expected)
	}
}

func checkInvalid(t *testing.T, input string) {
	if _, errs := Parse[value](input, environment); len(errs) == 0 {
		t.Errorf("expected error parsing %q", input)
	}
}
