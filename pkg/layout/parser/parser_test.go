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
package parser

import (
	"strings"
	"testing"

	"github.com/consensys/go-lil/pkg/layout"
	"github.com/google/go-cmp/cmp"
)

func Test_Parse_01(t *testing.T) {
	checkParse(t, "ROWMAJ(8, 8, 1)", "ROWMAJ(8, 8, 1)")
}

func Test_Parse_02(t *testing.T) {
	checkParse(t, "Z(4,4,1)", "ZMORTON(4, 4, 1)")
}

func Test_Parse_03(t *testing.T) {
	checkParse(t, "ZMORTON(4, 4, ROWMAJ(4, 4, 1))", "ZMORTON(4, 4, ROWMAJ(4, 4, 1))")
}

func Test_Parse_04(t *testing.T) {
	checkParse(t, " H(2,2,  C(3, 3, H(4, 4, 8)) ) ", "HILBERT(2, 2, COLMAJ(3, 3, HILBERT(4, 4, 8)))")
}

func Test_Parse_05(t *testing.T) {
	d := checkParse(t, "ROWMAJ(N, M, k)", "ROWMAJ(N, M, k)")
	//
	if diff := cmp.Diff([]string{"M", "N", "k"}, d.Params()); diff != "" {
		t.Errorf("unexpected parameters (-expected +actual):\n%s", diff)
	}
}

func Test_Parse_06(t *testing.T) {
	d := checkParse(t, "COLMAJ(2, 3, ROWMAJ(4, 5, 6))", "COLMAJ(2, 3, ROWMAJ(4, 5, 6))")
	//
	if d.Tag() != layout.ColMajor || d.Element().Layout().Tag() != layout.RowMajor {
		t.Errorf("unexpected tags in %s", d.String())
	}
}

func Test_Parse_07(t *testing.T) {
	// Validation is separate from parsing
	checkParse(t, "ZMORTON(5, 5, 0)", "ZMORTON(5, 5, 0)")
}

func Test_Invalid_01(t *testing.T) {
	checkInvalid(t, "FOO(1, 2, 3)", "FOO", "unsupported layout tag")
}

func Test_Invalid_02(t *testing.T) {
	checkInvalid(t, "ROWMAJ(8, 8)", ")", "expected ','")
}

func Test_Invalid_03(t *testing.T) {
	checkInvalid(t, "ROWMAJ(8, 8, 1", "", "expected ')'")
}

func Test_Invalid_04(t *testing.T) {
	checkInvalid(t, "ROWMAJ(8, 8, 1) 2", "2", "unexpected token")
}

func Test_Invalid_05(t *testing.T) {
	checkInvalid(t, "ROWMAJ(8; 8, 1)", ";", "unknown text")
}

func Test_Invalid_06(t *testing.T) {
	checkInvalid(t, "", "", "expected layout")
}

func Test_Invalid_07(t *testing.T) {
	checkInvalid(t, "ROWMAJ(99999999999999999999, 1, 1)", "99999999999999999999", "number too large")
}

func Test_Invalid_08(t *testing.T) {
	checkInvalid(t, "ROWMAJ(8, (8), 1)", "(", "expected extent")
}

func Test_Invalid_09(t *testing.T) {
	checkInvalid(t, "ROWMAJ 8, 8, 1", "8", "expected '('")
}

func checkParse(t *testing.T, input string, expected string) *layout.Descriptor {
	d, errs := ParseString(input)
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected error parsing %q: %s", input, errs[0].Error())
	} else if d.String() != expected {
		t.Errorf("%q parsed as %s, expected %s", input, d.String(), expected)
	}
	//
	return d
}

// Check parsing fails, highlighting the given text with a message containing
// the given string.
func checkInvalid(t *testing.T, input string, text string, msg string) {
	d, errs := ParseString(input)
	//
	if d != nil || len(errs) != 1 {
		t.Fatalf("expected one error parsing %q", input)
	}
	//
	err := errs[0]
	//
	if actual := err.SourceFile().Text(err.Span()); actual != text {
		t.Errorf("error parsing %q highlights %q, expected %q", input, actual, text)
	} else if !strings.Contains(err.Message(), msg) {
		t.Errorf("error parsing %q was %q, expected %q", input, err.Message(), msg)
	}
}
