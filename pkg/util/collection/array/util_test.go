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
package array

import (
	"cmp"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

type num int

func (p num) Cmp(other num) int { return cmp.Compare(p, other) }

func Test_ContainsMatching_01(t *testing.T) {
	if !ContainsMatching([]num{1, 2, 3}, func(n num) bool { return n == 2 }) {
		t.Errorf("expected match")
	} else if ContainsMatching([]num{1, 3}, func(n num) bool { return n == 2 }) {
		t.Errorf("unexpected match")
	}
}

func Test_MergeSorted_01(t *testing.T) {
	got := MergeSorted([]num{1, 3, 5}, []num{2, 3, 6, 7})
	//
	if diff := gocmp.Diff([]num{1, 2, 3, 3, 5, 6, 7}, got); diff != "" {
		t.Errorf("unexpected merge:\n%s", diff)
	}
}

func Test_Compare_01(t *testing.T) {
	if Compare([]num{1, 2}, []num{1, 2, 0}) >= 0 {
		t.Errorf("shorter slice should come first")
	} else if Compare([]num{1, 3}, []num{1, 2}) <= 0 {
		t.Errorf("[1 3] should follow [1 2]")
	} else if Compare([]num{4, 4}, []num{4, 4}) != 0 {
		t.Errorf("equal slices should compare equal")
	}
}

func Test_IntersectSorted_01(t *testing.T) {
	got := IntersectSorted([]num{1, 2, 2, 2, 5, 7}, []num{0, 2, 2, 5, 6})
	//
	if diff := gocmp.Diff([]num{2, 2, 5}, got); diff != "" {
		t.Errorf("unexpected intersection:\n%s", diff)
	} else if got := IntersectSorted([]num{1, 3}, []num{2, 4}); len(got) != 0 {
		t.Errorf("unexpected intersection %v", got)
	}
}

func Test_SubtractSorted_01(t *testing.T) {
	got, ok := SubtractSorted([]num{1, 2, 2, 5, 7}, []num{2, 7})
	//
	if diff := gocmp.Diff([]num{1, 2, 5}, got); !ok || diff != "" {
		t.Errorf("unexpected subtraction:\n%s", diff)
	}
}

func Test_SubtractSorted_02(t *testing.T) {
	if _, ok := SubtractSorted([]num{1, 2, 5}, []num{2, 2}); ok {
		t.Errorf("expected subtraction to fail")
	} else if _, ok := SubtractSorted([]num{1, 5}, []num{3}); ok {
		t.Errorf("expected subtraction to fail")
	} else if _, ok := SubtractSorted([]num{1, 5}, []num{6}); ok {
		t.Errorf("expected subtraction to fail")
	}
}
