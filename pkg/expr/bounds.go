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
package expr

import (
	"math/big"

	"github.com/consensys/go-lil/pkg/util/math"
)

// UpperBound determines an inclusive upper bound on the values an expression
// can take, assuming all variables are non-negative.  If no such bound can be
// determined (e.g. because the expression contains a variable outside of a
// bitwise conjunction or remainder), then nil is returned.
func UpperBound(e Expr) *big.Int {
	if b := newSimplifier().bound(e); b != nil {
		return new(big.Int).Set(b)
	}
	//
	return nil
}

func (s *simplifier) bound(e Expr) *big.Int {
	if b, ok := s.bounds[e]; ok {
		return b
	}
	//
	b := s.computeBound(e)
	s.bounds[e] = b
	//
	return b
}

func (s *simplifier) computeBound(e Expr) *big.Int {
	switch e := e.(type) {
	case *Constant:
		return &e.value
	case *Variable:
		return nil
	case *Add:
		return s.combineBounds(e.args, (*big.Int).Add)
	case *Mul:
		return s.combineBounds(e.args, (*big.Int).Mul)
	case *Shift:
		if b := s.bound(e.arg); b == nil {
			return nil
		} else if e.op == SHL {
			return new(big.Int).Lsh(b, e.amount)
		} else {
			return new(big.Int).Rsh(b, e.amount)
		}
	case *Binary:
		return s.binaryBound(e)
	}
	//
	panic("unreachable")
}

func (s *simplifier) combineBounds(args []Expr, fn func(*big.Int, *big.Int, *big.Int) *big.Int) *big.Int {
	var acc *big.Int
	//
	for i, arg := range args {
		b := s.bound(arg)
		//
		switch {
		case b == nil:
			return nil
		case i == 0:
			acc = new(big.Int).Set(b)
		default:
			fn(acc, acc, b)
		}
	}
	//
	return acc
}

func (s *simplifier) binaryBound(e *Binary) *big.Int {
	var (
		lhs = s.bound(e.lhs)
		rhs = s.bound(e.rhs)
	)
	//
	switch e.op {
	case AND:
		// x & y <= min(x, y)
		switch {
		case lhs == nil:
			return rhs
		case rhs == nil || lhs.Cmp(rhs) <= 0:
			return lhs
		default:
			return rhs
		}
	case OR, XOR:
		// Both bounded by the smallest all-ones value covering either side
		if lhs == nil || rhs == nil {
			return nil
		}
		//
		return math.BigMask(uint(max(lhs.BitLen(), rhs.BitLen())))
	case DIV:
		if c, ok := e.rhs.(*Constant); ok && lhs != nil && !c.IsZero() {
			return new(big.Int).Quo(lhs, &c.value)
		}
		// Division by a (non-zero) unknown cannot increase the value.
		return lhs
	case MOD:
		// x % y <= min(x, y-1)
		if rhs == nil || rhs.Sign() == 0 {
			return lhs
		}
		//
		b := new(big.Int).Sub(rhs, one)
		//
		if lhs != nil && lhs.Cmp(b) < 0 {
			return lhs
		}
		//
		return b
	}
	//
	panic("unreachable")
}
