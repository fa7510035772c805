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
	"slices"

	"github.com/consensys/go-lil/pkg/util/collection/array"
	"github.com/consensys/go-lil/pkg/util/collection/hash"
	"github.com/consensys/go-lil/pkg/util/math"
	"github.com/consensys/go-lil/pkg/util/poly"
)

// maxExpansion limits the number of terms which can arise from distributing a
// product over several sums.  Beyond this, products are kept in factored form.
const maxExpansion = 256

var one = big.NewInt(1)

// atom wraps an expression so that it can act as a "variable" within a
// polynomial, ordered according to the canonical order.
type atom struct {
	Expr
}

// Cmp implementation for the Comparable interface.
func (p atom) Cmp(other atom) int {
	return Compare(p.Expr, other.Expr)
}

type (
	polynomial = poly.ArrayPoly[atom]
	monomial   = poly.Monomial[atom]
)

// Simplify an expression into its canonical form.  Sums and products are
// flattened, like terms are combined and constants are folded.  Arguments are
// ordered according to the canonical order, such that semantically equivalent
// expressions built in different ways often simplify to the same expression.
// Furthermore, identities which hold for non-negative integers are applied to
// eliminate shifts, divisions, remainders and bitwise operators where
// possible.  Simplification is idempotent and, since results are memoised by
// identity, runs in time proportional to the number of distinct nodes in the
// expression (rather than the size of its tree).  Structurally equal
// subexpressions of the result are shared.
func Simplify(e Expr) Expr {
	return newSimplifier().simplify(e)
}

type simplifier struct {
	// Maps expressions already encountered onto their simplified form.
	cache map[Expr]Expr
	// Interned expressions.
	table *hash.Table[interned]
	// Upper bounds determined for expressions (where nil means unbounded).
	bounds map[Expr]*big.Int
}

func newSimplifier() *simplifier {
	return &simplifier{
		make(map[Expr]Expr),
		hash.NewTable[interned](0),
		make(map[Expr]*big.Int),
	}
}

func (s *simplifier) simplify(e Expr) Expr {
	if r, ok := s.cache[e]; ok {
		return r
	}
	//
	var (
		args  = e.Args()
		nargs = make([]Expr, len(args))
	)
	//
	for i, arg := range args {
		nargs[i] = s.simplify(arg)
	}
	//
	r := s.intern(e.simplify(s, nargs))
	s.cache[e] = r
	s.cache[r] = r
	//
	return r
}

// Return the unique representative of a given expression, such that
// structurally equal expressions constructed by this simplifier are identical.
func (s *simplifier) intern(e Expr) Expr {
	return s.table.Intern(interned{e}).Expr
}

// interned wraps an expression for use within an interning table.
type interned struct {
	Expr
}

func (p interned) Equals(other interned) bool {
	return Equal(p.Expr, other.Expr)
}

func (s *simplifier) constant(val *big.Int) Expr {
	return s.intern(Const(val))
}

// ============================================================================
// Arithmetic
// ============================================================================

// Construct the sum of zero or more simplified expressions.  Every argument is
// expanded into a single polynomial, such that like terms are combined however
// the arguments happen to be factored.
func (s *simplifier) sum(args ...Expr) Expr {
	var p = poly.NewArrayPoly[atom]()
	//
	for _, arg := range args {
		for _, term := range toPoly(arg).Terms() {
			p.AddTerm(term)
		}
	}
	//
	return s.fromPoly(p)
}

// Construct the product of zero or more simplified expressions.  When some
// arguments are sums, the product can either be distributed over them or left
// in factored form.  The smaller of the two is chosen, where the distributed
// form wins ties.
func (s *simplifier) product(args ...Expr) Expr {
	var (
		coefficient = big.NewInt(1)
		atoms       []Expr
	)
	//
	for _, arg := range args {
		c, fs := factors(arg)
		coefficient.Mul(coefficient, c)
		atoms = append(atoms, fs...)
	}
	//
	if coefficient.Sign() == 0 {
		return s.constant(coefficient)
	}
	// Construct the factored form
	var alternative Expr
	//
	if array.ContainsMatching(atoms, isSum) {
		alternative = s.factored(coefficient, atoms)
		//
		if !expandable(atoms) {
			return alternative
		}
	}
	// Construct the distributed form
	result := s.fromPoly(expand(coefficient, atoms))
	//
	if alternative != nil && alternative.Size() < result.Size() {
		return alternative
	}
	//
	return result
}

// Construct the product of a coefficient and zero or more atoms, arranged in
// canonical order.
func (s *simplifier) factored(coefficient *big.Int, atoms []Expr) Expr {
	var args = slices.Clone(atoms)
	//
	slices.SortFunc(args, Compare)
	//
	if coefficient.Cmp(one) != 0 {
		args = slices.Insert(args, 0, s.constant(coefficient))
	}
	//
	return s.intern(Product(args...))
}

func (s *simplifier) shl(arg Expr, amount uint) Expr {
	if amount == 0 {
		return arg
	}
	// Left shifts are always normalised into multiplications.
	return s.product(arg, s.constant(pow2(amount)))
}

func (s *simplifier) shr(arg Expr, amount uint) Expr {
	if amount == 0 {
		return arg
	}
	//
	switch e := arg.(type) {
	case *Constant:
		return s.constant(new(big.Int).Rsh(&e.value, amount))
	case *Shift:
		if e.op == SHR {
			return s.shr(e.arg, e.amount+amount)
		}
	case *Add, *Mul:
		var (
			p       = toPoly(arg)
			divisor = pow2(amount)
		)
		// (A + R) >> k == A/2^k + (R >> k) when 2^k divides A.
		if divisible, rest := p.Partition(divisor); !divisible.IsZero() {
			return s.sum(s.fromPoly(divisible.QuoScalar(divisor)), s.shr(s.fromPoly(rest), amount))
		} else if n := commonTrailingZeros(p); n > 0 {
			return s.shr(s.fromPoly(p.QuoScalar(pow2(n))), amount-n)
		}
	}
	//
	if b := s.bound(arg); b != nil && b.BitLen() <= int(amount) {
		return s.constant(big.NewInt(0))
	}
	//
	return s.intern(Shr(arg, amount))
}

func (s *simplifier) div(lhs Expr, rhs Expr) Expr {
	if c, ok := rhs.(*Constant); ok && !c.IsZero() {
		var divisor = &c.value
		//
		if k, ok := math.BigPowerOfTwo(divisor); ok {
			return s.shr(lhs, k)
		} else if l, ok := lhs.(*Constant); ok {
			return s.constant(new(big.Int).Quo(&l.value, divisor))
		} else if lhs.Kind() == ADD || lhs.Kind() == MUL {
			p := toPoly(lhs)
			// (A + R) / d == A/d + R/d when d divides A.
			if divisible, rest := p.Partition(divisor); !divisible.IsZero() {
				return s.sum(s.fromPoly(divisible.QuoScalar(divisor)), s.div(s.fromPoly(rest), rhs))
			} else if g := commonDivisor(p, divisor); g.Cmp(one) > 0 {
				nlhs := s.fromPoly(p.QuoScalar(g))
				return s.div(nlhs, s.constant(new(big.Int).Quo(divisor, g)))
			}
		}
		//
		if b := s.bound(lhs); b != nil && b.Cmp(divisor) < 0 {
			return s.constant(big.NewInt(0))
		}
	} else if l, ok := lhs.(*Constant); ok && l.IsZero() {
		return lhs
	}
	//
	return s.intern(Div(lhs, rhs))
}

func (s *simplifier) mod(lhs Expr, rhs Expr) Expr {
	if c, ok := rhs.(*Constant); ok && !c.IsZero() {
		var divisor = &c.value
		//
		if k, ok := math.BigPowerOfTwo(divisor); ok {
			return s.and(lhs, s.constant(math.BigMask(k)))
		} else if l, ok := lhs.(*Constant); ok {
			return s.constant(new(big.Int).Rem(&l.value, divisor))
		} else if lhs.Kind() == ADD || lhs.Kind() == MUL {
			p := toPoly(lhs)
			// (A + R) % d == R % d when d divides A.
			if divisible, rest := p.Partition(divisor); !divisible.IsZero() {
				return s.mod(s.fromPoly(rest), rhs)
			} else if g := commonDivisor(p, divisor); g.Cmp(one) > 0 {
				// (g*X) % (g*d) == g * (X % d)
				nlhs := s.fromPoly(p.QuoScalar(g))
				nrhs := s.constant(new(big.Int).Quo(divisor, g))
				//
				return s.product(s.constant(g), s.mod(nlhs, nrhs))
			}
		}
		//
		if b := s.bound(lhs); b != nil && b.Cmp(divisor) < 0 {
			return lhs
		}
	} else if l, ok := lhs.(*Constant); ok && l.IsZero() {
		return lhs
	}
	//
	return s.intern(Mod(lhs, rhs))
}

// ============================================================================
// Bitwise
// ============================================================================

func (s *simplifier) and(lhs Expr, rhs Expr) Expr {
	lhs, rhs = order(lhs, rhs)
	//
	l, lok := lhs.(*Constant)
	r, rok := rhs.(*Constant)
	//
	switch {
	case lok && rok:
		return s.constant(new(big.Int).And(&l.value, &r.value))
	case rok && r.IsZero():
		return rhs
	case rok:
		// (x & c1) & c2 == x & (c1 & c2)
		if inner, ok := lhs.(*Binary); ok && inner.op == AND {
			if c, ok := inner.rhs.(*Constant); ok {
				return s.and(inner.lhs, s.constant(new(big.Int).And(&c.value, &r.value)))
			}
		}
		//
		if k, ok := math.BigIsMask(&r.value); ok {
			if b := s.bound(lhs); b != nil && b.Cmp(&r.value) <= 0 {
				return lhs
			} else if lhs.Kind() == ADD || lhs.Kind() == MUL {
				// (A + R) & (2^k-1) == R & (2^k-1) when 2^k divides A.
				if divisible, rest := toPoly(lhs).Partition(pow2(k)); !divisible.IsZero() {
					return s.and(s.fromPoly(rest), rhs)
				}
			}
		}
	case Equal(lhs, rhs) || contains(AND, lhs, rhs):
		return rhs
	case contains(AND, rhs, lhs):
		return lhs
	}
	//
	return s.intern(And(lhs, rhs))
}

func (s *simplifier) or(lhs Expr, rhs Expr) Expr {
	lhs, rhs = order(lhs, rhs)
	//
	l, lok := lhs.(*Constant)
	r, rok := rhs.(*Constant)
	//
	switch {
	case lok && rok:
		return s.constant(new(big.Int).Or(&l.value, &r.value))
	case rok && r.IsZero():
		return lhs
	case rok:
		// (x | c1) | c2 == x | (c1 | c2)
		if inner, ok := lhs.(*Binary); ok && inner.op == OR {
			if c, ok := inner.rhs.(*Constant); ok {
				return s.or(inner.lhs, s.constant(new(big.Int).Or(&c.value, &r.value)))
			}
		}
	case Equal(lhs, rhs) || contains(OR, lhs, rhs):
		return rhs
	case contains(OR, rhs, lhs):
		return lhs
	}
	//
	return s.intern(Or(lhs, rhs))
}

func (s *simplifier) xor(lhs Expr, rhs Expr) Expr {
	lhs, rhs = order(lhs, rhs)
	//
	l, lok := lhs.(*Constant)
	r, rok := rhs.(*Constant)
	//
	switch {
	case lok && rok:
		return s.constant(new(big.Int).Xor(&l.value, &r.value))
	case rok && r.IsZero():
		return lhs
	case rok:
		// (x ^ c1) ^ c2 == x ^ (c1 ^ c2)
		if inner, ok := lhs.(*Binary); ok && inner.op == XOR {
			if c, ok := inner.rhs.(*Constant); ok {
				return s.xor(inner.lhs, s.constant(new(big.Int).Xor(&c.value, &r.value)))
			}
		}
	case Equal(lhs, rhs):
		return s.constant(big.NewInt(0))
	}
	//
	return s.intern(Xor(lhs, rhs))
}

// Order the arguments of a commutative operator, such that a constant always
// comes last.
func order(lhs Expr, rhs Expr) (Expr, Expr) {
	_, lok := lhs.(*Constant)
	_, rok := rhs.(*Constant)
	//
	if (lok && !rok) || (lok == rok && Compare(lhs, rhs) > 0) {
		return rhs, lhs
	}
	//
	return lhs, rhs
}

// Check whether y has the form "x op z" or "z op x".  For an idempotent
// operator, this means "x op y" equals y.
func contains(op Kind, x Expr, y Expr) bool {
	if b, ok := y.(*Binary); ok && b.op == op {
		return Equal(b.lhs, x) || Equal(b.rhs, x)
	}
	//
	return false
}

// ============================================================================
// Polynomials
// ============================================================================

// Convert a simplified expression into a polynomial.  Products are distributed
// over any sums they contain, except where expandable forbids this.  Anything
// other than a constant, a sum or a product is treated as an opaque atom.
func toPoly(e Expr) *polynomial {
	switch e.Kind() {
	case ADD:
		var p = poly.NewArrayPoly[atom]()
		//
		for _, arg := range e.Args() {
			for _, term := range toPoly(arg).Terms() {
				p.AddTerm(term)
			}
		}
		//
		return p
	case MUL:
		if c, fs := factors(e); expandable(fs) {
			return expand(c, fs)
		}
	}
	//
	return poly.NewArrayPoly(toMonomial(e))
}

// Distribute the product of a coefficient and zero or more atoms over any sums
// amongst those atoms.
func expand(coefficient *big.Int, atoms []Expr) *polynomial {
	var p = poly.Constant[atom](coefficient)
	//
	for _, f := range atoms {
		p = p.Mul(toPoly(f))
	}
	//
	return p
}

// Determine whether a product of atoms can be distributed.  Distributing over
// a single sum never increases the number of terms, but distributing over
// several sums is limited to maxExpansion terms.  This depends only on the
// atoms themselves, so a product left in factored form remains so when
// simplified again.
func expandable(atoms []Expr) bool {
	var (
		nsums  uint
		nterms = uint(1)
	)
	//
	for _, f := range atoms {
		if isSum(f) {
			nsums++
			nterms = min(nterms*uint(len(f.Args())), maxExpansion+1)
		}
	}
	//
	return nsums <= 1 || nterms <= maxExpansion
}

func isSum(e Expr) bool {
	return e.Kind() == ADD
}

func toMonomial(e Expr) monomial {
	var (
		c, fs = factors(e)
		atoms = make([]atom, len(fs))
	)
	//
	for i, f := range fs {
		atoms[i] = atom{f}
	}
	//
	return poly.NewMonomial(c, atoms...)
}

// Convert a polynomial into an expression.  This is either the flat sum of its
// terms or, when strictly smaller, the product of its content and the sum of
// what remains.  For example, 4*m + 8*j*m + 12*k*m becomes 4*m*(1 + 2*j + 3*k).
// The choice depends only on the polynomial itself.
func (s *simplifier) fromPoly(p *polynomial) Expr {
	var flat = s.fromTerms(p)
	//
	if p.Len() < 2 {
		return flat
	}
	//
	content := p.Content()
	//
	if content.IsConstant() && content.HasUnitCoefficient() {
		return flat
	}
	//
	var atoms = []Expr{s.fromTerms(p.Quo(content))}
	//
	for _, v := range content.Vars() {
		atoms = append(atoms, v.Expr)
	}
	//
	if factored := s.factored(content.Coefficient(), atoms); factored.Size() < flat.Size() {
		return factored
	}
	//
	return flat
}

// Construct the flat sum of the terms of a polynomial.
func (s *simplifier) fromTerms(p *polynomial) Expr {
	var terms = make([]Expr, p.Len())
	//
	for i, term := range p.Terms() {
		terms[i] = s.fromMonomial(term)
	}
	//
	slices.SortFunc(terms, Compare)
	//
	switch len(terms) {
	case 0:
		return s.constant(big.NewInt(0))
	case 1:
		return terms[0]
	default:
		return s.intern(Sum(terms...))
	}
}

func (s *simplifier) fromMonomial(m monomial) Expr {
	var args []Expr
	//
	if m.IsConstant() {
		return s.constant(m.Coefficient())
	} else if !m.HasUnitCoefficient() {
		args = append(args, s.constant(m.Coefficient()))
	}
	//
	for _, v := range m.Vars() {
		args = append(args, v.Expr)
	}
	//
	if len(args) == 1 {
		return args[0]
	}
	//
	return s.intern(Product(args...))
}

// Determine the largest n such that 2^n divides every coefficient of a given
// (non-zero) polynomial.
func commonTrailingZeros(p *polynomial) uint {
	var n uint
	//
	for i, term := range p.Terms() {
		if tz := term.Coefficient().TrailingZeroBits(); i == 0 || tz < n {
			n = tz
		}
	}
	//
	return n
}

// Determine the greatest common divisor of a given divisor and every
// coefficient of a given polynomial.
func commonDivisor(p *polynomial, divisor *big.Int) *big.Int {
	var g = new(big.Int).Set(divisor)
	//
	for _, term := range p.Terms() {
		g.GCD(nil, nil, g, term.Coefficient())
	}
	//
	return g
}

func pow2(k uint) *big.Int {
	return new(big.Int).Lsh(one, k)
}
