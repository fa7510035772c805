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
	"slices"

	"github.com/consensys/go-lil/pkg/util/source"
	"github.com/consensys/go-lil/pkg/util/source/lex"
)

// Parse a given input string into an integer expression, such as "i*3" or
// "(j >> 2) & 3".  The environment determines the set of permitted variable
// names.  Operators follow the usual precedence, from loosest to tightest:
// "|", "^", "&", "<<" / ">>", "+", then "*" / "/" / "%".  Shift amounts must be
// constants.
func Parse[T Term[T]](input string, environment func(string) bool) (T, []source.SyntaxError) {
	var (
		empty   T
		srcfile = source.NewSourceFile("expr", []byte(input))
	)
	// Lex as many tokens as possible
	tokens, err := lex.Tokenise(srcfile, WHITESPACE, rules...)
	if err != nil {
		return empty, []source.SyntaxError{*err}
	}
	//
	parser := &Parser[T]{environment, srcfile, tokens, 0}
	// Parse term
	p, errs := parser.parseBinary(0)
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return empty, parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	// All good!
	return p, errs
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// NUMBER signals an integer number
const NUMBER uint = 4

// IDENTIFIER signals a variable.
const IDENTIFIER uint = 5

// ADD represents integer addition
const ADD uint = 6

// MUL represents integer multiplication
const MUL uint = 7

// DIV represents integer division
const DIV uint = 8

// REM represents integer remainder
const REM uint = 9

// SHL represents a left shift
const SHL uint = 10

// SHR represents a right shift
const SHR uint = 11

// AND represents bitwise conjunction
const AND uint = 12

// OR represents bitwise disjunction
const OR uint = 13

// XOR represents bitwise exclusive-or
const XOR uint = 14

// PRECEDENCE groups binary operators by binding strength, starting from the
// loosest.
var PRECEDENCE = [][]uint{{OR}, {XOR}, {AND}, {SHL, SHR}, {ADD}, {MUL, DIV, REM}}

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t')))

// Rule for describing numbers
var number lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.Sequence(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('%'), REM),
	lex.Rule(lex.Unit('<', '<'), SHL),
	lex.Rule(lex.Unit('>', '>'), SHR),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('^'), XOR),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parser provides a general-purpose parser for integer expressions.
type Parser[T Term[T]] struct {
	environment func(string) bool
	srcfile     *source.File
	tokens      []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser[T]) Done() bool {
	return p.index+1 >= len(p.tokens)
}

// Parse a sequence of binary operators at a given precedence level, which are
// left associative.
func (p *Parser[T]) parseBinary(level int) (T, []source.SyntaxError) {
	if level == len(PRECEDENCE) {
		return p.parseUnitTerm()
	}
	//
	lhs, errs := p.parseBinary(level + 1)
	//
	for len(errs) == 0 && p.follows(PRECEDENCE[level]...) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs T
		)
		// Shifts are handled separately, since they require constants.
		if op.Kind == SHL || op.Kind == SHR {
			lhs, errs = p.parseShift(op.Kind, lhs)
			continue
		}
		//
		if rhs, errs = p.parseBinary(level + 1); len(errs) == 0 {
			lhs = apply(op.Kind, lhs, rhs)
		}
	}
	//
	return lhs, errs
}

func (p *Parser[T]) parseShift(kind uint, lhs T) (T, []source.SyntaxError) {
	var token = p.lookahead()
	//
	if token.Kind != NUMBER {
		return lhs, p.syntaxErrors(token, "shift amount must be a constant")
	}
	//
	p.expect(NUMBER)
	//
	amount := p.number(token)
	if !amount.IsUint64() || amount.Uint64() > 4096 {
		return lhs, p.syntaxErrors(token, "shift amount too large")
	}
	//
	if kind == SHL {
		return lhs.Shl(uint(amount.Uint64())), nil
	}
	//
	return lhs.Shr(uint(amount.Uint64())), nil
}

func apply[T Term[T]](kind uint, lhs T, rhs T) T {
	switch kind {
	case ADD:
		return lhs.Add(rhs)
	case MUL:
		return lhs.Mul(rhs)
	case DIV:
		return lhs.Div(rhs)
	case REM:
		return lhs.Mod(rhs)
	case AND:
		return lhs.And(rhs)
	case OR:
		return lhs.Or(rhs)
	case XOR:
		return lhs.Xor(rhs)
	}
	//
	panic("unreachable")
}

func (p *Parser[T]) parseUnitTerm() (T, []source.SyntaxError) {
	var (
		empty T
		token = p.lookahead()
	)
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedTerm()
	case IDENTIFIER:
		return p.parseVariable()
	case NUMBER:
		return p.parseNumber(), nil
	}
	//
	return empty, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser[T]) parseBracketedTerm() (T, []source.SyntaxError) {
	var empty T
	//
	p.expect(LBRACE)
	//
	term, errs := p.parseBinary(0)
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return empty, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return term, errs
}

func (p *Parser[T]) parseVariable() (T, []source.SyntaxError) {
	var variable T
	//
	id := p.expect(IDENTIFIER)
	name := p.srcfile.Text(id.Span)
	// Check variable valid
	if p.environment(name) {
		return variable.Variable(name), nil
	}
	// Nope
	return variable, p.syntaxErrors(id, "unknown variable")
}

func (p *Parser[T]) parseNumber() T {
	var num T
	//
	id := p.expect(NUMBER)
	//
	return num.Number(p.number(id))
}

// Get the number represented by the given token.
func (p *Parser[T]) number(token lex.Token) big.Int {
	var number big.Int
	//
	number.SetString(p.srcfile.Text(token.Span), 10)
	//
	return number
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser[T]) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser[T]) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser[T]) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser[T]) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser[T]) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
