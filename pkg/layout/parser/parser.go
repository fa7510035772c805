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
	"strconv"

	"github.com/consensys/go-lil/pkg/layout"
	"github.com/consensys/go-lil/pkg/util/source"
	"github.com/consensys/go-lil/pkg/util/source/lex"
)

// Parse a layout descriptor from a given source file.  Descriptors have the
// form "LAYOUT(n, m, k)" where LAYOUT names the kind of layout (or any prefix of
// that name), n and m are the numbers of rows and columns and k is either the
// element size or a nested descriptor.  Extents and element sizes are either
// positive integers or parameter names.  The resulting descriptor has not been
// validated.
func Parse(srcfile *source.File) (*layout.Descriptor, []source.SyntaxError) {
	// Lex as many tokens as possible
	tokens, err := lex.Tokenise(srcfile, WHITESPACE, rules...)
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	parser := &Parser{srcfile, tokens, 0}
	// Parse descriptor
	d, errs := parser.parseDescriptor()
	// Check all parsed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	return d, errs
}

// ParseString parses a layout descriptor from a given string.
func ParseString(input string) (*layout.Descriptor, []source.SyntaxError) {
	return Parse(source.NewSourceFile("descriptor", []byte(input)))
}

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "left brace"
const LBRACE uint = 2

// RBRACE signals "right brace"
const RBRACE uint = 3

// COMMA signals a comma
const COMMA uint = 4

// NUMBER signals an integer number
const NUMBER uint = 5

// IDENTIFIER signals a layout or parameter name.
const IDENTIFIER uint = 6

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n')))

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
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parser is a recursive descent parser for layout descriptors.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseDescriptor() (*layout.Descriptor, []source.SyntaxError) {
	var token = p.lookahead()
	//
	if token.Kind != IDENTIFIER {
		return nil, p.syntaxErrors(token, "expected layout")
	}
	//
	p.expect(IDENTIFIER)
	//
	tag, err := layout.TagOf(p.srcfile.Text(token.Span))
	if err != nil {
		return nil, p.syntaxErrors(token, err.Error())
	} else if errs := p.require(LBRACE); len(errs) > 0 {
		return nil, errs
	}
	// Parse extents
	rows, errs := p.parseExtent()
	if len(errs) > 0 {
		return nil, errs
	} else if errs = p.require(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	cols, errs := p.parseExtent()
	if len(errs) > 0 {
		return nil, errs
	} else if errs = p.require(COMMA); len(errs) > 0 {
		return nil, errs
	}
	//
	element, errs := p.parseElement()
	if len(errs) > 0 {
		return nil, errs
	} else if errs = p.require(RBRACE); len(errs) > 0 {
		return nil, errs
	}
	//
	return layout.Make(tag, rows, cols, element), nil
}

func (p *Parser) parseElement() (layout.Element, []source.SyntaxError) {
	// A name followed by a brace must be a nested layout
	if p.lookahead().Kind == IDENTIFIER && p.peek(1).Kind == LBRACE {
		d, errs := p.parseDescriptor()
		if len(errs) > 0 {
			return layout.Element{}, errs
		}
		//
		return layout.Nested(d), nil
	}
	//
	size, errs := p.parseExtent()
	//
	return layout.FixedSize(size), errs
}

func (p *Parser) parseExtent() (layout.Extent, []source.SyntaxError) {
	var token = p.lookahead()
	//
	switch token.Kind {
	case NUMBER:
		p.expect(NUMBER)
		//
		val, err := strconv.ParseUint(p.srcfile.Text(token.Span), 10, 64)
		if err != nil {
			return layout.Extent{}, p.syntaxErrors(token, "number too large")
		}
		//
		return layout.Fixed(val), nil
	case IDENTIFIER:
		p.expect(IDENTIFIER)
		//
		return layout.Param(p.srcfile.Text(token.Span)), nil
	}
	//
	return layout.Extent{}, p.syntaxErrors(token, "expected extent")
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Peek returns the nth token after the next token, or the last token (i.e. end
// of file) if there are not that many.
func (p *Parser) peek(n int) lex.Token {
	return p.tokens[min(p.index+n, len(p.tokens)-1)]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

// Require a token of a given kind next, reporting an error otherwise.
func (p *Parser) require(kind uint) []source.SyntaxError {
	var token = p.lookahead()
	//
	if token.Kind == kind {
		p.index++
		return nil
	}
	//
	return p.syntaxErrors(token, "expected "+describe(kind))
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}

func describe(kind uint) string {
	switch kind {
	case LBRACE:
		return "'('"
	case RBRACE:
		return "')'"
	case COMMA:
		return "','"
	default:
		return "token"
	}
}
