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
package sexp

import "strings"

// Formatter lays out S-Expressions so that, where possible, no line exceeds a
// given width.  Lists which fit on the current line are written as-is.
// Otherwise, the head of the list remains on the opening line and each
// remaining element starts a new (further indented) line:
//
//	(+
//	   (* 8 i)
//	   j)
type Formatter struct {
	// Maximum desired width
	maxWidth uint
}

// NewFormatter constructs a new formatter which aims to fit its output within a
// given width.  A width of zero means unlimited.
func NewFormatter(width uint) *Formatter {
	return &Formatter{width}
}

// Format a given S-Expression.
func (p *Formatter) Format(sexp SExp) string {
	var text formattedText
	//
	p.format(sexp, &text)
	//
	return text.String()
}

func (p *Formatter) format(sexp SExp, text *formattedText) {
	var flat = sexp.String()
	//
	switch l := sexp.(type) {
	case *List:
		if p.maxWidth == 0 || text.lineWidth()+uint(len(flat)) <= p.maxWidth || l.Len() == 0 {
			text.writeString(flat)
			return
		}
		//
		text.writeString("(")
		p.format(l.Get(0), text)
		text.indent++
		//
		for i := 1; i < l.Len(); i++ {
			text.newLine()
			p.format(l.Get(i), text)
		}
		//
		text.indent--
		text.writeString(")")
	default:
		text.writeString(flat)
	}
}

// formattedText accumulates lines of text at a given indentation level.
type formattedText struct {
	// Current indent level
	indent int
	// Lines being written
	lines []string
}

func (p *formattedText) String() string {
	return strings.Join(p.lines, "\n")
}

// NewLine starts a new line at the current indentation.
func (p *formattedText) newLine() {
	p.lines = append(p.lines, strings.Repeat("   ", p.indent))
}

// LineWidth returns the width of the current line.
func (p *formattedText) lineWidth() uint {
	if n := len(p.lines); n != 0 {
		return uint(len(p.lines[n-1]))
	}
	//
	return 0
}

// WriteString writes a string into the current line of this formatted text
// block.
func (p *formattedText) writeString(str string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, str)
	} else {
		p.lines[len(p.lines)-1] += str
	}
}
