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
package render

import (
	"fmt"
	"strings"

	"github.com/consensys/go-lil/pkg/expr"
	"github.com/consensys/go-lil/pkg/util/source/sexp"
)

// Options determines how expressions are rendered.
type Options struct {
	// Shared indicates that subexpressions occurring more than once should be
	// named and listed separately, rather than repeated in full.
	Shared bool
	// Lisp indicates expressions should be rendered as S-Expressions, rather
	// than in infix form.
	Lisp bool
	// Width gives the maximum width of any line, where zero means unlimited.
	Width uint
}

// Infix renders an expression in conventional infix form, such as "8*i + j".
// Parentheses are inserted only where required by the usual precedence of
// operators (which matches that of the expression parser).
func Infix(e expr.Expr) string {
	return newRenderer(e, false).infix(e)
}

// Lisp renders an expression as an S-Expression, such as "(+ (* 8 i) j)",
// splitting it across multiple lines when wider than a given width (where zero
// means unlimited).
func Lisp(e expr.Expr, width uint) string {
	return sexp.NewFormatter(width).Format(e.Lisp())
}

// Shared renders an expression such that every non-trivial subexpression
// occurring more than once is named.  This returns one line "tN = ..." for each
// named subexpression (in order of definition) followed by the expression
// itself.  For expressions with extensive sharing (e.g. Hilbert curves) the
// result is proportional to the number of distinct subexpressions, rather than
// the size of the expression when viewed as a tree.
func Shared(e expr.Expr) []string {
	var (
		r     = newRenderer(e, true)
		lines []string
	)
	//
	for _, node := range r.order {
		lines = append(lines, fmt.Sprintf("%s = %s", r.names[node], r.define(node)))
	}
	//
	return append(lines, r.infix(e))
}

// Line renders the outcome of instantiating an address function with a given
// set of arguments, such as "Concrete args:\tf(3, 7) = 31".
func Line(label string, args []string, e expr.Expr) string {
	return header(label, args) + Infix(e)
}

// Printer renders the outcome of instantiating an address function according
// to a given set of options.
type Printer struct {
	options Options
}

// NewPrinter constructs a printer for a given set of options.
func NewPrinter(options Options) *Printer {
	return &Printer{options}
}

// Print the outcome of instantiating an address function with a given set of
// arguments, producing one or more lines of text.  Any named subexpressions
// are listed (indented) after the main line.
func (p *Printer) Print(label string, args []string, e expr.Expr) []string {
	if !p.options.Lisp && p.options.Width == 0 {
		return p.printInfix(label, args, e)
	}
	//
	var (
		r     = newRenderer(e, p.options.Shared)
		head  = header(label, args)
		lines = p.format(head, r.body(e, p.options.Lisp, p.width(len(head))))
	)
	//
	for _, node := range r.order {
		name := fmt.Sprintf("\t%s = ", r.names[node])
		body := r.body(node, p.options.Lisp, p.width(len(name)+tabWidth-1))
		//
		lines = append(lines, p.format(name, body)...)
	}
	//
	return lines
}

// Print an expression in infix form, without any wrapping.
func (p *Printer) printInfix(label string, args []string, e expr.Expr) []string {
	if !p.options.Shared {
		return []string{Line(label, args, e)}
	}
	//
	var (
		defs  = Shared(e)
		n     = len(defs) - 1
		lines = []string{header(label, args) + defs[n]}
	)
	//
	for _, def := range defs[:n] {
		lines = append(lines, "\t"+def)
	}
	//
	return lines
}

// Width available for a body following a given prefix.
func (p *Printer) width(prefix int) uint {
	if p.options.Width == 0 {
		return 0
	}
	//
	return uint(max(int(p.options.Width)-prefix, 1))
}

// Format a body of text following a given prefix.  Lisp bodies are already
// split into lines, whilst infix bodies are wrapped as necessary.
func (p *Printer) format(prefix string, body string) []string {
	if p.options.Lisp {
		lines := strings.Split(body, "\n")
		lines[0] = prefix + lines[0]
		//
		return lines
	}
	//
	return Wrap(prefix+body, p.options.Width)
}

func header(label string, args []string) string {
	return fmt.Sprintf("%s args:\tf(%s) = ", label, strings.Join(args, ", "))
}

// Assumed width of a tab character when wrapping.
const tabWidth = 8

// Wrap a line of text so that (where possible) no line exceeds a given width,
// where zero means unlimited.  Lines are broken only at spaces, and
// continuation lines are indented.
func Wrap(line string, width uint) []string {
	const indent = "    "
	//
	var (
		lines   []string
		current strings.Builder
	)
	//
	if width == 0 || uint(len(line)) <= width {
		return []string{line}
	}
	//
	for i, word := range strings.Split(line, " ") {
		if i > 0 && uint(current.Len()+1+len(word)) > width && strings.TrimSpace(current.String()) != "" {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(indent)
		} else if i > 0 {
			current.WriteString(" ")
		}
		//
		current.WriteString(word)
	}
	//
	return append(lines, current.String())
}
