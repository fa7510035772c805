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
package termio

import (
	"os"

	"golang.org/x/term"
)

// Terminal describes an output stream which may (or may not) be attached to a
// terminal.  When it is not, no escapes are used and lines are never wrapped.
type Terminal struct {
	// file descriptor for output.
	fd int
	// indicates whether output is a terminal.
	tty bool
}

// NewTerminal constructs a terminal for the standard output stream.
func NewTerminal() *Terminal {
	fd := int(os.Stdout.Fd())
	//
	return &Terminal{fd, term.IsTerminal(fd)}
}

// IsTerminal determines whether output is attached to a terminal.
func (t *Terminal) IsTerminal() bool {
	return t.tty
}

// Width returns the width of the terminal, or zero if this is unknown (e.g.
// because output is not a terminal).
func (t *Terminal) Width() uint {
	if !t.tty {
		return 0
	}
	//
	w, _, err := term.GetSize(t.fd)
	if err != nil || w <= 0 {
		return 0
	}
	//
	return uint(w)
}

// Highlight some text with a given escape, provided output is a terminal.
func (t *Terminal) Highlight(text string, escape AnsiEscape) string {
	if !t.tty {
		return text
	}
	//
	return escape.Apply(text)
}
