// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package indent tracks block nesting depth while rendering source text.
package indent

import (
	"errors"
	"strings"
)

// DefaultUnit is the indentation added per nesting level.
const DefaultUnit = "    "

// ErrUnderflow is returned by [Indenter.Dedent] when there is no level left
// to close.
var ErrUnderflow = errors.New("indent: dedent without matching indent")

// Indenter tracks the current nesting depth. The zero value indents with
// [DefaultUnit].
type Indenter struct {
	unit  string
	depth int
}

// New returns an Indenter that adds unit per level. An empty unit means
// [DefaultUnit].
func New(unit string) *Indenter {
	return &Indenter{unit: unit}
}

// Indent opens a nesting level.
func (i *Indenter) Indent() { i.depth++ }

// Dedent closes the innermost nesting level.
func (i *Indenter) Dedent() error {
	if i.depth == 0 {
		return ErrUnderflow
	}
	i.depth--
	return nil
}

// Depth returns the number of open levels.
func (i *Indenter) Depth() int { return i.depth }

// Render prefixes text with the indentation of the current depth. Empty
// text is returned unchanged.
func (i *Indenter) Render(text string) string {
	if text == "" {
		return text
	}
	return i.Prefix() + text
}

// Prefix returns the indentation of the current depth.
func (i *Indenter) Prefix() string {
	return strings.Repeat(i.Unit(), i.depth)
}

// Unit returns the indentation added per level.
func (i *Indenter) Unit() string {
	if i.unit == "" {
		return DefaultUnit
	}
	return i.unit
}
