// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import "go.astrophena.name/pym/internal/py/ast"

// separator writes sep between the items of one list: call arguments,
// tuple elements, import names, parameters. Every item but the first is
// preceded by sep. A separator must not be shared between lists.
type separator struct {
	r       *renderer
	sep     string
	started bool
}

// commas returns a separator for a comma-separated list.
func (r *renderer) commas() *separator {
	return &separator{r: r, sep: ", "}
}

func (s *separator) prefix() {
	if s.started {
		s.r.write(s.sep)
		return
	}
	s.started = true
}

// dispatch renders n as the next item.
func (s *separator) dispatch(n ast.Node) {
	s.prefix()
	s.r.dispatch(n)
}

// expr renders e as the next item, parenthesized if it binds looser than
// prec.
func (s *separator) expr(e ast.Expr, prec int) {
	s.prefix()
	s.r.expr(e, prec)
}

// write starts the next item with raw text, such as the * of *args.
func (s *separator) write(text string) {
	s.prefix()
	s.r.write(text)
}
