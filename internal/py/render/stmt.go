// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import (
	"strings"

	"go.astrophena.name/pym/internal/py/ast"
)

func (r *renderer) module(m *ast.Module) {
	body := m.Body
	if doc, ok := ast.Docstring(body); ok {
		r.writeLine(docstring(doc, ""))
		body = body[1:]
	}
	r.renderBody(body)
}

// decorators writes one decorator per line. The definition header that
// follows continues the statement.
func (r *renderer) decorators(decorators []ast.Expr) {
	for _, d := range decorators {
		r.write("@")
		r.expr(d, precTest)
		r.writeLine("")
		r.continued = true
	}
}

func (r *renderer) functionDef(n *ast.FunctionDef) {
	r.decorators(n.Decorators)
	r.write("def " + n.Name + "(")
	if n.Args != nil {
		r.dispatch(n.Args)
	}
	r.write(")")
	r.renderSuite(n.Body)
}

func (r *renderer) classDef(n *ast.ClassDef) {
	r.decorators(n.Decorators)
	r.write("class " + n.Name)
	if len(n.Bases) > 0 {
		r.write("(")
		r.exprs(n.Bases)
		r.write(")")
	}
	r.renderSuite(n.Body)
}

func (r *renderer) returnStmt(n *ast.Return) {
	r.write("return")
	if n.Value != nil {
		r.write(" ")
		r.expr(n.Value, precTest)
	}
}

func (r *renderer) deleteStmt(n *ast.Delete) {
	if len(n.Targets) == 0 {
		r.unsupported(n, "no targets")
	}
	r.write("del ")
	r.exprs(n.Targets)
}

// assign writes every target followed by " = ", then the value once, so
// chained assignments keep their shape.
func (r *renderer) assign(n *ast.Assign) {
	if len(n.Targets) == 0 {
		r.unsupported(n, "no targets")
	}
	for _, target := range n.Targets {
		r.expr(target, precTuple)
		r.write(" = ")
	}
	r.expr(n.Value, precYield)
}

func (r *renderer) augAssign(n *ast.AugAssign) {
	op, ok := binOps[n.Op]
	if !ok {
		r.unsupported(n, "unknown operator %v", n.Op)
	}
	r.expr(n.Target, precTuple)
	r.write(" " + op + "= ")
	r.expr(n.Value, precYield)
}

func (r *renderer) print(n *ast.Print) {
	r.write("print")
	if n.Dest == nil && len(n.Values) == 0 {
		return
	}
	r.write(" ")
	commas := r.commas()
	if n.Dest != nil {
		commas.write(">> ")
		r.expr(n.Dest, precTest)
	}
	for _, v := range n.Values {
		commas.expr(v, precTest)
	}
	if !n.NL && len(n.Values) > 0 {
		r.write(",")
	}
}

func (r *renderer) forStmt(n *ast.For) {
	r.write("for ")
	r.expr(n.Target, precTuple)
	r.write(" in ")
	r.expr(n.Iter, precTest)
	r.renderBlock(n.Body)
	r.orelse(n.Orelse)
}

func (r *renderer) while(n *ast.While) {
	r.write("while ")
	r.expr(n.Test, precTest)
	r.renderBlock(n.Body)
	r.orelse(n.Orelse)
}

func (r *renderer) orelse(body []ast.Stmt) {
	if len(body) == 0 {
		return
	}
	r.clause("else")
	r.renderBlock(body)
}

// ifStmt flattens an else branch that consists of a single if statement
// into an elif clause, iteratively, so elif chains stay at one level.
func (r *renderer) ifStmt(n *ast.If) {
	r.write("if ")
	r.expr(n.Test, precTest)
	r.renderBlock(n.Body)
	for steps := 0; len(n.Orelse) == 1; steps++ {
		elif, ok := n.Orelse[0].(*ast.If)
		if !ok {
			break
		}
		if steps >= r.maxDepth {
			r.fail(ErrTooDeep)
		}
		n = elif
		r.clause("elif ")
		r.expr(n.Test, precTest)
		r.renderBlock(n.Body)
	}
	r.orelse(n.Orelse)
}

func (r *renderer) with(n *ast.With) {
	r.write("with ")
	r.expr(n.ContextExpr, precTest)
	if n.OptionalVars != nil {
		r.write(" as ")
		r.expr(n.OptionalVars, precTest)
	}
	r.renderBlock(n.Body)
}

func (r *renderer) raise(n *ast.Raise) {
	if n.Type == nil && (n.Inst != nil || n.Tback != nil) {
		r.unsupported(n, "instance or traceback without type")
	}
	if n.Inst == nil && n.Tback != nil {
		r.unsupported(n, "traceback without instance")
	}
	r.write("raise")
	if n.Type != nil {
		r.write(" ")
		r.expr(n.Type, precTest)
	}
	if n.Inst != nil {
		r.write(", ")
		r.expr(n.Inst, precTest)
	}
	if n.Tback != nil {
		r.write(", ")
		r.expr(n.Tback, precTest)
	}
}

func (r *renderer) tryExcept(n *ast.TryExcept) {
	r.write("try")
	r.renderBlock(n.Body)
	for _, h := range n.Handlers {
		r.dispatch(h)
	}
	r.orelse(n.Orelse)
}

func (r *renderer) exceptHandler(n *ast.ExceptHandler) {
	if n.Type == nil && n.Name != nil {
		r.unsupported(n, "name without type")
	}
	r.clause("except")
	if n.Type != nil {
		r.write(" ")
		r.expr(n.Type, precTest)
	}
	if n.Name != nil {
		r.write(" as ")
		r.expr(n.Name, precTest)
	}
	r.renderBlock(n.Body)
}

// tryFinally merges a body made of a single try/except into one
// try/except/finally statement.
func (r *renderer) tryFinally(n *ast.TryFinally) {
	if te, ok := singleTryExcept(n.Body); ok {
		r.tryExcept(te)
	} else {
		r.write("try")
		r.renderBlock(n.Body)
	}
	r.clause("finally")
	r.renderBlock(n.Finalbody)
}

func singleTryExcept(body []ast.Stmt) (*ast.TryExcept, bool) {
	if len(body) != 1 {
		return nil, false
	}
	te, ok := body[0].(*ast.TryExcept)
	if !ok || te == nil || len(te.Handlers) == 0 {
		return nil, false
	}
	return te, true
}

func (r *renderer) assert(n *ast.Assert) {
	r.write("assert ")
	r.expr(n.Test, precTest)
	if n.Msg != nil {
		r.write(", ")
		r.expr(n.Msg, precTest)
	}
}

func (r *renderer) importStmt(n *ast.Import) {
	if len(n.Names) == 0 {
		r.unsupported(n, "no names")
	}
	r.write("import ")
	commas := r.commas()
	for _, name := range n.Names {
		commas.dispatch(name)
	}
}

// importFrom records __future__ imports on the side.
func (r *renderer) importFrom(n *ast.ImportFrom) {
	if len(n.Names) == 0 {
		r.unsupported(n, "no names")
	}
	if n.Module == "" && n.Level == 0 {
		r.unsupported(n, "no module")
	}
	if n.Module == "__future__" {
		for _, name := range n.Names {
			if name != nil {
				r.future = append(r.future, name.Name)
			}
		}
	}
	r.write("from ")
	r.write(strings.Repeat(".", n.Level))
	r.write(n.Module)
	r.write(" import ")
	commas := r.commas()
	for _, name := range n.Names {
		commas.dispatch(name)
	}
}

func (r *renderer) load(n *ast.LoadStmt) {
	r.write("load(")
	commas := r.commas()
	commas.write(quote(n.Module))
	for _, name := range n.Names {
		if name == nil {
			r.fail(&UnsupportedNodeError{})
		}
		if name.AsName != "" && name.AsName != name.Name {
			commas.write(name.AsName + "=" + quote(name.Name))
			continue
		}
		commas.write(quote(name.Name))
	}
	r.write(")")
}
