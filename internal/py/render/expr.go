// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package render

import "go.astrophena.name/pym/internal/py/ast"

// expr renders e, in parentheses if it binds looser than prec.
func (r *renderer) expr(e ast.Expr, prec int) {
	if isNil(e) {
		r.fail(&UnsupportedNodeError{})
	}
	if precedence(e) < prec {
		r.write("(")
		r.dispatch(e)
		r.write(")")
		return
	}
	r.dispatch(e)
}

// exprs renders a comma-separated list of expressions.
func (r *renderer) exprs(list []ast.Expr) {
	commas := r.commas()
	for _, e := range list {
		commas.expr(e, precTest)
	}
}

func (r *renderer) boolOp(n *ast.BoolOp) {
	op, ok := boolOps[n.Op]
	if !ok {
		r.unsupported(n, "unknown operator %v", n.Op)
	}
	if len(n.Values) < 2 {
		r.unsupported(n, "%d operands", len(n.Values))
	}
	s := &separator{r: r, sep: " " + op + " "}
	for _, v := range n.Values {
		s.expr(v, precedence(n)+1)
	}
}

func (r *renderer) binOp(n *ast.BinOp) {
	op, ok := binOps[n.Op]
	if !ok {
		r.unsupported(n, "unknown operator %v", n.Op)
	}
	// Left-associative: the right operand needs to bind tighter. Power is
	// right-associative and takes a primary on the left and a unary
	// expression on the right.
	prec := binOpPrec[n.Op]
	left, right := prec, prec+1
	if n.Op == ast.Pow {
		left, right = precAtom, precFactor
	}
	r.expr(n.Left, left)
	r.write(" " + op + " ")
	r.expr(n.Right, right)
}

// unaryOp always parenthesizes a number negated with unary minus, so the
// operation does not collapse into a negative literal.
func (r *renderer) unaryOp(n *ast.UnaryOp) {
	op, ok := unaryOps[n.Op]
	if !ok {
		r.unsupported(n, "unknown operator %v", n.Op)
	}
	r.write(op + " ")
	if _, isNum := n.Operand.(*ast.Num); isNum && n.Op == ast.USub {
		r.write("(")
		r.dispatch(n.Operand)
		r.write(")")
		return
	}
	r.expr(n.Operand, precedence(n))
}

func (r *renderer) lambda(n *ast.Lambda) {
	r.write("lambda")
	if n.Args != nil && !noArguments(n.Args) {
		r.write(" ")
		r.dispatch(n.Args)
	}
	r.write(": ")
	r.expr(n.Body, precTest)
}

func noArguments(a *ast.Arguments) bool {
	return len(a.Args) == 0 && a.Vararg == "" && len(a.KwOnly) == 0 && a.Kwarg == ""
}

func (r *renderer) ifExp(n *ast.IfExp) {
	r.expr(n.Body, precOr)
	r.write(" if ")
	r.expr(n.Test, precOr)
	r.write(" else ")
	r.expr(n.Orelse, precTest)
}

func (r *renderer) dict(n *ast.Dict) {
	if len(n.Keys) != len(n.Values) {
		r.unsupported(n, "%d keys and %d values", len(n.Keys), len(n.Values))
	}
	r.write("{")
	commas := r.commas()
	for i, k := range n.Keys {
		commas.expr(k, precTest)
		r.write(": ")
		r.expr(n.Values[i], precTest)
	}
	r.write("}")
}

// set renders an empty set as a call, since {} is a dict.
func (r *renderer) set(n *ast.Set) {
	if len(n.Elts) == 0 {
		r.write("set()")
		return
	}
	r.write("{")
	r.exprs(n.Elts)
	r.write("}")
}

func (r *renderer) comprehension(n ast.Expr, open string, elt ast.Expr, gens []*ast.Comprehension, close string) {
	if len(gens) == 0 {
		r.unsupported(n, "comprehension without generators")
	}
	r.write(open)
	r.expr(elt, precTest)
	r.generators(gens)
	r.write(close)
}

func (r *renderer) dictComp(n *ast.DictComp) {
	if len(n.Generators) == 0 {
		r.unsupported(n, "comprehension without generators")
	}
	r.write("{")
	r.expr(n.Key, precTest)
	r.write(": ")
	r.expr(n.Value, precTest)
	r.generators(n.Generators)
	r.write("}")
}

func (r *renderer) generators(gens []*ast.Comprehension) {
	for _, g := range gens {
		r.dispatch(g)
	}
}

func (r *renderer) generator(n *ast.Comprehension) {
	r.write(" for ")
	r.expr(n.Target, precTuple)
	r.write(" in ")
	r.expr(n.Iter, precOr)
	for _, cond := range n.Ifs {
		r.write(" if ")
		r.expr(cond, precOr)
	}
}

func (r *renderer) yield(n *ast.Yield) {
	r.write("yield")
	if n.Value != nil {
		r.write(" ")
		r.expr(n.Value, precTest)
	}
}

// compare renders a comparison chain left to right.
func (r *renderer) compare(n *ast.Compare) {
	if len(n.Ops) == 0 || len(n.Ops) != len(n.Comparators) {
		r.unsupported(n, "%d operators and %d comparators", len(n.Ops), len(n.Comparators))
	}
	r.expr(n.Left, precBitOr)
	for i, kind := range n.Ops {
		op, ok := cmpOps[kind]
		if !ok {
			r.unsupported(n, "unknown operator %v", kind)
		}
		r.write(" " + op + " ")
		r.expr(n.Comparators[i], precBitOr)
	}
}

func (r *renderer) call(n *ast.Call) {
	r.expr(n.Func, precAtom)
	r.write("(")
	commas := r.commas()
	for _, arg := range n.Args {
		commas.expr(arg, precTest)
	}
	for _, kw := range n.Keywords {
		commas.dispatch(kw)
	}
	if n.Starargs != nil {
		commas.write("*")
		r.expr(n.Starargs, precTest)
	}
	if n.Kwargs != nil {
		commas.write("**")
		r.expr(n.Kwargs, precTest)
	}
	r.write(")")
}

func (r *renderer) num(n *ast.Num) {
	s, ok := formatNum(n.Value)
	if !ok {
		r.unsupported(n, "value of type %T", n.Value)
	}
	r.write(s)
}

// attribute separates an integer receiver from the dot with a space, since
// 1.attr would scan as a float.
func (r *renderer) attribute(n *ast.Attribute) {
	r.expr(n.Value, precAtom)
	if num, ok := n.Value.(*ast.Num); ok && isInteger(num.Value) && !isNegative(num.Value) {
		r.write(" ")
	}
	r.write("." + n.Attr)
}

func (r *renderer) subscript(n *ast.Subscript) {
	r.expr(n.Value, precAtom)
	r.write("[")
	r.dispatch(n.Slice)
	r.write("]")
}

func (r *renderer) slice(n *ast.Slice) {
	if n.Lower != nil {
		r.expr(n.Lower, precTest)
	}
	r.write(":")
	if n.Upper != nil {
		r.expr(n.Upper, precTest)
	}
	if n.Step != nil {
		r.write(":")
		r.expr(n.Step, precTest)
	}
}

// tuple parenthesizes tuples that produce a value, and assignment targets
// with fewer than two elements. A single element always keeps its trailing
// comma.
func (r *renderer) tuple(n *ast.Tuple) {
	paren := n.Ctx == ast.Load || len(n.Elts) <= 1
	if paren {
		r.write("(")
	}
	if len(n.Elts) == 1 {
		r.expr(n.Elts[0], precTest)
		r.write(",")
	} else {
		r.exprs(n.Elts)
	}
	if paren {
		r.write(")")
	}
}

// arguments renders a parameter list: plain parameters, parameters with
// defaults, *args (or a bare * before keyword-only parameters),
// keyword-only parameters and **kwargs.
func (r *renderer) arguments(n *ast.Arguments) {
	plain := len(n.Args) - len(n.Defaults)
	if plain < 0 {
		r.unsupported(n, "%d defaults for %d parameters", len(n.Defaults), len(n.Args))
	}
	if len(n.KwDefaults) > len(n.KwOnly) {
		r.unsupported(n, "%d keyword defaults for %d keyword-only parameters", len(n.KwDefaults), len(n.KwOnly))
	}

	commas := r.commas()
	for i, arg := range n.Args {
		commas.expr(arg, precTest)
		if i >= plain {
			r.write("=")
			r.expr(n.Defaults[i-plain], precTest)
		}
	}
	if n.Vararg != "" {
		commas.write("*" + n.Vararg)
	} else if len(n.KwOnly) > 0 {
		commas.write("*")
	}
	for i, arg := range n.KwOnly {
		commas.expr(arg, precTest)
		if i < len(n.KwDefaults) && n.KwDefaults[i] != nil {
			r.write("=")
			r.expr(n.KwDefaults[i], precTest)
		}
	}
	if n.Kwarg != "" {
		commas.write("**" + n.Kwarg)
	}
}
