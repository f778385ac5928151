// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package parse

import (
	"errors"
	"fmt"
	"math/big"

	"go.astrophena.name/pym/internal/py/ast"

	"go.starlark.net/syntax"
)

// converter maps go.starlark.net/syntax trees to ast trees, collecting
// errors for constructs that have no ast form.
type converter struct {
	errs []error
}

func (c *converter) errorf(n syntax.Node, format string, args ...any) {
	start, _ := n.Span()
	c.errs = append(c.errs, &Error{
		Filename: start.Filename(),
		Line:     int(start.Line),
		Col:      int(start.Col),
		Msg:      fmt.Sprintf(format, args...),
	})
}

func (c *converter) err() error {
	switch len(c.errs) {
	case 0:
		return nil
	case 1:
		return c.errs[0]
	}
	return errors.Join(c.errs...)
}

// Statements.

func (c *converter) stmts(list []syntax.Stmt) []ast.Stmt {
	var out []ast.Stmt
	for _, s := range list {
		if st := c.stmt(s); st != nil {
			out = append(out, st)
		}
	}
	return out
}

func (c *converter) stmt(s syntax.Stmt) ast.Stmt {
	switch s := s.(type) {
	case *syntax.AssignStmt:
		if s.Op == syntax.EQ {
			return &ast.Assign{Targets: []ast.Expr{c.target(s.LHS)}, Value: c.expr(s.RHS)}
		}
		op, ok := augOps[s.Op]
		if !ok {
			c.errorf(s, "unsupported assignment operator %s", s.Op)
			return nil
		}
		return &ast.AugAssign{Target: c.target(s.LHS), Op: op, Value: c.expr(s.RHS)}
	case *syntax.BranchStmt:
		switch s.Token {
		case syntax.BREAK:
			return &ast.Break{}
		case syntax.CONTINUE:
			return &ast.Continue{}
		case syntax.PASS:
			return &ast.Pass{}
		}
	case *syntax.DefStmt:
		return &ast.FunctionDef{
			Name: s.Name.Name,
			Args: c.params(s.Params),
			Body: c.stmts(s.Body),
		}
	case *syntax.ExprStmt:
		return &ast.ExprStmt{Value: c.expr(s.X)}
	case *syntax.ForStmt:
		return &ast.For{
			Target: c.target(s.Vars),
			Iter:   c.expr(s.X),
			Body:   c.stmts(s.Body),
		}
	case *syntax.WhileStmt:
		return &ast.While{Test: c.expr(s.Cond), Body: c.stmts(s.Body)}
	case *syntax.IfStmt:
		return &ast.If{
			Test:   c.expr(s.Cond),
			Body:   c.stmts(s.True),
			Orelse: c.stmts(s.False),
		}
	case *syntax.LoadStmt:
		return c.load(s)
	case *syntax.ReturnStmt:
		return &ast.Return{Value: c.optExpr(s.Result)}
	}
	c.errorf(s, "unsupported statement %T", s)
	return nil
}

// load maps load("m", "a", b="c") to LoadStmt{Module: "m", Names: [a, c as b]}.
func (c *converter) load(s *syntax.LoadStmt) ast.Stmt {
	module, ok := s.Module.Value.(string)
	if !ok {
		c.errorf(s, "load module is not a string")
		return nil
	}
	load := &ast.LoadStmt{Module: module}
	for i, to := range s.To {
		alias := &ast.Alias{Name: s.From[i].Name}
		if to.Name != alias.Name {
			alias.AsName = to.Name
		}
		load.Names = append(load.Names, alias)
	}
	return load
}

// params converts the parameters of a def or lambda. Parameters after
// * or *args are keyword-only.
func (c *converter) params(params []syntax.Expr) *ast.Arguments {
	args := new(ast.Arguments)
	var (
		star        bool
		kwDefaulted bool
	)
	for _, p := range params {
		var (
			id   *syntax.Ident
			dflt ast.Expr
		)
		switch p := p.(type) {
		case *syntax.Ident:
			id = p
		case *syntax.BinaryExpr:
			x, ok := p.X.(*syntax.Ident)
			if p.Op != syntax.EQ || !ok {
				c.errorf(p, "invalid parameter")
				continue
			}
			id, dflt = x, c.expr(p.Y)
		case *syntax.UnaryExpr:
			switch {
			case args.Kwarg != "":
				c.errorf(p, "parameter after **%s", args.Kwarg)
			case p.Op == syntax.STARSTAR:
				args.Kwarg = c.paramName(p.X)
			case star:
				c.errorf(p, "multiple * parameters")
			default:
				star = true
				if p.X != nil {
					args.Vararg = c.paramName(p.X)
				}
			}
			continue
		default:
			c.errorf(p, "invalid parameter")
			continue
		}

		name := &ast.Name{ID: id.Name, Ctx: ast.Param}
		switch {
		case args.Kwarg != "":
			c.errorf(p, "parameter %s after **%s", id.Name, args.Kwarg)
		case star:
			args.KwOnly = append(args.KwOnly, name)
			args.KwDefaults = append(args.KwDefaults, dflt)
			kwDefaulted = kwDefaulted || dflt != nil
		case dflt != nil:
			args.Args = append(args.Args, name)
			args.Defaults = append(args.Defaults, dflt)
		case len(args.Defaults) > 0:
			c.errorf(p, "parameter %s without default follows parameter with default", id.Name)
		default:
			args.Args = append(args.Args, name)
		}
	}
	if !kwDefaulted {
		args.KwDefaults = nil
	}
	return args
}

func (c *converter) paramName(x syntax.Expr) string {
	id, ok := x.(*syntax.Ident)
	if !ok {
		c.errorf(x, "invalid parameter")
		return ""
	}
	return id.Name
}

// target converts an expression assigned to.
func (c *converter) target(e syntax.Expr) ast.Expr {
	x := c.expr(e)
	setCtx(x, ast.Store)
	return x
}

func setCtx(e ast.Expr, ctx ast.Ctx) {
	switch e := e.(type) {
	case *ast.Name:
		e.Ctx = ctx
	case *ast.Attribute:
		e.Ctx = ctx
	case *ast.Subscript:
		e.Ctx = ctx
	case *ast.List:
		e.Ctx = ctx
		for _, elt := range e.Elts {
			setCtx(elt, ctx)
		}
	case *ast.Tuple:
		e.Ctx = ctx
		for _, elt := range e.Elts {
			setCtx(elt, ctx)
		}
	}
}

// Expressions.

func (c *converter) optExpr(e syntax.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return c.expr(e)
}

func (c *converter) exprs(list []syntax.Expr) []ast.Expr {
	var out []ast.Expr
	for _, e := range list {
		out = append(out, c.expr(e))
	}
	return out
}

func (c *converter) expr(e syntax.Expr) ast.Expr {
	switch e := e.(type) {
	case *syntax.Ident:
		return &ast.Name{ID: e.Name}
	case *syntax.Literal:
		return c.literal(e)
	case *syntax.ParenExpr:
		return c.expr(e.X)
	case *syntax.UnaryExpr:
		return c.unary(e)
	case *syntax.BinaryExpr:
		return c.binary(e)
	case *syntax.CallExpr:
		return c.call(e)
	case *syntax.DotExpr:
		return &ast.Attribute{Value: c.expr(e.X), Attr: e.Name.Name}
	case *syntax.IndexExpr:
		return &ast.Subscript{Value: c.expr(e.X), Slice: &ast.Index{Value: c.expr(e.Y)}}
	case *syntax.SliceExpr:
		return &ast.Subscript{
			Value: c.expr(e.X),
			Slice: &ast.Slice{
				Lower: c.optExpr(e.Lo),
				Upper: c.optExpr(e.Hi),
				Step:  c.optExpr(e.Step),
			},
		}
	case *syntax.CondExpr:
		return &ast.IfExp{
			Test:   c.expr(e.Cond),
			Body:   c.expr(e.True),
			Orelse: c.expr(e.False),
		}
	case *syntax.LambdaExpr:
		return &ast.Lambda{Args: c.params(e.Params), Body: c.expr(e.Body)}
	case *syntax.ListExpr:
		return &ast.List{Elts: c.exprs(e.List)}
	case *syntax.TupleExpr:
		return &ast.Tuple{Elts: c.exprs(e.List)}
	case *syntax.DictExpr:
		return c.dict(e)
	case *syntax.Comprehension:
		return c.comprehension(e)
	case nil:
		return nil
	}
	c.errorf(e, "unsupported expression %T", e)
	return nil
}

func (c *converter) literal(e *syntax.Literal) ast.Expr {
	switch e.Token {
	case syntax.STRING:
		if s, ok := e.Value.(string); ok {
			return &ast.Str{S: s}
		}
	case syntax.BYTES:
		if s, ok := e.Value.(string); ok {
			return &ast.Bytes{S: s}
		}
	case syntax.INT, syntax.FLOAT:
		return &ast.Num{Value: e.Value}
	}
	c.errorf(e, "unsupported literal %s", e.Raw)
	return nil
}

// unary folds a minus applied directly to a number into a negative
// number, like the Python 2 compiler does. A parenthesized number stays
// a unary operation.
func (c *converter) unary(e *syntax.UnaryExpr) ast.Expr {
	if lit, ok := e.X.(*syntax.Literal); ok && e.Op == syntax.MINUS {
		if v, ok := negate(lit.Value); ok {
			return &ast.Num{Value: v}
		}
	}
	op, ok := unaryOps[e.Op]
	if !ok {
		c.errorf(e, "unexpected %s", e.Op)
		return nil
	}
	return &ast.UnaryOp{Op: op, Operand: c.expr(e.X)}
}

func negate(v any) (any, bool) {
	switch v := v.(type) {
	case int64:
		return -v, true
	case *big.Int:
		return new(big.Int).Neg(v), true
	case float64:
		return -v, true
	}
	return nil, false
}

func (c *converter) binary(e *syntax.BinaryExpr) ast.Expr {
	switch e.Op {
	case syntax.AND:
		return &ast.BoolOp{Op: ast.And, Values: c.boolValues(e)}
	case syntax.OR:
		return &ast.BoolOp{Op: ast.Or, Values: c.boolValues(e)}
	}
	if op, ok := cmpOps[e.Op]; ok {
		return &ast.Compare{
			Left:        c.expr(e.X),
			Ops:         []ast.CmpOpKind{op},
			Comparators: []ast.Expr{c.expr(e.Y)},
		}
	}
	if op, ok := binOps[e.Op]; ok {
		return &ast.BinOp{Left: c.expr(e.X), Op: op, Right: c.expr(e.Y)}
	}
	c.errorf(e, "unexpected %s", e.Op)
	return nil
}

// boolValues flattens a left-nested chain of one boolean operator:
// a and b and c has three values. A parenthesized operand is kept whole.
func (c *converter) boolValues(e *syntax.BinaryExpr) []ast.Expr {
	var values []ast.Expr
	if x, ok := e.X.(*syntax.BinaryExpr); ok && x.Op == e.Op {
		values = c.boolValues(x)
	} else {
		values = []ast.Expr{c.expr(e.X)}
	}
	return append(values, c.expr(e.Y))
}

func (c *converter) call(e *syntax.CallExpr) ast.Expr {
	call := &ast.Call{Func: c.expr(e.Fn)}
	for _, arg := range e.Args {
		switch arg := arg.(type) {
		case *syntax.BinaryExpr:
			if arg.Op != syntax.EQ {
				break
			}
			id, ok := arg.X.(*syntax.Ident)
			if !ok {
				c.errorf(arg, "keyword argument must have form name=expr")
				continue
			}
			call.Keywords = append(call.Keywords, &ast.Keyword{Arg: id.Name, Value: c.expr(arg.Y)})
			continue
		case *syntax.UnaryExpr:
			switch arg.Op {
			case syntax.STAR:
				if call.Starargs != nil {
					c.errorf(arg, "multiple *args")
				}
				call.Starargs = c.expr(arg.X)
				continue
			case syntax.STARSTAR:
				if call.Kwargs != nil {
					c.errorf(arg, "multiple **kwargs")
				}
				call.Kwargs = c.expr(arg.X)
				continue
			}
		}
		call.Args = append(call.Args, c.expr(arg))
	}
	return call
}

func (c *converter) dict(e *syntax.DictExpr) ast.Expr {
	d := new(ast.Dict)
	for _, entry := range e.List {
		entry, ok := entry.(*syntax.DictEntry)
		if !ok {
			c.errorf(e, "invalid dictionary entry")
			continue
		}
		d.Keys = append(d.Keys, c.expr(entry.Key))
		d.Values = append(d.Values, c.expr(entry.Value))
	}
	return d
}

// comprehension groups each for clause with the if clauses that follow it.
func (c *converter) comprehension(e *syntax.Comprehension) ast.Expr {
	var gens []*ast.Comprehension
	for _, clause := range e.Clauses {
		switch clause := clause.(type) {
		case *syntax.ForClause:
			gens = append(gens, &ast.Comprehension{
				Target: c.target(clause.Vars),
				Iter:   c.expr(clause.X),
			})
		case *syntax.IfClause:
			if len(gens) == 0 {
				c.errorf(clause, "comprehension starts with if")
				continue
			}
			g := gens[len(gens)-1]
			g.Ifs = append(g.Ifs, c.expr(clause.Cond))
		}
	}
	if !e.Curly {
		return &ast.ListComp{Elt: c.expr(e.Body), Generators: gens}
	}
	if entry, ok := e.Body.(*syntax.DictEntry); ok {
		return &ast.DictComp{Key: c.expr(entry.Key), Value: c.expr(entry.Value), Generators: gens}
	}
	return &ast.SetComp{Elt: c.expr(e.Body), Generators: gens}
}

// Operators.

var augOps = map[syntax.Token]ast.BinOpKind{
	syntax.PLUS_EQ:       ast.Add,
	syntax.MINUS_EQ:      ast.Sub,
	syntax.STAR_EQ:       ast.Mult,
	syntax.SLASH_EQ:      ast.Div,
	syntax.SLASHSLASH_EQ: ast.FloorDiv,
	syntax.PERCENT_EQ:    ast.Mod,
	syntax.AMP_EQ:        ast.BitAnd,
	syntax.PIPE_EQ:       ast.BitOr,
	syntax.CIRCUMFLEX_EQ: ast.BitXor,
	syntax.LTLT_EQ:       ast.LShift,
	syntax.GTGT_EQ:       ast.RShift,
}

var binOps = map[syntax.Token]ast.BinOpKind{
	syntax.PLUS:       ast.Add,
	syntax.MINUS:      ast.Sub,
	syntax.STAR:       ast.Mult,
	syntax.SLASH:      ast.Div,
	syntax.SLASHSLASH: ast.FloorDiv,
	syntax.PERCENT:    ast.Mod,
	syntax.AMP:        ast.BitAnd,
	syntax.PIPE:       ast.BitOr,
	syntax.CIRCUMFLEX: ast.BitXor,
	syntax.LTLT:       ast.LShift,
	syntax.GTGT:       ast.RShift,
}

var cmpOps = map[syntax.Token]ast.CmpOpKind{
	syntax.EQL:    ast.Eq,
	syntax.NEQ:    ast.NotEq,
	syntax.LT:     ast.Lt,
	syntax.LE:     ast.LtE,
	syntax.GT:     ast.Gt,
	syntax.GE:     ast.GtE,
	syntax.IN:     ast.In,
	syntax.NOT_IN: ast.NotIn,
}

var unaryOps = map[syntax.Token]ast.UnaryOpKind{
	syntax.MINUS: ast.USub,
	syntax.PLUS:  ast.UAdd,
	syntax.TILDE: ast.Invert,
	syntax.NOT:   ast.Not,
}
