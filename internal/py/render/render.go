// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package render turns Python syntax trees back into source text.
//
// The output is re-parseable and structurally equivalent to the tree, with
// normalized spacing, line breaks, indentation and operator spelling.
// Comments and the original blank-line layout are not preserved.
package render

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"go.astrophena.name/pym/internal/logger"
	"go.astrophena.name/pym/internal/py/ast"
	"go.astrophena.name/pym/internal/py/indent"
)

// DefaultMaxDepth is the default bound on syntax tree nesting.
const DefaultMaxDepth = 10000

// ErrTooDeep is returned when a syntax tree is nested deeper than the
// configured limit, which is also how cyclic trees are detected.
var ErrTooDeep = errors.New("render: syntax tree nested too deeply")

// UnsupportedNodeError is returned when the renderer meets a node it has no
// handler for, a nil node where one is required, or a node whose fields
// are inconsistent.
type UnsupportedNodeError struct {
	Node   ast.Node
	Reason string // optional
}

func (e *UnsupportedNodeError) Error() string {
	if isNil(e.Node) {
		return "render: missing node"
	}
	if e.Reason != "" {
		return fmt.Sprintf("render: cannot render %T: %s", e.Node, e.Reason)
	}
	return fmt.Sprintf("render: cannot render %T", e.Node)
}

// Config controls rendering. The zero value is ready to use.
type Config struct {
	// Indent is the indentation added per block level. Defaults to
	// indent.DefaultUnit.
	Indent string
	// MaxDepth bounds the nesting of rendered nodes. Defaults to
	// DefaultMaxDepth.
	MaxDepth int
	// Logf, if set, receives diagnostics about the render pass.
	Logf logger.Logf
}

// Render renders n with the default configuration.
func Render(n ast.Node) (string, error) {
	return new(Config).Render(n)
}

// Render renders n and returns the source text, without a trailing newline.
// A nil n renders as empty text. On failure no text is returned.
func (c *Config) Render(n ast.Node) (text string, err error) {
	if isNil(n) {
		return "", nil
	}

	r := &renderer{
		ind:      indent.New(c.Indent),
		maxDepth: c.MaxDepth,
		logf:     c.Logf,
	}
	if r.maxDepth <= 0 {
		r.maxDepth = DefaultMaxDepth
	}
	defer r.recover(&err)

	r.dispatch(n)
	r.writeLine("")

	if len(r.future) > 0 && r.logf != nil {
		r.logf("render: __future__ imports: %s", strings.Join(r.future, ", "))
	}
	return strings.Join(r.lines, "\n"), nil
}

// renderer holds the state of one render pass.
type renderer struct {
	ind   *indent.Indenter
	line  string   // line under construction
	lines []string // finished lines

	importing bool // previous top-level statement was an import
	continued bool // next line continues the current statement
	depth     int  // dispatch nesting
	maxDepth  int

	future []string // names imported from __future__
	logf   logger.Logf
}

type renderError struct{ err error }

func (r *renderer) fail(err error) { panic(renderError{err}) }

func (r *renderer) recover(errp *error) {
	e := recover()
	if e == nil {
		return
	}
	re, ok := e.(renderError)
	if !ok {
		panic(e)
	}
	*errp = re.err
}

func (r *renderer) unsupported(n ast.Node, format string, args ...any) {
	r.fail(&UnsupportedNodeError{Node: n, Reason: fmt.Sprintf(format, args...)})
}

// write appends text to the current line, starting a new one if needed.
// Spacing is the caller's job.
func (r *renderer) write(text string) {
	if r.line == "" {
		r.newLine(text)
		return
	}
	r.line += text
}

// newLine starts a line with text. At top level, statements are separated
// by one blank line, except between consecutive imports and before lines
// that continue a statement (elif, else, except, finally, decorated
// definitions).
func (r *renderer) newLine(text string) {
	if text != "" {
		if r.ind.Depth() == 0 {
			imp := isImport(text)
			if len(r.lines) > 0 && !r.continued && !(r.importing && imp) {
				r.lines = append(r.lines, "")
			}
			r.importing = imp
		}
		r.continued = false
	}
	r.line = r.ind.Render(text)
}

func isImport(text string) bool {
	return strings.HasPrefix(text, "import ") ||
		strings.HasPrefix(text, "from ") ||
		strings.HasPrefix(text, "load(")
}

// writeLine writes text and finishes the current line. Blank lines are
// dropped.
func (r *renderer) writeLine(text string) {
	r.write(text)
	if strings.TrimSpace(r.line) != "" {
		r.lines = append(r.lines, r.line)
	}
	r.line = ""
}

// clause writes text as the start of a line that continues the current
// statement.
func (r *renderer) clause(text string) {
	r.continued = true
	r.write(text)
}

// renderBlock writes the colon of a compound statement header and the
// indented body.
func (r *renderer) renderBlock(body []ast.Stmt) { r.block(body, false) }

// renderSuite is renderBlock for function and class bodies, which may start
// with a docstring.
func (r *renderer) renderSuite(body []ast.Stmt) { r.block(body, true) }

func (r *renderer) block(body []ast.Stmt, docs bool) {
	r.writeLine(":")
	r.ind.Indent()
	defer r.dedent()

	if docs {
		if doc, ok := ast.Docstring(body); ok {
			r.writeLine(docstring(doc, r.ind.Prefix()))
			r.renderBody(body[1:])
			return
		}
	}
	if isEmpty(body) {
		r.writeLine("pass")
		return
	}
	r.renderBody(body)
}

func (r *renderer) dedent() {
	if err := r.ind.Dedent(); err != nil {
		r.fail(fmt.Errorf("render: %w", err))
	}
}

func isEmpty(body []ast.Stmt) bool {
	for _, s := range body {
		if _, ok := s.(*ast.Noop); !ok {
			return false
		}
	}
	return true
}

// renderBody renders each statement on its own line.
func (r *renderer) renderBody(body []ast.Stmt) {
	for _, s := range body {
		r.dispatch(s)
		r.writeLine("")
	}
}

// dispatchStmts dispatches a sequence of statements for side effects only.
func (r *renderer) dispatchStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.dispatch(s)
	}
}

// enter guards against runaway nesting, which also catches cyclic trees.
func (r *renderer) enter() {
	r.depth++
	if r.depth > r.maxDepth {
		r.fail(ErrTooDeep)
	}
}

func (r *renderer) leave() { r.depth-- }

// dispatch routes n to the handler for its kind.
func (r *renderer) dispatch(n ast.Node) {
	if isNil(n) {
		r.fail(&UnsupportedNodeError{})
	}
	r.enter()
	defer r.leave()

	switch n := n.(type) {
	case *ast.Module:
		r.module(n)

	// Statements.
	case *ast.FunctionDef:
		r.functionDef(n)
	case *ast.ClassDef:
		r.classDef(n)
	case *ast.Return:
		r.returnStmt(n)
	case *ast.Delete:
		r.deleteStmt(n)
	case *ast.Assign:
		r.assign(n)
	case *ast.AugAssign:
		r.augAssign(n)
	case *ast.Print:
		r.print(n)
	case *ast.For:
		r.forStmt(n)
	case *ast.While:
		r.while(n)
	case *ast.If:
		r.ifStmt(n)
	case *ast.With:
		r.with(n)
	case *ast.Raise:
		r.raise(n)
	case *ast.TryExcept:
		r.tryExcept(n)
	case *ast.TryFinally:
		r.tryFinally(n)
	case *ast.Assert:
		r.assert(n)
	case *ast.Import:
		r.importStmt(n)
	case *ast.ImportFrom:
		r.importFrom(n)
	case *ast.LoadStmt:
		r.load(n)
	case *ast.Global:
		if len(n.Names) == 0 {
			r.unsupported(n, "no names")
		}
		r.write("global " + strings.Join(n.Names, ", "))
	case *ast.ExprStmt:
		r.expr(n.Value, precYield)
	case *ast.Pass:
		r.write("pass")
	case *ast.Break:
		r.write("break")
	case *ast.Continue:
		r.write("continue")
	case *ast.Noop:

	// Expressions.
	case *ast.BoolOp:
		r.boolOp(n)
	case *ast.BinOp:
		r.binOp(n)
	case *ast.UnaryOp:
		r.unaryOp(n)
	case *ast.Lambda:
		r.lambda(n)
	case *ast.IfExp:
		r.ifExp(n)
	case *ast.Dict:
		r.dict(n)
	case *ast.Set:
		r.set(n)
	case *ast.ListComp:
		r.comprehension(n, "[", n.Elt, n.Generators, "]")
	case *ast.SetComp:
		r.comprehension(n, "{", n.Elt, n.Generators, "}")
	case *ast.GeneratorExp:
		r.comprehension(n, "(", n.Elt, n.Generators, ")")
	case *ast.DictComp:
		r.dictComp(n)
	case *ast.Yield:
		r.yield(n)
	case *ast.Compare:
		r.compare(n)
	case *ast.Call:
		r.call(n)
	case *ast.Num:
		r.num(n)
	case *ast.Str:
		r.write(quote(n.S))
	case *ast.Bytes:
		r.write(quoteBytes(n.S))
	case *ast.Attribute:
		r.attribute(n)
	case *ast.Subscript:
		r.subscript(n)
	case *ast.Name:
		r.write(n.ID)
	case *ast.List:
		r.write("[")
		r.exprs(n.Elts)
		r.write("]")
	case *ast.Tuple:
		r.tuple(n)

	// Subscripts.
	case *ast.Index:
		r.expr(n.Value, precTest)
	case *ast.Slice:
		r.slice(n)

	// Helper nodes.
	case *ast.Alias:
		r.write(n.Name)
		if n.AsName != "" {
			r.write(" as " + n.AsName)
		}
	case *ast.Keyword:
		r.write(n.Arg + "=")
		r.expr(n.Value, precTest)
	case *ast.Arguments:
		r.arguments(n)
	case *ast.ExceptHandler:
		r.exceptHandler(n)
	case *ast.Comprehension:
		r.generator(n)

	default:
		r.fail(&UnsupportedNodeError{Node: n})
	}
}

func isNil(n ast.Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
