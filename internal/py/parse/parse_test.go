// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package parse

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/pym/internal/py/ast"
	"go.astrophena.name/pym/internal/testutil"
)

func name(id string) *ast.Name  { return &ast.Name{ID: id} }
func store(id string) *ast.Name { return &ast.Name{ID: id, Ctx: ast.Store} }
func param(id string) *ast.Name { return &ast.Name{ID: id, Ctx: ast.Param} }
func num(v any) *ast.Num        { return &ast.Num{Value: v} }

func assign(target, value ast.Expr) *ast.Assign {
	return &ast.Assign{Targets: []ast.Expr{target}, Value: value}
}

func TestParseSources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "source.py")
	if err := os.WriteFile(path, []byte("x = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	want := &ast.Module{Body: []ast.Stmt{assign(store("x"), num(int64(1)))}}

	loaded := func() ([]byte, error) { return []byte("x = 1"), nil }
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	cases := map[string]struct {
		src  any
		want *ast.Module
	}{
		"nil":             {src: nil, want: nil},
		"source string":   {src: "x = 1\n", want: want},
		"path string":     {src: path, want: want},
		"path":            {src: Path(path), want: want},
		"bytes":           {src: []byte("x = 1"), want: want},
		"reader":          {src: strings.NewReader("x = 1\n"), want: want},
		"file":            {src: f, want: want},
		"loader":          {src: loaded, want: want},
		"empty string":    {src: "", want: nil},
		"whitespace only": {src: []byte("\n  \n"), want: nil},
		"comments only":   {src: "# nothing here\n", want: &ast.Module{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestParseModule(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{&ast.Pass{}}}
	got, err := Parse(m)
	if err != nil {
		t.Fatal(err)
	}
	if got != m {
		t.Fatalf("Parse returned a different module")
	}
}

func TestParseSourceErrors(t *testing.T) {
	loadErr := errors.New("no source today")

	cases := map[string]struct {
		src     any
		wantErr error
	}{
		"missing path": {
			src:     Path(filepath.Join(t.TempDir(), "missing.py")),
			wantErr: fs.ErrNotExist,
		},
		"failing loader": {
			src:     func() ([]byte, error) { return nil, loadErr },
			wantErr: loadErr,
		},
		"unsupported type": {
			src:     42,
			wantErr: ErrUnsupportedSource,
		},
		"unsupported func": {
			src:     func() string { return "x = 1" },
			wantErr: ErrUnsupportedSource,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tc.src)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got error %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseTree(t *testing.T) {
	cases := map[string]struct {
		src  string
		want []ast.Stmt
	}{
		"tuple assignment": {
			src: "a, b = b, a",
			want: []ast.Stmt{assign(
				&ast.Tuple{Elts: []ast.Expr{store("a"), store("b")}, Ctx: ast.Store},
				&ast.Tuple{Elts: []ast.Expr{name("b"), name("a")}},
			)},
		},
		"attribute and subscript targets": {
			src: "a.b = c[0]\nd[1:2] += 3",
			want: []ast.Stmt{
				assign(
					&ast.Attribute{Value: name("a"), Attr: "b", Ctx: ast.Store},
					&ast.Subscript{Value: name("c"), Slice: &ast.Index{Value: num(int64(0))}},
				),
				&ast.AugAssign{
					Target: &ast.Subscript{Value: name("d"), Slice: &ast.Slice{Lower: num(int64(1)), Upper: num(int64(2))}, Ctx: ast.Store},
					Op:     ast.Add,
					Value:  num(int64(3)),
				},
			},
		},
		"augmented assignment": {
			src:  "x //= 2",
			want: []ast.Stmt{&ast.AugAssign{Target: store("x"), Op: ast.FloorDiv, Value: num(int64(2))}},
		},
		"load": {
			src: `load("//lib.star", "a", b = "c")`,
			want: []ast.Stmt{&ast.LoadStmt{Module: "//lib.star", Names: []*ast.Alias{
				{Name: "a"},
				{Name: "c", AsName: "b"},
			}}},
		},
		"function": {
			src: "def f(a, b=1, *args, c, d=2, **kw):\n    return a\n",
			want: []ast.Stmt{&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:       []ast.Expr{param("a"), param("b")},
					Defaults:   []ast.Expr{num(int64(1))},
					Vararg:     "args",
					KwOnly:     []ast.Expr{param("c"), param("d")},
					KwDefaults: []ast.Expr{nil, num(int64(2))},
					Kwarg:      "kw",
				},
				Body: []ast.Stmt{&ast.Return{Value: name("a")}},
			}},
		},
		"bare star": {
			src: "def f(*, c):\n    pass\n",
			want: []ast.Stmt{&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{KwOnly: []ast.Expr{param("c")}},
				Body: []ast.Stmt{&ast.Pass{}},
			}},
		},
		"call": {
			src: "f(a, k=1, *args, **kw)",
			want: []ast.Stmt{&ast.ExprStmt{Value: &ast.Call{
				Func:     name("f"),
				Args:     []ast.Expr{name("a")},
				Keywords: []*ast.Keyword{{Arg: "k", Value: num(int64(1))}},
				Starargs: name("args"),
				Kwargs:   name("kw"),
			}}},
		},
		"boolean chains": {
			src: "x = a and b and c or d\ny = a and (b and c)",
			want: []ast.Stmt{
				assign(store("x"), &ast.BoolOp{Op: ast.Or, Values: []ast.Expr{
					&ast.BoolOp{Op: ast.And, Values: []ast.Expr{name("a"), name("b"), name("c")}},
					name("d"),
				}}),
				assign(store("y"), &ast.BoolOp{Op: ast.And, Values: []ast.Expr{
					name("a"),
					&ast.BoolOp{Op: ast.And, Values: []ast.Expr{name("b"), name("c")}},
				}}),
			},
		},
		"negative numbers": {
			src: "y = -1 + -(2) - -x",
			want: []ast.Stmt{assign(store("y"), &ast.BinOp{
				Left: &ast.BinOp{
					Left:  num(int64(-1)),
					Op:    ast.Add,
					Right: &ast.UnaryOp{Op: ast.USub, Operand: num(int64(2))},
				},
				Op:    ast.Sub,
				Right: &ast.UnaryOp{Op: ast.USub, Operand: name("x")},
			})},
		},
		"comparisons": {
			src: "not a in b\na not in b",
			want: []ast.Stmt{
				&ast.ExprStmt{Value: &ast.UnaryOp{Op: ast.Not, Operand: &ast.Compare{
					Left: name("a"), Ops: []ast.CmpOpKind{ast.In}, Comparators: []ast.Expr{name("b")},
				}}},
				&ast.ExprStmt{Value: &ast.Compare{
					Left: name("a"), Ops: []ast.CmpOpKind{ast.NotIn}, Comparators: []ast.Expr{name("b")},
				}},
			},
		},
		"comprehensions": {
			src: "[x for x in xs if x if y for z in x]\n{k: v for k, v in d}",
			want: []ast.Stmt{
				&ast.ExprStmt{Value: &ast.ListComp{Elt: name("x"), Generators: []*ast.Comprehension{
					{Target: store("x"), Iter: name("xs"), Ifs: []ast.Expr{name("x"), name("y")}},
					{Target: store("z"), Iter: name("x")},
				}}},
				&ast.ExprStmt{Value: &ast.DictComp{Key: name("k"), Value: name("v"), Generators: []*ast.Comprehension{
					{Target: &ast.Tuple{Elts: []ast.Expr{store("k"), store("v")}, Ctx: ast.Store}, Iter: name("d")},
				}}},
			},
		},
		"slices": {
			src: "x[1:2]\nx[::2]\nx[0]",
			want: []ast.Stmt{
				&ast.ExprStmt{Value: &ast.Subscript{Value: name("x"), Slice: &ast.Slice{Lower: num(int64(1)), Upper: num(int64(2))}}},
				&ast.ExprStmt{Value: &ast.Subscript{Value: name("x"), Slice: &ast.Slice{Step: num(int64(2))}}},
				&ast.ExprStmt{Value: &ast.Subscript{Value: name("x"), Slice: &ast.Index{Value: num(int64(0))}}},
			},
		},
		"elif": {
			src: "if a:\n    pass\nelif b:\n    break\nelse:\n    continue\n",
			want: []ast.Stmt{&ast.If{
				Test: name("a"),
				Body: []ast.Stmt{&ast.Pass{}},
				Orelse: []ast.Stmt{&ast.If{
					Test:   name("b"),
					Body:   []ast.Stmt{&ast.Break{}},
					Orelse: []ast.Stmt{&ast.Continue{}},
				}},
			}},
		},
		"loops": {
			src: "for k, v in d.items():\n    pass\nwhile x:\n    x -= 1\n",
			want: []ast.Stmt{
				&ast.For{
					Target: &ast.Tuple{Elts: []ast.Expr{store("k"), store("v")}, Ctx: ast.Store},
					Iter:   &ast.Call{Func: &ast.Attribute{Value: name("d"), Attr: "items"}},
					Body:   []ast.Stmt{&ast.Pass{}},
				},
				&ast.While{
					Test: name("x"),
					Body: []ast.Stmt{&ast.AugAssign{Target: store("x"), Op: ast.Sub, Value: num(int64(1))}},
				},
			},
		},
		"expressions": {
			src: "z = lambda a: a if a else {'k': b'v', 'f': 1.5}",
			want: []ast.Stmt{assign(store("z"), &ast.Lambda{
				Args: &ast.Arguments{Args: []ast.Expr{param("a")}},
				Body: &ast.IfExp{
					Test: name("a"),
					Body: name("a"),
					Orelse: &ast.Dict{
						Keys:   []ast.Expr{&ast.Str{S: "k"}, &ast.Str{S: "f"}},
						Values: []ast.Expr{&ast.Bytes{S: "v"}, num(1.5)},
					},
				},
			})},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, m.Body, tc.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		src      string
		wantLine int
		wantCol  int
		wantMsg  string
	}{
		"syntax error": {
			src:      "x = = 1\n",
			wantLine: 1,
		},
		"default before plain parameter": {
			src:      "def f(a=1, b):\n    pass\n",
			wantLine: 1,
			wantCol:  12,
			wantMsg:  "parameter b without default follows parameter with default",
		},
		"repeated star arguments": {
			src:      "\nf(*a, *b)\n",
			wantLine: 2,
			wantCol:  7,
			wantMsg:  "multiple *args",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tc.src)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("got error %v (%T), want *Error", err, err)
			}
			testutil.AssertEqual(t, perr.Filename, DefaultFilename)
			testutil.AssertEqual(t, perr.Line, tc.wantLine)
			if tc.wantCol != 0 {
				testutil.AssertEqual(t, perr.Col, tc.wantCol)
			}
			if tc.wantMsg != "" {
				testutil.AssertEqual(t, perr.Msg, tc.wantMsg)
			}
		})
	}
}

func TestParseJoinsErrors(t *testing.T) {
	_, err := Parse("f(*a, *b)\ng(**a, **b)\n")
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	for _, want := range []string{"<string>:1:7: multiple *args", "<string>:2:8: multiple **kwargs"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not contain %q", err, want)
		}
	}
}

func TestParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.py")
	if err := os.WriteFile(path, []byte("def f(:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Parse(path)
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v (%T), want *Error", err, err)
	}
	testutil.AssertEqual(t, perr.Filename, path)
	if !strings.HasPrefix(err.Error(), path+":1:") {
		t.Fatalf("error %q does not start with the position", err)
	}
}

func TestCompoundStmt(t *testing.T) {
	lines := []string{"if x:\n", "    y = 1\n", "\n", "z = 2\n"}
	readline := func() ([]byte, error) {
		if len(lines) == 0 {
			return nil, errors.New("out of input")
		}
		line := lines[0]
		lines = lines[1:]
		return []byte(line), nil
	}

	stmts, err := CompoundStmt("<stdin>", readline)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stmts, []ast.Stmt{&ast.If{
		Test: name("x"),
		Body: []ast.Stmt{assign(store("y"), num(int64(1)))},
	}})

	stmts, err = CompoundStmt("<stdin>", readline)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, stmts, []ast.Stmt{assign(store("z"), num(int64(2)))})
}
