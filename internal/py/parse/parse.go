// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package parse turns Python source into syntax trees.
//
// The grammar accepted is the Python dialect understood by
// go.starlark.net/syntax, including the load statement. Its trees are
// converted to the node types of package ast.
package parse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.astrophena.name/pym/internal/py/ast"

	"go.starlark.net/syntax"
)

// DefaultFilename names source that does not come from a file.
const DefaultFilename = "<string>"

// ErrUnsupportedSource is returned by [Parse] for values it cannot take
// source from.
var ErrUnsupportedSource = errors.New("parse: unsupported source")

// Error is a syntax error, or a construct that has no syntax tree
// representation.
type Error struct {
	Filename string
	Line     int // 1-based, 0 if unknown
	Col      int // 1-based, 0 if unknown
	Msg      string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Filename)
	if e.Line > 0 {
		fmt.Fprintf(&sb, ":%d", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(&sb, ":%d", e.Col)
		}
	}
	sb.WriteString(": ")
	sb.WriteString(e.Msg)
	return sb.String()
}

// Path is a file path. Unlike a string passed to [Parse], it is never
// taken for source text.
type Path string

// Parse returns the syntax tree of src, which may be:
//
//   - nil, giving a nil tree;
//   - an *ast.Module, returned as is;
//   - a string, read as a file if it names a regular file and parsed as
//     source text otherwise;
//   - a Path, always read as a file;
//   - a []byte holding source text;
//   - an io.Reader, read to the end (a Name method, like the one of
//     *os.File, supplies the file name for error messages);
//   - a func() ([]byte, error) that loads source text.
//
// Empty source gives a nil tree. Any other type of src is reported with
// ErrUnsupportedSource.
func Parse(src any) (*ast.Module, error) {
	switch src := src.(type) {
	case nil:
		return nil, nil
	case *ast.Module:
		return src, nil
	case Path:
		return readFile(string(src))
	case string:
		if isFile(src) {
			return readFile(src)
		}
		return File(DefaultFilename, []byte(src))
	case []byte:
		return File(DefaultFilename, src)
	case io.Reader:
		b, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("parse: reading source: %w", err)
		}
		name := DefaultFilename
		if n, ok := src.(interface{ Name() string }); ok {
			name = n.Name()
		}
		return File(name, b)
	case func() ([]byte, error):
		b, err := src()
		if err != nil {
			return nil, fmt.Errorf("parse: loading source: %w", err)
		}
		return File(DefaultFilename, b)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, src)
}

func isFile(s string) bool {
	if s == "" || strings.ContainsAny(s, "\n\x00") {
		return false
	}
	fi, err := os.Stat(s)
	return err == nil && fi.Mode().IsRegular()
}

func readFile(path string) (*ast.Module, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return File(path, b)
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// File parses src, naming filename in errors. Source that is empty or
// whitespace only gives a nil tree.
func File(filename string, src []byte) (*ast.Module, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, nil
	}
	f, err := fileOptions.Parse(filename, src, 0)
	if err != nil {
		return nil, syntaxError(err)
	}
	var c converter
	m := &ast.Module{Body: c.stmts(f.Stmts)}
	if err := c.err(); err != nil {
		return nil, err
	}
	return m, nil
}

// CompoundStmt parses one compound statement, or one line of simple
// statements, calling readline each time it needs a line of input. It
// reads no further than the statement, so it suits interactive use. A
// blank line gives no statements.
func CompoundStmt(filename string, readline func() ([]byte, error)) ([]ast.Stmt, error) {
	f, err := fileOptions.ParseCompoundStmt(filename, readline)
	if err != nil {
		return nil, syntaxError(err)
	}
	var c converter
	stmts := c.stmts(f.Stmts)
	if err := c.err(); err != nil {
		return nil, err
	}
	return stmts, nil
}

func syntaxError(err error) error {
	var se syntax.Error
	if !errors.As(err, &se) {
		return fmt.Errorf("parse: %w", err)
	}
	return &Error{
		Filename: se.Pos.Filename(),
		Line:     int(se.Pos.Line),
		Col:      int(se.Pos.Col),
		Msg:      se.Msg,
	}
}
