// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package repl implements an interactive formatter: it reads Python
// statements and prints them back in canonical form.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.astrophena.name/pym/internal/py/ast"
	"go.astrophena.name/pym/internal/py/parse"
	"go.astrophena.name/pym/internal/py/render"
)

const (
	prompt     = ">>> "
	contPrompt = "... "
	filename   = "<stdin>"
)

// Start starts the REPL, reading input from r, and writing to w. Errors in
// the input are printed and do not stop the loop. A nil cfg renders with
// the defaults.
//
// Start returns when r is exhausted or ctx is canceled.
func Start(ctx context.Context, r io.Reader, w io.Writer, cfg *render.Config) error {
	if cfg == nil {
		cfg = new(render.Config)
	}
	in := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := step(in, w, cfg)
		if err != nil {
			return err
		}
		if done {
			break
		}
	}

	fmt.Fprintf(w, "\n")
	return nil
}

// step reads and formats one statement. It reports whether the input is
// exhausted.
func step(in *bufio.Reader, w io.Writer, cfg *render.Config) (done bool, err error) {
	var (
		p       = prompt
		eof     bool
		readErr error
	)
	readline := func() ([]byte, error) {
		fmt.Fprint(w, p)
		p = contPrompt
		line, err := in.ReadBytes('\n')
		if len(line) > 0 {
			if line[len(line)-1] != '\n' {
				line = append(line, '\n')
			}
			return line, nil
		}
		if err == io.EOF {
			eof = true
		} else {
			readErr = err
		}
		return nil, err
	}

	stmts, err := parse.CompoundStmt(filename, readline)
	switch {
	case readErr != nil:
		return true, readErr
	case err != nil && eof:
		return true, nil
	case err != nil:
		fmt.Fprintln(w, err)
		return false, nil
	case len(stmts) == 0:
		return eof, nil
	}

	text, err := cfg.Render(&ast.Module{Body: stmts})
	if err != nil {
		fmt.Fprintln(w, err)
		return eof, nil
	}
	fmt.Fprintln(w, text)
	return eof, nil
}
