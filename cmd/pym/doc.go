// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Pym formats Python source code.

It parses each file and prints it back with normalized spacing, line breaks,
indentation and operator spelling. Comments and blank lines are not
preserved. The accepted grammar is the Python subset understood by Starlark,
including load statements. Files using class, try, import, print, with,
global, del, assert, raise, yield, chained assignments or comparisons, the
** operator or set literals cannot be read and are reported as syntax
errors.

# Usage

	$ pym [flags...] [file...]

Without files, pym formats standard input and prints the result to standard
output. By default, formatted files are printed to standard output too.

To rewrite files in place:

	$ pym -w build.star defs.py

To list files whose formatting differs from pym's:

	$ pym -l *.star

To format statements interactively:

	$ pym -i

The indentation width and the number of files formatted in parallel can be
set with the PYM_INDENT and PYM_JOBS environment variables.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/pym/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
