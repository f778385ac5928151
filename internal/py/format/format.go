// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package format implements standard formatting of Python source.
package format

import (
	"go.astrophena.name/pym/internal/py/parse"
	"go.astrophena.name/pym/internal/py/render"
)

// Source formats src in canonical style and returns the result or a syntax
// error. src is expected to be a syntactically correct Python source file,
// or a list of statements.
func Source(src []byte) ([]byte, error) {
	return File(nil, parse.DefaultFilename, src)
}

// File is like [Source], but renders with cfg and names filename in syntax
// errors. A nil cfg uses the defaults.
//
// Formatted source ends with a newline, unless it is empty.
func File(cfg *render.Config, filename string, src []byte) ([]byte, error) {
	m, err := parse.File(filename, src)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = new(render.Config)
	}
	text, err := cfg.Render(m)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []byte{}, nil
	}
	return []byte(text + "\n"), nil
}
