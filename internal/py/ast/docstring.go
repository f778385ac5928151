// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package ast

import (
	"strings"
	"unicode"
)

// Docstring reports the cleaned docstring of a module, function or class
// body. A body has a docstring if its first statement is a bare string
// literal that is not empty after cleaning.
func Docstring(body []Stmt) (string, bool) {
	if len(body) == 0 {
		return "", false
	}
	es, ok := body[0].(*ExprStmt)
	if !ok {
		return "", false
	}
	s, ok := es.Value.(*Str)
	if !ok {
		return "", false
	}
	doc := CleanDoc(s.S)
	return doc, doc != ""
}

// ExtractDocstring removes the docstring statement from m and returns it.
// If m has no docstring, it is left untouched and "" is returned.
func ExtractDocstring(m *Module) string {
	doc, ok := Docstring(m.Body)
	if !ok {
		return ""
	}
	m.Body = m.Body[1:]
	return doc
}

// CleanDoc normalizes docstring indentation: tabs are expanded, leading
// whitespace is removed from the first line, the common indentation of the
// remaining lines is removed, and blank lines at both ends are dropped.
func CleanDoc(doc string) string {
	lines := strings.Split(expandTabs(doc, 8), "\n")

	margin := -1
	for _, line := range lines[1:] {
		content := strings.TrimLeftFunc(line, unicode.IsSpace)
		if content == "" {
			continue
		}
		if indent := len(line) - len(content); margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)
	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) > margin {
				lines[i] = lines[i][margin:]
			} else {
				lines[i] = ""
			}
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}
