// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package indent

import (
	"errors"
	"testing"

	"go.astrophena.name/pym/internal/testutil"
)

func TestRender(t *testing.T) {
	var i Indenter

	testutil.AssertEqual(t, i.Render("pass"), "pass")

	i.Indent()
	i.Indent()
	testutil.AssertEqual(t, i.Depth(), 2)
	testutil.AssertEqual(t, i.Render("pass"), "        pass")
	testutil.AssertEqual(t, i.Render(""), "")
	testutil.AssertEqual(t, i.Prefix(), "        ")

	if err := i.Dedent(); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, i.Render("x = 1"), "    x = 1")
}

func TestCustomUnit(t *testing.T) {
	i := New("\t")
	i.Indent()
	testutil.AssertEqual(t, i.Render("return"), "\treturn")
	testutil.AssertEqual(t, i.Unit(), "\t")
	testutil.AssertEqual(t, New("").Unit(), DefaultUnit)
}

func TestDedentUnderflow(t *testing.T) {
	i := New("")
	i.Indent()
	if err := i.Dedent(); err != nil {
		t.Fatalf("first Dedent: %v", err)
	}
	if err := i.Dedent(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("second Dedent: got %v, want %v", err, ErrUnderflow)
	}
	testutil.AssertEqual(t, i.Depth(), 0)
}
