// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package pym

//go:generate go run devtools/gencopyright.go

import (
	"bytes"
	"os/exec"
	"testing"
)

func TestGofmt(t *testing.T) {
	var w bytes.Buffer
	run(t, &w, "gofmt", "-l", "cmd", "devtools", "internal")
	if files := w.String(); files != "" {
		t.Fatalf("run gofmt on these files:\n%v", files)
	}
}

func TestVet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping go vet in short mode")
	}
	var w bytes.Buffer
	run(t, &w, "go", "vet", "./...")
}

func run(t *testing.T, buf *bytes.Buffer, cmd string, args ...string) {
	buf.Reset()
	c := exec.Command(cmd, args...)
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		t.Fatalf("%s failed: %v:\n%v", cmd, err, buf.String())
	}
}
