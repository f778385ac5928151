// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.astrophena.name/pym/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("replaces without backup", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.py")
		if err := os.WriteFile(file, []byte("x=1\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := WriteFile(file, []byte("x = 1\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), "x = 1\n")

		fi, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, fi.Mode().Perm(), os.FileMode(0o600))

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(entries), 1)
	})

	t.Run("new file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.txt")
		data := []byte("hello")

		if err := WriteFileBackup(file, data, 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), string(data))

		backups, err := filepath.Glob(file + ".*.bak")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(backups), 0)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.txt")
		data1 := []byte("hello")
		data2 := []byte("world")

		if err := WriteFileBackup(file, data1, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFileBackup(file, data2, 0o644); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), string(data2))

		backups, err := filepath.Glob(file + ".*.bak")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(backups), 1)

		backupData, err := os.ReadFile(backups[0])
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(backupData), string(data1))
	})

	t.Run("prune", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.txt")

		// Create more than maxBackups files.
		for i := 0; i < maxBackups+2; i++ {
			data := []byte{byte(i)}
			if err := WriteFileBackup(file, data, 0o644); err != nil {
				t.Fatal(err)
			}
			// Sleep to ensure unique backup timestamps.
			time.Sleep(2 * time.Millisecond)
		}

		backups, err := filepath.Glob(file + ".*.bak")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(backups), maxBackups)
	})
}
