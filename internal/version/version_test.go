// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"encoding/json"
	"flag"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"go.astrophena.name/pym/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	testutil.RunGolden(t, "testdata/buildinfo/*.json", func(t *testing.T, match string) []byte {
		b, err := os.ReadFile(match)
		if err != nil {
			t.Fatal(err)
		}
		bi := testutil.UnmarshalJSON[debug.BuildInfo](t, b)
		i := loadInfo(func() (*debug.BuildInfo, bool) { return &bi, true })

		// Go, OS and Arch depend on the test environment.
		stable := struct {
			Version  string `json:"version"`
			Commit   string `json:"commit"`
			BuiltAt  string `json:"built_at"`
			Modified bool   `json:"modified"`
		}{i.Version, i.Commit, i.BuiltAt, i.Modified}
		out, err := json.MarshalIndent(stable, "", "  ")
		if err != nil {
			t.Fatal(err)
		}
		return append(out, '\n')
	}, *update)
}

func TestLoadInfoWithoutBuildInfo(t *testing.T) {
	t.Parallel()

	i := loadInfo(func() (*debug.BuildInfo, bool) { return nil, false })
	testutil.AssertEqual(t, i, Info{
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	})
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		info Info
		want []string
	}{
		"release": {
			info: Info{Version: "v0.3.1", Go: "go1.22.3", OS: "linux", Arch: "amd64"},
			want: []string{" v0.3.1 (go1.22.3, linux/amd64)\n"},
		},
		"vcs": {
			info: Info{
				Version:  "devel",
				Commit:   "8f3c2d1",
				BuiltAt:  "2026-03-14T09:26:53Z",
				Modified: true,
				Go:       "go1.22.3",
				OS:       "darwin",
				Arch:     "arm64",
			},
			want: []string{
				" devel (go1.22.3, darwin/arm64)\n",
				"commit 8f3c2d1 (modified)\n",
				"built at 2026-03-14T09:26:53Z\n",
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.info.String()
			if !strings.HasPrefix(got, CmdName()+" ") {
				t.Errorf("%q does not start with the command name", got)
			}
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("%q does not contain %q", got, want)
				}
			}
		})
	}
}
