// Package version provides the version and build information.
package version

import (
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info is the version and build information of the current binary.
type Info struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`   // BuildInfo's vcs.revision
	BuiltAt  string `json:"built_at"` // BuildInfo's vcs.time
	Modified bool   `json:"modified"` // BuildInfo's vcs.modified
	Go       string `json:"go"`       // runtime.Version()
	OS       string `json:"os"`       // runtime.GOOS
	Arch     string `json:"arch"`     // runtime.GOARCH
}

// String implements the fmt.Stringer interface.
func (i Info) String() string {
	var sb strings.Builder

	sb.WriteString(CmdName() + " " + i.Version + " (" + i.Go + ", " + i.OS + "/" + i.Arch + ")" + "\n")
	if i.Commit != "" && i.BuiltAt != "" {
		sb.WriteString("commit " + i.Commit)
		if i.Modified {
			sb.WriteString(" (modified)")
		}
		sb.WriteString("\n")
		sb.WriteString("built at " + i.BuiltAt + "\n")
	}

	return sb.String()
}

var (
	once    sync.Once
	cmdName string
	info    Info
)

// CmdName returns the base name of the current binary.
func CmdName() string {
	once.Do(initOnce)
	return cmdName
}

// Version returns the version and build information of the current binary.
func Version() Info {
	once.Do(initOnce)
	return info
}

func initOnce() {
	cmdName = "pym"
	if exe, err := os.Executable(); err == nil {
		cmdName = filepath.Base(exe)
	}
	info = loadInfo(debug.ReadBuildInfo)
}

func loadInfo(read func() (*debug.BuildInfo, bool)) Info {
	i := Info{
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	bi, ok := read()
	if !ok {
		return i
	}

	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.time":
			i.BuiltAt = s.Value
		case "vcs.modified":
			i.Modified = s.Value == "true"
		}
	}
	return i
}
