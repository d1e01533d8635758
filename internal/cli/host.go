package cli

import (
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Host is the part of the platform a run depends on: entry type queries and
// file reads through FS, plus the process working directory.
type Host struct {
	FS    billy.Basic
	Getwd func() (string, error)
	Chdir func(dir string) error
}

// DefaultHost uses the operating system
func DefaultHost() Host {
	return Host{
		FS:    osfs.Default,
		Getwd: os.Getwd,
		Chdir: os.Chdir,
	}
}
