package git

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// newMemFS builds an in-memory tree from directories and file contents.
func newMemFS(t *testing.T, dirs []string, files map[string]string) billy.Filesystem {
	t.Helper()

	fsys := memfs.New()
	for _, dir := range dirs {
		require.NoError(t, fsys.MkdirAll(dir, 0755))
	}
	for path, content := range files {
		require.NoError(t, util.WriteFile(fsys, path, []byte(content), 0644))
	}
	return fsys
}

// statErrFS fails Stat for one path.
type statErrFS struct {
	billy.Filesystem
	path string
	err  error
}

func (f statErrFS) Stat(name string) (os.FileInfo, error) {
	if name == f.path {
		return nil, &os.PathError{Op: "stat", Path: name, Err: f.err}
	}
	return f.Filesystem.Stat(name)
}

// trackingFS counts files opened and closed through it.
type trackingFS struct {
	billy.Filesystem
	opened atomic.Int32
	closed atomic.Int32
}

func (f *trackingFS) Open(name string) (billy.File, error) {
	file, err := f.Filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	f.opened.Add(1)
	return &trackedFile{File: file, closed: &f.closed}, nil
}

type trackedFile struct {
	billy.File
	closed *atomic.Int32
}

func (f *trackedFile) Close() error {
	f.closed.Add(1)
	return f.File.Close()
}

func (f *trackingFS) requireBalanced(t *testing.T) {
	t.Helper()
	require.Equal(t, f.opened.Load(), f.closed.Load(), "every opened file must be closed")
}
