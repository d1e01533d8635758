package git

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/go-git/go-billy/v5"

	"gitbranchname.dev/git-branch-name/internal/pathbuf"
)

// ReadFirstLine returns the first line of the file at path, without its
// trailing newline. Reading stops at the first '\n', at EOF, or after
// pathbuf.Capacity bytes. An empty file yields an empty line and no error.
func ReadFirstLine(fsys billy.Basic, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, pathbuf.Capacity)
	line, err := r.ReadSlice('\n')
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, err
	}
	return bytes.TrimSuffix(line, []byte{'\n'}), nil
}
