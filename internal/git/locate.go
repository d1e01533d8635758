package git

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/go-git/go-billy/v5"

	gbnerrors "gitbranchname.dev/git-branch-name/internal/errors"
	"gitbranchname.dev/git-branch-name/internal/pathbuf"
)

const (
	// DotGit is the name of the metadata entry searched for in each ancestor
	DotGit = ".git"

	// GitdirPrefix starts the single line of a redirect file
	GitdirPrefix = "gitdir: "
)

// LocationKind classifies the outcome of a root search
type LocationKind int

const (
	// NotFound means no ancestor holds a .git entry
	NotFound LocationKind = iota
	// DirectoryRoot means a .git directory was found
	DirectoryRoot
	// RedirectedRoot means a .git file pointed at the metadata directory
	RedirectedRoot
)

func (k LocationKind) String() string {
	switch k {
	case DirectoryRoot:
		return "directory"
	case RedirectedRoot:
		return "redirect"
	default:
		return "not found"
	}
}

// Location is the result of Locate.
type Location struct {
	Kind LocationKind
	// Path is the metadata directory (the .git directory or the redirect target)
	Path string
	// Worktree is the directory holding the .git entry
	Worktree string
}

// Found reports whether a metadata directory was located
func (l Location) Found() bool {
	return l.Kind != NotFound
}

// Locator searches upward for a repository's metadata directory
type Locator struct {
	fs billy.Basic
}

// NewLocator creates a Locator over the given filesystem
func NewLocator(fsys billy.Basic) *Locator {
	return &Locator{fs: fsys}
}

// Locate walks upward from the active value of buf until an ancestor holds a
// .git entry. On success buf is left holding the metadata directory.
// A missing repository is reported as a NotFound location, not an error.
func (l *Locator) Locate(buf *pathbuf.Buffer) (Location, error) {
	for {
		suffix := "/" + DotGit
		if buf.AtRoot() {
			suffix = DotGit
		}
		if err := buf.Append(suffix); err != nil {
			return Location{}, gbnerrors.NewIOError("stat failed", buf.String(), err)
		}
		candidate := buf.String()

		info, err := l.fs.Stat(candidate)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Location{}, gbnerrors.NewIOError("stat failed", candidate, err)
			}
			buf.Unappend(len(suffix))
			if !buf.Ascend() {
				return Location{Kind: NotFound}, nil
			}
			continue
		}

		worktree := filepath.Dir(candidate)
		switch mode := info.Mode(); {
		case mode.IsDir():
			return Location{Kind: DirectoryRoot, Path: candidate, Worktree: worktree}, nil
		case mode.IsRegular():
			return l.followRedirect(buf, candidate, worktree)
		default:
			return Location{}, gbnerrors.NewFormatError(candidate, "invalid .git file type")
		}
	}
}

// followRedirect parses a "gitdir: <path>" file (submodules, linked worktrees).
// Relative targets are resolved against the directory holding the file.
func (l *Locator) followRedirect(buf *pathbuf.Buffer, file, worktree string) (Location, error) {
	line, err := ReadFirstLine(l.fs, file)
	if err != nil {
		return Location{}, gbnerrors.NewIOError("failed to read submodule .git file", file, err)
	}
	if err := buf.Load(line); err != nil {
		return Location{}, gbnerrors.NewIOError("failed to read submodule .git file", file, err)
	}
	if buf.Len() <= len(GitdirPrefix) || !buf.HasPrefix(GitdirPrefix) {
		return Location{}, gbnerrors.NewFormatError(file, "invalid submodule .git file format")
	}
	if err := buf.Shift(len(GitdirPrefix)); err != nil {
		return Location{}, gbnerrors.NewFormatError(file, "invalid submodule .git file format")
	}

	target := buf.String()
	if !filepath.IsAbs(target) {
		target = filepath.Join(worktree, target)
		if err := buf.Load([]byte(target)); err != nil {
			return Location{}, gbnerrors.NewIOError("failed to read submodule .git file", file, err)
		}
	}
	return Location{Kind: RedirectedRoot, Path: target, Worktree: worktree}, nil
}
