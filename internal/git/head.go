package git

import (
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5/plumbing"

	gbnerrors "gitbranchname.dev/git-branch-name/internal/errors"
	"gitbranchname.dev/git-branch-name/internal/pathbuf"
)

const (
	// HeadFile is the head-state file inside the metadata directory
	HeadFile = "HEAD"

	// SymbolicPrefix starts a HEAD line holding a symbolic reference
	SymbolicPrefix = "ref: "
)

// HeadKind classifies the content of a HEAD file
type HeadKind int

const (
	// Invalid means the content did not parse
	Invalid HeadKind = iota
	// Symbolic means HEAD names a ref, e.g. "ref: refs/heads/main"
	Symbolic
	// Raw means HEAD holds an identifier directly (detached)
	Raw
)

func (k HeadKind) String() string {
	switch k {
	case Symbolic:
		return "symbolic"
	case Raw:
		return "raw"
	default:
		return "invalid"
	}
}

// HeadReference is the classified, truncated content of a HEAD file.
type HeadReference struct {
	Kind HeadKind
	// Name is the display text: the ref name past its category, or the raw identifier
	Name string
	// Ref is the full symbolic reference; empty unless Kind is Symbolic
	Ref plumbing.ReferenceName
	// Hash is set when a Raw identifier is a well-formed object hash
	Hash plumbing.Hash
}

// Detached reports whether HEAD points directly at an identifier
func (h HeadReference) Detached() bool {
	return h.Kind == Raw
}

// Category describes what HEAD points at: branch, tag, remote, note, ref or detached.
func (h HeadReference) Category() string {
	switch h.Kind {
	case Raw:
		return "detached"
	case Invalid:
		return "invalid"
	}
	switch {
	case h.Ref.IsBranch():
		return "branch"
	case h.Ref.IsTag():
		return "tag"
	case h.Ref.IsRemote():
		return "remote"
	case h.Ref.IsNote():
		return "note"
	default:
		return "ref"
	}
}

// Limits are the truncation lengths applied to each kind of HEAD content.
// Non-positive values disable truncation.
type Limits struct {
	Hash   int
	Branch int
}

// Resolver reads and classifies HEAD files
type Resolver struct {
	fs     billy.Basic
	limits Limits
}

// NewResolver creates a Resolver over the given filesystem
func NewResolver(fsys billy.Basic, limits Limits) *Resolver {
	return &Resolver{fs: fsys, limits: limits}
}

// Resolve reads HEAD inside the metadata directory held by buf and returns its
// classified content. buf is left holding the display name.
func (r *Resolver) Resolve(buf *pathbuf.Buffer) (HeadReference, error) {
	if err := buf.Append("/" + HeadFile); err != nil {
		return HeadReference{}, gbnerrors.NewIOError("failed to read .git/HEAD file", buf.String(), err)
	}
	headPath := buf.String()

	line, err := ReadFirstLine(r.fs, headPath)
	if err != nil {
		return HeadReference{}, gbnerrors.NewIOError("failed to read .git/HEAD file", headPath, err)
	}
	if len(line) == 0 {
		return HeadReference{}, gbnerrors.NewFormatError(headPath, "empty .git/HEAD file")
	}
	if err := buf.Load(line); err != nil {
		return HeadReference{}, gbnerrors.NewIOError("failed to read .git/HEAD file", headPath, err)
	}

	head := classify(buf, r.limits)
	if head.Kind == Invalid {
		return head, gbnerrors.NewFormatError(headPath, "invalid .git/HEAD file format")
	}
	return head, nil
}

// ParseHead classifies a single HEAD line.
func ParseHead(line string, limits Limits) HeadReference {
	var buf pathbuf.Buffer
	if err := buf.Load([]byte(line)); err != nil {
		return HeadReference{Kind: Invalid}
	}
	return classify(&buf, limits)
}

// classify narrows buf to the display name and applies the matching limit.
func classify(buf *pathbuf.Buffer, limits Limits) HeadReference {
	line := buf.String()

	if !strings.HasPrefix(line, SymbolicPrefix) {
		head := HeadReference{Kind: Raw}
		if plumbing.IsHash(line) {
			head.Hash = plumbing.NewHash(line)
		}
		buf.Limit(limits.Hash)
		head.Name = buf.String()
		return head
	}

	ref := strings.TrimPrefix(line, SymbolicPrefix)
	segments := strings.SplitN(ref, "/", 3)
	// "ref: refs/heads/" names no branch; it is rejected rather than printed empty
	if len(segments) < 3 || segments[0] == "" || segments[1] == "" || segments[2] == "" {
		return HeadReference{Kind: Invalid}
	}
	name := segments[2]

	// name is a suffix of the line
	if err := buf.Shift(buf.Len() - len(name)); err != nil {
		return HeadReference{Kind: Invalid}
	}
	buf.Limit(limits.Branch)
	return HeadReference{
		Kind: Symbolic,
		Name: buf.String(),
		Ref:  plumbing.ReferenceName(ref),
	}
}
