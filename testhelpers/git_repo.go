package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
// Repositories are created with go-git, so tests do not need a git binary.
type GitRepo struct {
	Dir  string
	repo *gogit.Repository
}

// NewGitRepo initializes a new non-bare repository in dir with "main" as the
// initial branch.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo, err := gogit.PlainInitWithOptions(dir, &gogit.PlainInitOptions{
		InitOptions: gogit.InitOptions{
			DefaultBranch: plumbing.NewBranchReferenceName("main"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	return &GitRepo{Dir: dir, repo: repo}, nil
}

// GitDir returns the path of the repository's .git directory.
func (r *GitRepo) GitDir() string {
	return filepath.Join(r.Dir, ".git")
}

// HeadPath returns the path of the repository's HEAD file.
func (r *GitRepo) HeadPath() string {
	return filepath.Join(r.GitDir(), "HEAD")
}

// CreateChangeAndCommit writes textValue to a file and commits it, returning
// the new commit hash.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) (plumbing.Hash, error) {
	name := textFileName
	if prefix != "" {
		name = prefix + "_" + textFileName
	}
	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(textValue), 0644); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to write change: %w", err)
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := wt.Add(name); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to stage change: %w", err)
	}
	hash, err := wt.Commit(textValue, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to commit: %w", err)
	}
	return hash, nil
}

// CheckoutBranch points HEAD at refs/heads/<name> without touching the worktree.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.SetSymbolicHead(plumbing.NewBranchReferenceName(name))
}

// SetSymbolicHead points HEAD at an arbitrary reference name.
func (r *GitRepo) SetSymbolicHead(target plumbing.ReferenceName) error {
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, target)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to set HEAD to %s: %w", target, err)
	}
	return nil
}

// CheckoutDetached points HEAD directly at hash.
func (r *GitRepo) CheckoutDetached(hash plumbing.Hash) error {
	ref := plumbing.NewHashReference(plumbing.HEAD, hash)
	if err := r.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to detach HEAD at %s: %w", hash, err)
	}
	return nil
}

// WriteHead replaces the HEAD file with raw content.
func (r *GitRepo) WriteHead(content string) error {
	return os.WriteFile(r.HeadPath(), []byte(content), 0644)
}

// CurrentBranchName returns the short branch name HEAD points at, as go-git sees it.
func (r *GitRepo) CurrentBranchName() (string, error) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", fmt.Errorf("HEAD is detached at %s", ref.Hash())
	}
	return ref.Target().Short(), nil
}

// LinkWorktree makes dir a linked checkout by writing a .git file holding
// "gitdir: <target>".
func LinkWorktree(dir, target string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: "+target+"\n"), 0644)
}
