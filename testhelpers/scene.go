package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository in a fresh temporary directory. The directory
// is resolved through symlinks (on macOS /var is a link to /private/var) so
// paths match what os.Getwd reports after a chdir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Subdir creates a nested directory inside the scene and returns its path.
func (s *Scene) Subdir(t *testing.T, parts ...string) string {
	t.Helper()

	dir := filepath.Join(append([]string{s.Dir}, parts...)...)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	return dir
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	_, err := scene.Repo.CreateChangeAndCommit("1", "1")
	return err
}

// OutsideRepoDir returns a temporary directory with no repository above it.
// It skips the test when the system temp directory itself sits inside a repository.
func OutsideRepoDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}
	for d := dir; ; d = filepath.Dir(d) {
		if _, err := os.Stat(filepath.Join(d, ".git")); err == nil {
			t.Skipf("temp dir %s is inside a repository at %s", dir, d)
		}
		if filepath.Dir(d) == d {
			break
		}
	}
	return dir
}
