package cli

import (
	"io"

	"gitbranchname.dev/git-branch-name/internal/config"
	gbnerrors "gitbranchname.dev/git-branch-name/internal/errors"
	"gitbranchname.dev/git-branch-name/internal/git"
	"gitbranchname.dev/git-branch-name/internal/output"
	"gitbranchname.dev/git-branch-name/internal/pathbuf"
)

// Run locates the repository above the working directory and writes the
// name HEAD points at to stdout, without a trailing newline.
// Outside a repository it returns ErrNotFound and writes nothing.
func Run(cfg config.Config, host Host, stdout io.Writer, splog *output.Splog) error {
	if cfg.StartingDirectory != "" {
		if err := host.Chdir(cfg.StartingDirectory); err != nil {
			return gbnerrors.NewIOError("failed to change directory", cfg.StartingDirectory, err)
		}
	}

	wd, err := host.Getwd()
	if err != nil {
		return gbnerrors.NewIOError("failed to get current directory", "", err)
	}
	buf, err := pathbuf.New(wd)
	if err != nil {
		return gbnerrors.NewIOError("failed to get current directory", wd, err)
	}

	loc, err := git.NewLocator(host.FS).Locate(buf)
	if err != nil {
		return err
	}
	if !loc.Found() {
		splog.Debug("no .git above %s", wd)
		return gbnerrors.ErrNotFound
	}
	splog.Debug("found %s metadata at %s", loc.Kind, loc.Path)

	resolver := git.NewResolver(host.FS, git.Limits{
		Hash:   cfg.HashTruncateLength,
		Branch: cfg.BranchTruncateLength,
	})
	head, err := resolver.Resolve(buf)
	if err != nil {
		return err
	}
	if head.Detached() && head.Hash.IsZero() {
		splog.Debug("HEAD holds an identifier that is not an object hash")
	}
	splog.Debug("HEAD is %s %q", head.Category(), head.Name)

	if _, err := io.WriteString(stdout, head.Name); err != nil {
		return gbnerrors.NewIOError("failed to write output", "", err)
	}
	return nil
}
