// Package cli implements the git-branch-name command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gitbranchname.dev/git-branch-name/internal/config"
	gbnerrors "gitbranchname.dev/git-branch-name/internal/errors"
	"gitbranchname.dev/git-branch-name/internal/output"
)

// NewRootCmd creates the root cobra command. Output goes to stdout, usage and
// diagnostics to stderr.
func NewRootCmd(version string, host Host, stdout, stderr io.Writer) *cobra.Command {
	// flags and env write straight into cfg
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "git-branch-name [flags] [<starting-dir>]",
		Short: "Print the branch, tag or commit checked out in a git working tree",
		Long: `Print the branch, tag or commit checked out in the git working tree containing
<starting-dir> (default: the current directory), with no trailing newline.

Meant for shell prompts: it reads .git/HEAD directly and never runs git.
Exits 1 with no output outside a repository.

Unset flags are read from GIT_BRANCH_NAME_HASH_LENGTH, GIT_BRANCH_NAME_BRANCH_LENGTH,
GIT_BRANCH_NAME_QUIET and GIT_BRANCH_NAME_LOG_FILE.`,
		Version:       version,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindEnv(cmd.Flags()); err != nil {
				return gbnerrors.NewUsageError(err)
			}
			cfg.Debug = os.Getenv("DEBUG") != ""
			if len(args) > 0 {
				cfg.StartingDirectory = args[0]
			}
			cfg = cfg.Normalize()

			splog, err := output.NewSplogWithOptions(output.Options{
				Writer:      stderr,
				Quiet:       cfg.Quiet,
				Debug:       cfg.Debug,
				LogFilePath: cfg.LogFile,
			})
			if err != nil {
				err = gbnerrors.NewIOError("failed to open log file", cfg.LogFile, err)
				if !cfg.Quiet {
					fmt.Fprintf(stderr, "%s%v\n", output.Prefix, err)
				}
				return err
			}
			defer splog.Close()

			err = Run(cfg, host, stdout, splog)
			if err != nil && !gbnerrors.IsSilent(err) {
				splog.Error("%v", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.VarP(config.NewLengthValue(&cfg.HashTruncateLength), "hash-length", "h",
		"truncate a detached commit identifier to `n` characters")
	flags.VarP(config.NewLengthValue(&cfg.BranchTruncateLength), "branch-length", "b",
		"truncate a branch, tag or remote name to `n` characters")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print no diagnostics on failure")
	flags.StringVar(&cfg.LogFile, "log-file", "", "append a debug log to `path`")
	_ = flags.MarkHidden("log-file")
	// -h belongs to --hash-length, so help only has the long form
	flags.Bool("help", false, "show usage")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return gbnerrors.NewUsageError(err)
	})
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	return cmd
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return gbnerrors.NewUsageError(err)
		}
		return nil
	}
}

// Execute runs the command line and returns the process exit status.
func Execute(version string, args []string, host Host, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(version, host, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if errors.Is(err, gbnerrors.ErrUsage) {
		fmt.Fprintf(stderr, "%s%v\n", output.Prefix, err)
		_ = cmd.Usage()
	}
	return gbnerrors.ExitCode(err)
}
