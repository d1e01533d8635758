// Package config holds the immutable run configuration of git-branch-name.
//
// It handles:
//   - Defaults for the hash and branch truncation lengths
//   - Lenient parsing of length values (bad input falls back to the default)
//   - Filling unset command line flags from GIT_BRANCH_NAME_* environment variables
package config
