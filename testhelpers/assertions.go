// Package testhelpers provides testing utilities for git-branch-name,
// including scenes backed by go-git repositories, a shared binary builder,
// and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectSuccess asserts that a run printed exactly want with no trailing
// newline and exited 0.
func ExpectSuccess(t *testing.T, result RunResult, want string) {
	t.Helper()

	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	require.Equal(t, want, result.Stdout)
	require.Empty(t, result.Stderr)
}

// ExpectFailure asserts that a run failed with code and wrote nothing to stdout.
func ExpectFailure(t *testing.T, result RunResult, code int) {
	t.Helper()

	require.Equal(t, code, result.ExitCode)
	require.Empty(t, result.Stdout)
}
