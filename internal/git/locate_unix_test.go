//go:build linux || darwin

package git

import (
	"path/filepath"
	"syscall"
	"testing"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/stretchr/testify/require"

	gbnerrors "gitbranchname.dev/git-branch-name/internal/errors"
)

func TestLocateRejectsSpecialFiles(t *testing.T) {
	t.Parallel()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, syscall.Mkfifo(filepath.Join(dir, DotGit), 0644))

	_, _, err = locateFrom(t, NewLocator(osfs.Default), dir)
	require.ErrorIs(t, err, gbnerrors.ErrFormat)
	require.Equal(t, "invalid .git file type", err.Error())
}
