package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Writer: &buf})
	require.NoError(t, err)

	splog.Error("invalid .git/HEAD file format")
	splog.Error("stat failed: %s", "permission denied")

	require.Equal(t,
		"git-branch-name: invalid .git/HEAD file format\n"+
			"git-branch-name: stat failed: permission denied\n",
		buf.String())
}

func TestSplogQuiet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Writer: &buf, Quiet: true, Debug: true})
	require.NoError(t, err)

	splog.Error("invalid .git/HEAD file format")
	splog.Debug("located %s", "/repo/.git")
	require.Empty(t, buf.String())
}

func TestSplogDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	splog, err := NewSplogWithOptions(Options{Writer: &buf})
	require.NoError(t, err)
	splog.Debug("hidden")
	require.Empty(t, buf.String())

	splog, err = NewSplogWithOptions(Options{Writer: &buf, Debug: true})
	require.NoError(t, err)
	splog.Debug("located %s", "/repo/.git")
	require.Equal(t, "git-branch-name: located /repo/.git\n", buf.String())
}

func TestSplogLogFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "logs", "git-branch-name.log")
	splog, err := NewSplogWithOptions(Options{Writer: &buf, Quiet: true, LogFilePath: logPath})
	require.NoError(t, err)

	splog.Debug("located %s", "/repo/.git")
	splog.Error("invalid .git/HEAD file format")
	require.NoError(t, splog.Close())

	// quiet only silences the console
	require.Empty(t, buf.String())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `level=DEBUG msg="located /repo/.git"`)
	require.Contains(t, string(data), `level=ERROR msg="invalid .git/HEAD file format"`)
	// the prefix belongs to console lines only
	require.NotContains(t, string(data), Prefix)
}

func TestSplogLogRotationFromEnv(t *testing.T) {
	t.Setenv("GIT_BRANCH_NAME_LOG_MAX_SIZE", "5")
	t.Setenv("GIT_BRANCH_NAME_LOG_MAX_BACKUPS", "bogus")

	logFile, err := newLogFile(filepath.Join(t.TempDir(), "gbn.log"))
	require.NoError(t, err)
	require.Equal(t, 5, logFile.MaxSize)
	require.Equal(t, defaultLogMaxBackups, logFile.MaxBackups)
	require.Equal(t, defaultLogMaxAgeDays, logFile.MaxAge)
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTerminal(f))
}
