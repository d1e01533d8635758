package pathbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("keeps a clean path", func(t *testing.T) {
		b, err := New("/home/user/src")
		require.NoError(t, err)
		require.Equal(t, "/home/user/src", b.String())
		require.Equal(t, 14, b.Len())
	})

	t.Run("drops trailing separators", func(t *testing.T) {
		b, err := New("/home/user/")
		require.NoError(t, err)
		require.Equal(t, "/home/user", b.String())
	})

	t.Run("keeps the root", func(t *testing.T) {
		b, err := New("/")
		require.NoError(t, err)
		require.Equal(t, "/", b.String())
		require.True(t, b.AtRoot())
	})

	t.Run("rejects paths longer than MaxPath", func(t *testing.T) {
		_, err := New("/" + strings.Repeat("a", MaxPath))
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestAppendAndUnappend(t *testing.T) {
	t.Parallel()

	b, err := New("/repo/sub")
	require.NoError(t, err)

	require.NoError(t, b.Append("/.git"))
	require.Equal(t, "/repo/sub/.git", b.String())

	b.Unappend(len("/.git"))
	require.Equal(t, "/repo/sub", b.String())

	b.Unappend(1000)
	require.Equal(t, "", b.String())
}

func TestAppendOverflow(t *testing.T) {
	t.Parallel()

	b, err := New("/" + strings.Repeat("a", MaxPath-1))
	require.NoError(t, err)

	// the reserved slack fits the usual suffixes
	require.NoError(t, b.Append("/.git"))
	require.NoError(t, b.Append("/HEAD"))

	err = b.Append(strings.Repeat("x", 16))
	require.ErrorIs(t, err, ErrOverflow)
	require.Equal(t, MaxPath+10, b.Len())
}

func TestAscend(t *testing.T) {
	t.Parallel()

	b, err := New("/a/bb/ccc")
	require.NoError(t, err)

	var seen []string
	for {
		seen = append(seen, b.String())
		if !b.Ascend() {
			break
		}
	}
	require.Equal(t, []string{"/a/bb/ccc", "/a/bb", "/a", "/"}, seen)
	require.True(t, b.AtRoot())
}

func TestAscendWithoutSeparator(t *testing.T) {
	t.Parallel()

	b, err := New("relative")
	require.NoError(t, err)
	require.False(t, b.Ascend())
	require.Equal(t, "relative", b.String())
}

func TestLoadShiftLimit(t *testing.T) {
	t.Parallel()

	b, err := New("/repo")
	require.NoError(t, err)

	require.NoError(t, b.Load([]byte("gitdir: /repo/.git/modules/lib")))
	require.True(t, b.HasPrefix("gitdir: "))

	require.NoError(t, b.Shift(len("gitdir: ")))
	require.Equal(t, "/repo/.git/modules/lib", b.String())

	b.Limit(5)
	require.Equal(t, "/repo", b.String())

	b.Limit(0)
	require.Equal(t, "/repo", b.String())

	err = b.Shift(6)
	require.ErrorIs(t, err, ErrRange)
	require.Equal(t, "/repo", b.String())
}

func TestLoadOverflow(t *testing.T) {
	t.Parallel()

	b, err := New("/")
	require.NoError(t, err)
	err = b.Load(make([]byte, Capacity+1))
	require.ErrorIs(t, err, ErrOverflow)
}
