package testutil_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aurum-R/Shellfast/pkg/testutil"
)

func TestMemoryFSStat(t *testing.T) {
	m := testutil.NewMemoryFS()
	m.WriteString("/dir/file.txt", "hello")

	t.Run("file", func(t *testing.T) {
		info, err := m.Stat("/dir/file.txt")
		require.NoError(t, err)
		assert.False(t, info.IsDir())
		assert.Equal(t, int64(5), info.Size())
		assert.Equal(t, "file.txt", info.Name())
	})

	t.Run("implicit parent directory", func(t *testing.T) {
		info, err := m.Stat("/dir")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := m.Stat("/missing")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestMemoryFSReadFile(t *testing.T) {
	m := testutil.NewMemoryFS()
	m.WriteString("/a.txt", "content")

	data, err := m.ReadFile("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	// The returned slice is a copy; mutating it does not change the
	// stored file.
	data[0] = 'X'
	again, err := m.ReadFile("/a.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), again)
}

func TestMemoryFSReadDir(t *testing.T) {
	m := testutil.NewMemoryFS()
	m.WriteString("/root/b.txt", "")
	m.WriteString("/root/a.txt", "")
	m.WriteString("/root/sub/deep.txt", "")

	entries, err := m.ReadDir("/root")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "a.txt", entries[0].Name())
	assert.False(t, entries[0].IsDir())
	assert.Equal(t, "b.txt", entries[1].Name())
	assert.Equal(t, "sub", entries[2].Name())
	assert.True(t, entries[2].IsDir())
}

func TestMemoryFSInjectError(t *testing.T) {
	m := testutil.NewMemoryFS()
	m.WriteString("/locked.txt", "x")
	m.InjectError("/locked.txt", fs.ErrPermission)

	_, err := m.Stat("/locked.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)

	_, err = m.ReadFile("/locked.txt")
	assert.ErrorIs(t, err, fs.ErrPermission)
}
