package files

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "upstreamcli/internal/errors"
)

func TestManager_WriteFile(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, nil)

	require.NoError(t, m.WriteFile("out/report.csv", []byte("a,b\n")))

	data, err := os.ReadFile(filepath.Join(dir, "out", "report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.True(t, m.FileExists("out/report.csv"))
}

func TestManager_CreateFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, nil)

	err := m.Create("report.xlsx", func(w io.Writer) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("boom")
	})
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManager_Resolve(t *testing.T) {
	m := NewManager("/base", nil)
	assert.Equal(t, filepath.Join("/base", "x.csv"), m.Resolve("x.csv"))
	assert.Equal(t, "/abs/y.csv", m.Resolve("/abs/y.csv"))

	assert.Equal(t, "z.csv", NewManager("", nil).Resolve("./z.csv"))
}

func TestManager_EnsureDirectory(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, nil)

	require.NoError(t, m.EnsureDirectory("a/b"))
	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	require.NoError(t, m.EnsureDirectory("a/b"))
}

func TestManager_CreateStorageError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	m := NewManager(dir, nil)
	err := m.WriteFile("file/report.csv", []byte("a"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
