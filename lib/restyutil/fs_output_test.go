package restyutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilesystemOutputClearsOnlyDumps(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "17")
	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old dump"), 0600))
	require.NoError(t, os.WriteFile(unrelated, []byte("keep me"), 0600))

	output := NewFilesystemOutput(dir)

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
	kept, err := os.ReadFile(unrelated)
	require.NoError(t, err)
	require.Equal(t, "keep me", string(kept))

	output.Write("1", "GET /countries")
	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "GET /countries", string(contents))
}

func TestFilesystemOutputCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps")

	output := NewFilesystemOutput(dir)
	output.Write("1", "contents")

	contents, err := os.ReadFile(filepath.Join(dir, "1"))
	require.NoError(t, err)
	require.Equal(t, "contents", string(contents))
}
