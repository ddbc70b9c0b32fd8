package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDeletesFile(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "esb.png")
	require.NoError(t, os.WriteFile(p, []byte("img"), 0o644))

	s := NewImages(root)
	require.NoError(t, s.Remove("uploads/images/esb.png"))

	_, err := os.Stat(p)
	require.True(t, os.IsNotExist(err))
}

func TestRemoveMissingFileIsNoop(t *testing.T) {
	s := NewImages(t.TempDir())
	require.NoError(t, s.Remove("uploads/images/gone.png"))
	require.NoError(t, s.Remove("  "))
}

func TestRemoveRejectsEscapingRef(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	defer os.Remove(outside)

	s := NewImages(root)
	require.Error(t, s.Remove(outside))

	_, err := os.Stat(outside)
	require.NoError(t, err)
}
