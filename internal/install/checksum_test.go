package install

import (
	"crypto/sha512"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileChecksum matches the SHA-512 digest of the file contents.
func TestFileChecksum(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "libqi.so")
	require.NoError(t, os.WriteFile(path, []byte("libqi"), 0o644))

	got, err := FileChecksum(path)
	require.NoError(t, err)

	want := sha512.Sum512([]byte("libqi"))
	require.Equal(t, want[:], got)

	_, err = FileChecksum(filepath.Join(t.TempDir(), "missing.so"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
