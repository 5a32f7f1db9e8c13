package artifact

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewArtifact verifies the base name is derived from the source path.
func TestNewArtifact(t *testing.T) {
	t.Parallel()

	source := filepath.Join("sdk", "lib", "libqi.so")
	a := NewArtifact(source)
	require.Equal(t, source, a.SourcePath)
	require.Equal(t, "libqi.so", a.BaseName)
}

// TestDestinationPathFor ensures artifacts land directly under the destination.
func TestDestinationPathFor(t *testing.T) {
	t.Parallel()

	dest := Destination{Directory: filepath.Join("qimessaging", "native")}
	got := dest.PathFor(NewArtifact(filepath.Join("boost", "lib", "libboost_thread.so")))
	require.Equal(t, filepath.Join("qimessaging", "native", "libboost_thread.so"), got)
}
