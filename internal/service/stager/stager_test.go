package stager

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/jnistage/internal/config"
	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/platform"
	"github.com/oshokin/jnistage/internal/resolve"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// windowsWorktree lays out a worktree built with a Windows toolchain.
func windowsWorktree(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()
	build := "build-vs2015"

	writeFile(t, filepath.Join(root, "lib", "libqi", build, "sdk", "bin", "qi.dll"), "qi")
	writeFile(t, filepath.Join(root, "lib", "libqi", build, "sdk", "lib", "qi.lib"), "import lib")
	writeFile(t, filepath.Join(root, "jni", build, "sdk", "bin", "qimessagingjni.dll"), "jni")
	writeFile(t, filepath.Join(root, "boost", "bin", "boost_thread-vc140-mt-1_59.dll"), "thread")
	writeFile(t, filepath.Join(root, "boost", "bin", "boost_python-vc140-mt-1_59.dll"), "python")
	writeFile(t, filepath.Join(root, "boost", "lib", "boost_thread-vc140-mt-1_59.lib"), "static")

	return &config.Config{
		Worktree:    root,
		BuildConfig: "vs2015",
		JavaProject: "sdk/libqi-java/qimessaging",
		Projects: map[string]string{
			LibqiProject: "lib/libqi",
			JNIProject:   "jni",
		},
		Packages: map[string]string{BoostPackage: "boost"},
	}
}

// TestManifest adds the C++ runtime for the cross variant only.
func TestManifest(t *testing.T) {
	t.Parallel()

	base := Manifest(platform.Derive("linux64", "linux"))
	require.Equal(t, []artifact.ManifestEntry{
		{Unit: LibqiProject, Library: "qi"},
		{Unit: JNIProject, Library: "qimessagingjni"},
	}, base)

	cross := Manifest(platform.Derive("android-arm64", "linux"))
	require.Len(t, cross, len(base)+1)
	require.Equal(t, base, cross[:len(base)])
	require.Equal(t, artifact.ManifestEntry{Unit: JNIProject, Library: "gnustl_shared"}, cross[len(base)])
}

// TestDestinationFor picks native-android for the cross variant.
func TestDestinationFor(t *testing.T) {
	t.Parallel()

	project := filepath.Join("src", "qimessaging")

	require.Equal(t, filepath.Join(project, "native"),
		DestinationFor(project, platform.Derive("linux64", "linux")).Directory)
	require.Equal(t, filepath.Join(project, "native-android"),
		DestinationFor(project, platform.Derive("android-arm", "linux")).Directory)
}

// TestStager_CopiesOnWindowsProfile stages copies using the Windows layout.
func TestStager_CopiesOnWindowsProfile(t *testing.T) {
	t.Parallel()

	cfg := windowsWorktree(t)
	require.NoError(t, config.Validate(cfg))

	summary, err := newStager(cfg, platform.Derive(cfg.BuildConfig, "windows")).Run(context.Background())
	require.NoError(t, err)

	dest := filepath.Join(cfg.Worktree, "sdk", "libqi-java", "qimessaging", "native")
	require.Equal(t, dest, summary.Destination.Directory)
	require.Len(t, summary.Artifacts, 3)

	for name, content := range map[string]string{
		"qi.dll":                         "qi",
		"qimessagingjni.dll":             "jni",
		"boost_thread-vc140-mt-1_59.dll": "thread",
	} {
		info, statErr := os.Lstat(filepath.Join(dest, name))
		require.NoError(t, statErr)
		require.True(t, info.Mode().IsRegular(), name)

		data, readErr := os.ReadFile(filepath.Join(dest, name))
		require.NoError(t, readErr)
		require.Equal(t, content, string(data))
	}
}

// TestStager_MissingLibraryWritesNothing aborts before touching the destination.
func TestStager_MissingLibraryWritesNothing(t *testing.T) {
	t.Parallel()

	cfg := windowsWorktree(t)
	require.NoError(t, config.Validate(cfg))
	require.NoError(t, os.Remove(filepath.Join(cfg.Worktree, "jni", "build-vs2015", "sdk", "bin", "qimessagingjni.dll")))

	_, err := newStager(cfg, platform.Derive(cfg.BuildConfig, "windows")).Run(context.Background())
	require.ErrorIs(t, err, resolve.ErrArtifactNotFound)

	_, err = os.Stat(filepath.Join(cfg.Worktree, "sdk", "libqi-java", "qimessaging", "native"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestStager_UnknownBoostPackage fails when the toolchain lacks Boost.
func TestStager_UnknownBoostPackage(t *testing.T) {
	t.Parallel()

	cfg := windowsWorktree(t)
	cfg.Packages = nil
	require.NoError(t, config.Validate(cfg))

	_, err := newStager(cfg, platform.Derive(cfg.BuildConfig, "windows")).Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), BoostPackage)
}

// TestLoadSettings applies command line overrides on top of the file.
func TestLoadSettings(t *testing.T) {
	t.Parallel()

	cfg := windowsWorktree(t)
	path := filepath.Join(t.TempDir(), config.DefaultConfigFilename)
	require.NoError(t, config.Save(path, cfg))

	loaded, err := loadSettings(&Options{ConfigPath: path})
	require.NoError(t, err)
	require.Equal(t, "vs2015", loaded.BuildConfig)

	override := t.TempDir()
	loaded, err = loadSettings(&Options{ConfigPath: path, Worktree: override, BuildConfig: "android-arm"})
	require.NoError(t, err)
	require.Equal(t, override, loaded.Worktree)
	require.Equal(t, "android-arm", loaded.BuildConfig)

	_, err = loadSettings(&Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestCountOtherInstances does not count the test process itself.
func TestCountOtherInstances(t *testing.T) {
	t.Parallel()

	self, err := os.Executable()
	require.NoError(t, err)

	count, err := countOtherInstances(filepath.Base(self))
	require.NoError(t, err)
	require.Zero(t, count)
}
