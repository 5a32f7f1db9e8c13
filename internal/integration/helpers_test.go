package integration

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/jnistage/internal/config"
	"github.com/oshokin/jnistage/internal/service/stager"
)

// fixture is a fake qibuild worktree with settings written next to it.
type fixture struct {
	root       string
	configPath string
}

// newFixture builds libqi and the JNI bindings for buildConfig and ships Boost
// in a toolchain package.
func newFixture(t *testing.T, buildConfig string) *fixture {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("end-to-end scenarios use the symlink strategy")
	}

	root := t.TempDir()
	f := &fixture{
		root:       root,
		configPath: filepath.Join(root, config.DefaultConfigFilename),
	}

	f.write(t, f.sdk("lib/libqi", buildConfig, "lib", "libqi.so"))
	f.write(t, f.sdk("sdk/libqi-java/jni", buildConfig, "lib", "libqimessagingjni.so"))
	f.write(t, filepath.Join(root, "toolchain", "boost", "lib", "libboost_thread.so"))
	f.write(t, filepath.Join(root, "toolchain", "boost", "lib", "libboost_date_time.so"))
	f.write(t, filepath.Join(root, "toolchain", "boost", "lib", "libboost_thread.a"))

	settings := &config.Config{
		Worktree:    ".",
		BuildConfig: buildConfig,
		JavaProject: "sdk/libqi-java/qimessaging",
		Projects: map[string]string{
			stager.LibqiProject: "lib/libqi",
			stager.JNIProject:   "sdk/libqi-java/jni",
		},
		Packages: map[string]string{stager.BoostPackage: "toolchain/boost"},
	}
	require.NoError(t, config.Save(f.configPath, settings))

	return f
}

// sdk returns a path inside the sdk output directory of a project.
func (f *fixture) sdk(project, buildConfig string, elems ...string) string {
	parts := append([]string{f.root, project, "build-" + buildConfig, "sdk"}, elems...)

	return filepath.Join(parts...)
}

func (f *fixture) write(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(filepath.Base(path)), 0o644))
}

func (f *fixture) destination(dir string) string {
	return filepath.Join(f.root, "sdk", "libqi-java", "qimessaging", dir)
}

// links returns link name -> link target for every entry of dir.
func links(t *testing.T, dir string) map[string]string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	result := make(map[string]string, len(entries))

	for _, e := range entries {
		require.NotZero(t, e.Type()&os.ModeSymlink, e.Name())

		target, err := os.Readlink(filepath.Join(dir, e.Name()))
		require.NoError(t, err)

		result[e.Name()] = target
	}

	return result
}
