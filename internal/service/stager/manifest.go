package stager

import (
	"path/filepath"

	"github.com/oshokin/jnistage/internal/domain/artifact"
	"github.com/oshokin/jnistage/internal/platform"
)

const (
	// LibqiProject is the build unit of the core library.
	LibqiProject = "libqi"
	// JNIProject is the build unit of the JNI bindings.
	JNIProject = "qimessaging-jni"
	// BoostPackage is the toolchain package shipping the Boost libraries.
	BoostPackage = "boost"

	nativeDirName        = "native"
	nativeAndroidDirName = "native-android"
)

// Manifest returns the libraries to stage for profile. The cross-compiled
// variant also ships the shared C++ runtime next to the bindings.
func Manifest(profile platform.Profile) []artifact.ManifestEntry {
	manifest := []artifact.ManifestEntry{
		{Unit: LibqiProject, Library: "qi"},
		{Unit: JNIProject, Library: "qimessagingjni"},
	}

	if profile.IsCrossVariant {
		manifest = append(manifest, artifact.ManifestEntry{Unit: JNIProject, Library: "gnustl_shared"})
	}

	return manifest
}

// DestinationFor returns the resource directory of the Java project for profile.
func DestinationFor(javaProjectPath string, profile platform.Profile) artifact.Destination {
	dir := nativeDirName
	if profile.IsCrossVariant {
		dir = nativeAndroidDirName
	}

	return artifact.Destination{Directory: filepath.Join(javaProjectPath, dir)}
}
