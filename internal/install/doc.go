// Package install places resolved artifacts into the destination directory.
//
// The strategy comes from the platform profile: symlink-capable hosts get a
// link per artifact, other hosts get a checksum-verified copy applied with
// go-update. Existing entries with the same name are replaced, so running an
// install twice leaves the same final state.
package install
