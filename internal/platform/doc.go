// Package platform derives the host facts the staging pipeline depends on:
// whether the cross-compiled (Android) variant is active, which file
// extensions denote a shared library, and whether artifacts are installed as
// symlinks or as copies.
//
// A Profile is computed once per run and passed down as a value, so the
// symlink/copy decision is never re-derived from runtime.GOOS elsewhere.
package platform
