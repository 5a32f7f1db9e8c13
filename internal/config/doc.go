// Package config defines the staging settings and provides helpers to load,
// validate and save them in YAML format.
//
// The settings describe the worktree: where projects live relative to its
// root, which build configuration was used, where toolchain packages are
// installed and which Java project receives the staged libraries.
package config
