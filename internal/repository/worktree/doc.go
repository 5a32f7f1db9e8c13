// Package worktree maps project and package names from the settings file to
// locations on disk.
//
// The Registry plays the part of the build worktree and the toolchain: it
// knows where each project lives, where its build output is and where a
// toolchain package keeps its shared libraries.
package worktree
