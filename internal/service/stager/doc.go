// Package stager copies the JNI library and its native dependencies into the
// resource folder of the qimessaging Java project.
//
// It loads the worktree settings, derives the platform profile, resolves the
// library manifest together with the Boost libraries and installs everything
// into native/ (or native-android/ for the cross-compiled variant).
package stager
