// Package version exposes build metadata injected via ldflags and a cobra
// `version` subcommand printing it.
package version
