// Package artifact defines the values exchanged by the staging pipeline:
// build units, dependency packages, manifest entries, resolved artifacts and
// the destination directory.
package artifact
