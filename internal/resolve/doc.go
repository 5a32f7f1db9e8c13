// Package resolve turns a library manifest into the list of files to stage.
//
// Locate finds one compiled library inside a build unit output directory,
// Collect filters the shipped libraries of a dependency package, and Build
// runs both over a manifest, failing fast on the first unresolved entry.
package resolve
