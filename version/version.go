// Package version holds the build version, set with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
package version

// Version is the release this binary was built from.
var Version = "dev"
