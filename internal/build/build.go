// Package build holds the originctl version reported by "originctl version"
// and --version.
package build

// Version defaults to "dev". Release builds set it with
// -ldflags "-X go.trai.ch/origin/internal/build.Version=<tag>".
var Version = "dev"
