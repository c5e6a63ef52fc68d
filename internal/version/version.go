// Package version carries the tool identity stamped into the output
// banner.
package version

const Name = "ts2gs"

// Version is overridden at release time:
//
//	go build -ldflags "-X github.com/gscript-labs/ts2gs/internal/version.Version=..."
var Version = "1.6.0"
