package version

import "github.com/nvisy/nvisy-sdk-go/pkg/nvisy"

// Version is the CLI release. It tracks the SDK release unless overridden
// at link time with -ldflags "-X .../internal/version.Version=...".
var Version = nvisy.Version

// GitCommit is set at link time.
var GitCommit = ""

// String returns the version with the commit suffix when known.
func String() string {
	if GitCommit == "" {
		return Version
	}
	return Version + " (" + GitCommit + ")"
}
