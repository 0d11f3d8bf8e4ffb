// Package version holds build metadata injected at link time via
// -ldflags "-X github.com/nowakemc/reporting-project/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
