// Package buildinfo exposes version metadata injected at link time via
// -ldflags "-X stockctl/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// String renders the build metadata on one line for --version output.
func String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", Version, Date, Commit)
}
