// Package version holds build-time version info for cronparse.
// Values are injected into main with -ldflags and passed down as an Info.
package version

import "fmt"

// Info describes a cronparse build.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// String returns the multi-line description printed by `cronparse version`.
func (i Info) String() string {
	return fmt.Sprintf("cronparse %s\nCommit: %s\nBuilt: %s", i.Version, i.Commit, i.BuildDate)
}
