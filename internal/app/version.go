package app

import (
	"fmt"
	"runtime/debug"
)

// Release metadata, normally injected at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/moviemood-backend/internal/app.Version=1.4.0"
//
// Commit and BuildTime fall back to the VCS stamp embedded by the Go
// toolchain when left unset.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

var readBuildInfo = debug.ReadBuildInfo

// BuildVersion returns the version string reported in startup logs and by
// the health endpoint.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime, dirty := vcsStamp()
		if commit == "" {
			commit = vcsCommit
			if dirty && commit != "" {
				commit += "-dirty"
			}
		}
		if built == "" {
			built = vcsTime
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsStamp() (revision, at string, dirty bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return revision, at, dirty
}
