// Package version exposes build metadata for the repoview binary.
// The version itself can be stamped via -ldflags; everything else is
// read from the build info the Go toolchain embeds in the binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Version is the release version, overridable at build time:
//
//	go build -ldflags "-X github.com/yeisme/repoview/pkg/utils/version.Version=1.2.3"
var Version = "dev"

// Info is the version document printed by `repoview version --json`.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion assembles version information from the stamped Version and
// the embedded VCS build settings. A commit from a dirty working tree is
// marked with a "-dirty" suffix.
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: "unknown",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}

	dirty := false
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = s.Value
		case "vcs.time":
			info.BuildDate = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && info.GitCommit != "unknown" {
		info.GitCommit += "-dirty"
	}
	return info
}

// GetVersionString returns the detailed one-line version description.
func GetVersionString() string {
	info := GetVersion()
	return fmt.Sprintf("repoview has version %s built with %s from %s on %s (%s)",
		info.Version,
		info.GoVersion,
		info.GitCommit,
		info.BuildDate,
		info.Platform,
	)
}

// GetShortVersionString returns a short version string similar to gh.
func GetShortVersionString() string {
	info := GetVersion()

	dateStr := info.BuildDate
	if buildTime, err := time.Parse(time.RFC3339, info.BuildDate); err == nil {
		dateStr = buildTime.Format("2006-01-02")
	}

	return fmt.Sprintf("repoview version %s (%s)\nhttps://github.com/yeisme/repoview/releases/tag/v%s",
		info.Version,
		dateStr,
		info.Version,
	)
}
