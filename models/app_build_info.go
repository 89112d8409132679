package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the version stamp set with -ldflags at build time. The
// server falls back to it for /api/version and the client shows it on the
// login screen.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo replaces every empty value with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	pick := func(v string) string {
		if v == "" {
			return notAvailable
		}
		return v
	}
	return AppBuildInfo{version: pick(version), date: pick(date), commit: pick(commit)}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, built %s, commit %s", a.version, a.date, a.commit)
}
