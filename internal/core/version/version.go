// Package version reports the build stamp of the binaries
package version

import "runtime/debug"

// BuildInfo is the build stamp
type BuildInfo struct {
	Service string `json:"service"   example:"sktmorph-api"`
	Version string `json:"version"   example:"v0.3.0"`
	Commit  string `json:"commit"    example:"9f2c1e4"`
	Date    string `json:"date"      example:"2026-10-01"`
	Go      string `json:"go"        example:"go1.25.0"`
}

// Set with -ldflags "-X sktmorph/internal/core/version.version=v0.3.0 -X sktmorph/internal/core/version.commit=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	readBuildInfo = debug.ReadBuildInfo
)

// Info returns the stamp for service. Unset commit and date fall back to the
// VCS settings the toolchain embeds
func Info(service string) BuildInfo {
	bi := BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	bi.Go = info.GoVersion
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}
