// Package cmd holds the build metadata of the dev-agents binary.
//
// Release builds stamp it through the linker:
//
//	go build -ldflags "-X github.com/thoreinstein/devagents/cmd.Version=v1.2.0 \
//		-X github.com/thoreinstein/devagents/cmd.Commit=abc1234 \
//		-X github.com/thoreinstein/devagents/cmd.BuildDate=2026-01-02"
//
// Unstamped builds (go install, go build) fall back to what the Go
// toolchain records in the binary.
package cmd

import "runtime/debug"

// Linker-stamped values. Empty means not stamped.
var (
	Version   = ""
	Commit    = ""
	BuildDate = ""
)

// Info is the resolved build metadata.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

// BuildInfo resolves the metadata of the running binary.
func BuildInfo() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Info{Version: Version, Commit: Commit, BuildDate: BuildDate}, bi)
}

func resolve(stamped Info, bi *debug.BuildInfo) Info {
	info := stamped
	if bi != nil {
		if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.BuildDate == "":
				info.BuildDate = s.Value
			}
		}
	}

	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}
