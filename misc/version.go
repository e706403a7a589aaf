// Package misc holds build time information about the program.
package misc

import (
	"runtime/debug"
)

// Set by the linker: -X subc/misc.version=... -X subc/misc.gitHash=...
var (
	version = "dev"
	gitHash = ""
)

const appName = "subc"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns the linker provided hash, falling back to VCS
// information embedded by the go tool.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
