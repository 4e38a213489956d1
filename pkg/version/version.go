package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Info describes the build of an executable
type Info struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Source   string `json:"source,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Time     string `json:"build_time,omitempty"`
	Platform string `json:"platform,omitempty"`
	Compiler string `json:"compiler"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set through ldflags at release time
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the release tag or branch set through ldflags, the
// vcs revision from build info, or "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if hash := setting("vcs.revision"); len(hash) >= 12 {
		return hash[:12]
	}
	return "dev"
}

// New returns build metadata for the named executable
func New(execName string) Info {
	info := Info{
		Name:     execName,
		Version:  Version(),
		Compiler: runtime.Version(),
		Hash:     setting("vcs.revision"),
		Time:     setting("vcs.time"),
	}
	if build, ok := debug.ReadBuildInfo(); ok {
		info.Source = build.Main.Path
	}
	if goos, goarch := setting("GOOS"), setting("GOARCH"); goos != "" && goarch != "" {
		info.Platform = goos + "/" + goarch
	}
	return info
}

// JSON returns build metadata for the named executable, JSON-encoded
func JSON(execName string) []byte {
	data, err := json.MarshalIndent(New(execName), "", "  ")
	if err != nil {
		panic(err)
	}
	return data
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// setting returns one key from the build settings, or an empty string
func setting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return ""
}
