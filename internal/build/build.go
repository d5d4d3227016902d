// Package build provides build-time information about the application.
package build

import (
	"encoding/json"
	"strings"

	"golang.org/x/mod/semver"
)

// set by -ldflags "-X argparse/internal/build.version=..."
var (
	name            string
	version         string
	description     string
	defaultLogLevel string
)

type BuildInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	Description     string `json:"description"`
	DefaultLogLevel string `json:"defaultLogLevel"`
}

// PrintJSON returns the build info as JSON.
func (b BuildInfo) PrintJSON() string {
	data, err := json.Marshal(b)
	if err != nil {
		return ""
	}
	return string(data)
}

func Info() BuildInfo {
	n := name
	if n == "" {
		n = "argdemo"
	}
	desc := description
	if desc == "" {
		desc = "demo of the argparse command registry"
	}
	logLevel := defaultLogLevel
	if logLevel == "" {
		// fallback to WARN
		logLevel = "warn"
	}
	return BuildInfo{
		Name:            n,
		Version:         DisplayVersion(version),
		Description:     desc,
		DefaultLogLevel: logLevel,
	}
}

// DisplayVersion turns a semver tag into its display form ("v1.2.3" -> "1.2.3",
// "1.2" -> "1.2.0"). Anything that is not semver is returned as is.
func DisplayVersion(v string) string {
	tagged := v
	if !strings.HasPrefix(tagged, "v") {
		tagged = "v" + tagged
	}
	if !semver.IsValid(tagged) {
		return v
	}
	return strings.TrimPrefix(semver.Canonical(tagged), "v")
}
