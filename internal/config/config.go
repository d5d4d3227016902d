// Package config loads the optional JSONC settings file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"
)

const FileName = "config.jsonc"

type Config struct {
	LogLevel string `json:"logLevel"` // overrides the build default, see app.Init for precedence
	Epilog   string `json:"epilog"`   // appended to help output
	Greeting string `json:"greeting"` // used by greet when --greeting is absent
}

func Default() Config {
	return Config{Greeting: "Hello"}
}

// Path returns the config file location: $<NAME>_CONFIG if set, otherwise
// <storageDir>/config.jsonc.
func Path(appName, storageDir string) string {
	if p := os.Getenv(EnvPrefix(appName) + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(storageDir, FileName)
}

// EnvPrefix turns an app name into an environment variable prefix
// ("arg-demo" -> "ARG_DEMO").
func EnvPrefix(appName string) string {
	return strings.ToUpper(strings.ReplaceAll(appName, "-", "_"))
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(b), &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
