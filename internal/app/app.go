// Package app implements the application, following the dependency injection pattern.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"argparse/internal/build"
	"argparse/internal/config"
	"argparse/pkg/argparse"
	"argparse/pkg/x"

	"github.com/Data-Corruption/stdx/xlog"
)

type CleanupFunc func() error

/*
App represents the application, following the dependency injection pattern.

It provides:
  - build-time variables
  - injected services (logger, config, output sink)
  - lifecycle management
*/
type App struct {
	Info build.BuildInfo

	// injected services, etc.

	Log        *xlog.Logger
	Config     config.Config
	Out        argparse.Output // every user-facing line goes through here
	StorageDir string          // (e.g., ~/.<Name>)

	// lifecycle management
	cleanup       []CleanupFunc
	cleanupOnce   sync.Once
	postCleanup   CleanupFunc
	postCleanupMu sync.Mutex
}

func New(info build.BuildInfo) *App {
	return &App{
		Info:   info,
		Config: config.Default(),
		Out:    func(s string) { fmt.Fprintln(os.Stdout, s) },
	}
}

// Init resolves paths, loads the config file and starts the logger.
// Log level precedence: $<NAME>_LOG, then config logLevel, then the build default.
func (a *App) Init() error {
	var err error
	if a.StorageDir == "" {
		if a.StorageDir, err = getStoragePath(a.Info.Name); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(a.StorageDir, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	// config
	if a.Config, err = config.Load(config.Path(a.Info.Name, a.StorageDir)); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// logger
	level := os.Getenv(config.EnvPrefix(a.Info.Name) + "_LOG")
	level = x.Ternary(level != "", level, x.Ternary(a.Config.LogLevel != "", a.Config.LogLevel, a.Info.DefaultLogLevel))
	a.Log, err = xlog.New(filepath.Join(a.StorageDir, "logs"), level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.AddCleanup(a.Log.Close)

	a.Log.Debugf("Starting %s, version: %s, storage path: %s", a.Info.Name, a.Info.Version, a.StorageDir)
	return nil
}

func (a *App) Close() {
	a.cleanupOnce.Do(func() {
		// call cleanup funcs in reverse order
		for i := len(a.cleanup) - 1; i >= 0; i-- {
			if err := a.cleanup[i](); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to clean up: %v\n", err)
			}
		}
		// call post cleanup func if set
		a.postCleanupMu.Lock()
		defer a.postCleanupMu.Unlock()
		if a.postCleanup != nil {
			if err := a.postCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Post cleanup failure: %v\n", err)
			}
		}
	})
}

func (a *App) AddCleanup(f func() error) {
	a.cleanup = append(a.cleanup, f)
}

var ErrPostCleanupSet = errors.New("post cleanup already set")

// SetPostCleanup sets the post cleanup func. It returns an error if it's already set.
func (a *App) SetPostCleanup(f func() error) error {
	a.postCleanupMu.Lock()
	defer a.postCleanupMu.Unlock()

	if a.postCleanup != nil {
		return ErrPostCleanupSet
	}

	a.postCleanup = f
	return nil
}

// NewParser returns a Parser described by the build info and config,
// writing to a.Out and logging to a.Log. Commands are not registered here.
func (a *App) NewParser() *argparse.Parser {
	return argparse.New(a.Out, argparse.WithLogger(a.Log)).
		Describe(a.Info.Name, a.Info.Description).
		Version(a.Info.Version).
		Epilog(a.Config.Epilog).
		PreRun(func(ctx *argparse.Context, args []string) error {
			if a.Log != nil {
				a.Log.Debugf("Invoking %q, flags: %v, args: %q", ctx.Option, ctx.Flags.Names(), args)
			}
			return nil
		})
}

// getStoragePath calculates the storage path for the application (~/.appName).
func getStoragePath(appName string) (string, error) {
	home, err := x.GetUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+appName), nil
}
