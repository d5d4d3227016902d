// Package clibridge mounts an argparse.Parser inside a urfave/cli command tree.
//
// The mounted command skips urfave's own flag parsing, so everything after
// its name reaches the Parser untouched.
package clibridge

import (
	"context"

	"argparse/pkg/argparse"

	"github.com/urfave/cli/v3"
)

// Command returns a cli.Command named name that dispatches its arguments
// through p. Errors from p.Run, including argparse.ErrInvalidOption, are
// returned to urfave/cli.
func Command(p *argparse.Parser, name, usage string, aliases ...string) *cli.Command {
	return &cli.Command{
		Name:            name,
		Aliases:         aliases,
		Usage:           usage,
		SkipFlagParsing: true,
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return p.Run(cmd.Args().Slice())
		},
	}
}
