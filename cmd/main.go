package main

import (
	"errors"
	"fmt"
	"os"

	"argparse/internal/app"
	"argparse/internal/app/commands"
	"argparse/internal/build"
	"argparse/pkg/argparse"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	app := app.New(build.Info())
	defer app.Close()

	if err := app.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	p := commands.RegisterAll(app, app.NewParser())
	p.Default(func(ctx *argparse.Context, _ []string) error {
		switch {
		case ctx.Bool("build-vars"):
			app.Out(app.Info.PrintJSON())
		case ctx.Bool("version"):
			p.ShowVersion()
		default:
			app.Log.Info("Ran without a command.")
			p.ShowHelp()
		}
		return nil
	})

	if err := p.Run(args); err != nil {
		app.Log.Errorf("%v", err)
		if !errors.Is(err, argparse.ErrInvalidOption) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
