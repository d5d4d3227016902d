package commands

import (
	"errors"
	"fmt"

	"argparse/internal/app"
	"argparse/pkg/argparse"
)

var ErrNoName = errors.New("greet needs a name")

var Greet = register(func(a *app.App, p *argparse.Parser) {
	p.OptionShort("g", "greet <name>", "greet someone (--greeting=Hi to change the greeting)", func(ctx *argparse.Context, args []string) error {
		if len(args) == 0 {
			return ErrNoName
		}
		greeting := a.Config.Greeting
		if ctx.Has("greeting") {
			greeting = ctx.String("greeting")
		}
		a.Out(fmt.Sprintf("%s, %s!", greeting, args[0]))
		return nil
	})
})
