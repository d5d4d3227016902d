package commands

import (
	"strings"

	"argparse/internal/app"
	"argparse/pkg/argparse"
)

var Echo = register(func(a *app.App, p *argparse.Parser) {
	p.OptionShort("e", "echo [words...]", "print the words back (--upper to shout)", func(ctx *argparse.Context, args []string) error {
		out := strings.Join(args, " ")
		if ctx.Bool("upper") {
			out = strings.ToUpper(out)
		}
		a.Out(out)
		return nil
	})
})
