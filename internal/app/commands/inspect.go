package commands

import (
	"fmt"
	"strings"

	"argparse/internal/app"
	"argparse/pkg/argparse"
)

// Inspect prints what the parser made of the arguments, one item per line.
var Inspect = register(func(a *app.App, p *argparse.Parser) {
	p.Option("inspect [args...]", "show how the arguments were parsed", func(ctx *argparse.Context, args []string) error {
		var b strings.Builder
		fmt.Fprintf(&b, "option: %s\n", ctx.Option)
		for _, name := range ctx.Flags.Names() {
			fmt.Fprintf(&b, "flag %s: %s\n", name, strings.Join(ctx.Strings(name), ", "))
		}
		for i, arg := range args {
			fmt.Fprintf(&b, "arg %d: %s\n", i, arg)
		}
		a.Out(strings.TrimSuffix(b.String(), "\n"))
		return nil
	})
})
