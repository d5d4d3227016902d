package argparse

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidOption is returned by Run when the first token names no command.
var ErrInvalidOption = errors.New("invalid option")

// Parse dispatches the process arguments, without the executable path.
func (p *Parser) Parse() *Parser {
	return p.ParseArgs(os.Args[1:])
}

// ParseString splits s on whitespace and dispatches the result.
func (p *Parser) ParseString(s string) *Parser {
	return p.ParseArgs(strings.Fields(s))
}

// ParseArgs dispatches args. A handler error is logged and dropped; use Run
// to receive it.
func (p *Parser) ParseArgs(args []string) *Parser {
	if err := p.Run(args); err != nil && !errors.Is(err, ErrInvalidOption) && p.log != nil {
		p.log.Errorf("command failed: %v", err)
	}
	return p
}

// Run dispatches args and returns the handler's error.
//
// If the first token is missing, empty, or starts with '-', every token goes to
// the default handler. If it names a command or alias, it is consumed and the
// rest goes to that command. Otherwise the invalid option message is written
// to the output and an error wrapping ErrInvalidOption is returned.
func (p *Parser) Run(args []string) error {
	if len(args) == 0 || args[0] == "" || strings.HasPrefix(args[0], "-") {
		ctx := newContext(DefaultOption, args)
		p.debugf("dispatching default action with %d positional args", len(ctx.Args))
		return p.exec(p.defaultHandler, ctx)
	}

	first := args[0]
	e, ok := p.lookup(first)
	if !ok {
		p.out("INVALID OPTION: " + first + "\nTry \"help\" for a list of available commands")
		return fmt.Errorf("%w: %s", ErrInvalidOption, first)
	}

	ctx := newContext(first, args[1:])
	p.debugf("dispatching %q as %q with %d positional args", first, e.Key, len(ctx.Args))
	return p.exec(e.Handler, ctx)
}

func (p *Parser) exec(h Handler, ctx *Context) error {
	if p.preRun != nil {
		if err := p.preRun(ctx, ctx.Args); err != nil {
			return fmt.Errorf("pre-run: %w", err)
		}
	}
	return h(ctx, ctx.Args)
}

func (p *Parser) debugf(format string, args ...any) {
	if p.log != nil {
		p.log.Debugf(format, args...)
	}
}
