package argparse

import "argparse/pkg/argv"

// DefaultOption is Context.Option when the default handler runs.
const DefaultOption = "default"

// Context is built fresh for every dispatch and handed to the pre-run hook
// and the handler.
type Context struct {
	// Option is the token that selected the command, exactly as typed
	// (alias or key), or DefaultOption.
	Option string
	// Flags holds the named flags found after the command token.
	Flags *argv.Args
	// Args holds the positional values after the command token.
	Args []string
}

func newContext(option string, tokens []string) *Context {
	flags := argv.Parse(tokens)
	return &Context{
		Option: option,
		Flags:  flags,
		Args:   flags.Positional,
	}
}

// Has reports whether flag name was given.
func (c *Context) Has(name string) bool { return c.Flags.Has(name) }

// String returns the last value of flag name.
func (c *Context) String(name string) string { return c.Flags.String(name) }

// Strings returns all values of flag name.
func (c *Context) Strings(name string) []string { return c.Flags.Strings(name) }

// Bool returns flag name as a boolean.
func (c *Context) Bool(name string) bool { return c.Flags.Bool(name) }

// Arg returns positional value i, or "" if there are fewer values.
func (c *Context) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
