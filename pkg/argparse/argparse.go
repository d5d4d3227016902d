// Package argparse is a small command registry and dispatcher.
//
// Commands are registered by name, optionally with a short alias, and a raw
// argument list is dispatched to the matching handler:
//
//	p := argparse.New(func(s string) { fmt.Println(s) }).
//		Describe("tool", "does things").
//		Version("1.0.0").
//		OptionShort("b", "build [target]", "build a target", build)
//	p.Parse()
//
// help (H) and version (V) are registered on every Parser. Setters return the
// Parser so calls chain; invalid registrations are ignored rather than reported.
// A Parser is not safe for concurrent configuration, but dispatch only reads it.
package argparse

import (
	"fmt"
	"os"
	"strings"

	"argparse/pkg/x"

	"github.com/Data-Corruption/stdx/xlog"
)

const defaultVersion = "0.0.0"

// Output receives every rendered help, version and error message.
type Output func(string)

// Handler runs a command. args is ctx.Args, given separately for convenience.
type Handler func(ctx *Context, args []string) error

// Entry is one registered command.
type Entry struct {
	Key         string // canonical name, no spaces
	Alias       string // optional short form
	Description string
	Tag         string // usage annotation such as "[file]", display only
	Display     string // left column of help output
	Handler     Handler
}

// Parser holds the registered commands and metadata.
type Parser struct {
	name        string
	description string
	version     string
	epilog      string

	commands map[string]*Entry
	aliases  map[string]string

	defaultHandler Handler
	preRun         Handler

	out   Output
	log   *xlog.Logger
	width int
}

// ParserOption configures a Parser at construction.
type ParserOption func(*Parser)

// WithLogger makes the Parser log dispatch decisions and swallowed handler
// errors to l.
func WithLogger(l *xlog.Logger) ParserOption {
	return func(p *Parser) { p.log = l }
}

// New returns a Parser writing to out, or to stdout when out is nil.
func New(out Output, opts ...ParserOption) *Parser {
	if out == nil {
		out = func(s string) { fmt.Fprintln(os.Stdout, s) }
	}
	p := &Parser{
		version:  defaultVersion,
		commands: make(map[string]*Entry),
		aliases:  make(map[string]string),
		out:      out,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.defaultHandler = p.helpHandler
	p.OptionShort("H", "help", "show this help information", p.helpHandler)
	p.OptionShort("V", "version", "show version information", p.versionHandler)
	return p
}

func (p *Parser) helpHandler(*Context, []string) error {
	p.ShowHelp()
	return nil
}

func (p *Parser) versionHandler(*Context, []string) error {
	p.ShowVersion()
	return nil
}

// Description sets the description shown at the top of the help text.
func (p *Parser) Description(text string) *Parser {
	p.description = text
	return p
}

// Describe sets both the program name and its description.
func (p *Parser) Describe(name, text string) *Parser {
	p.name = name
	p.description = text
	return p
}

// Version sets the version string verbatim. An empty string restores 0.0.0.
func (p *Parser) Version(v string) *Parser {
	if v == "" {
		v = defaultVersion
	}
	p.version = v
	return p
}

// Epilog sets text printed after the command list. An empty string clears it.
func (p *Parser) Epilog(text string) *Parser {
	p.epilog = text
	return p
}

// Default replaces the handler run when no command is given or the first
// token is a flag. Help is shown by default. A nil handler is ignored.
func (p *Parser) Default(h Handler) *Parser {
	if h != nil {
		p.defaultHandler = h
	}
	return p
}

// PreRun sets a handler run before every dispatched handler, including the
// default one. A nil handler is ignored.
func (p *Parser) PreRun(h Handler) *Parser {
	if h != nil {
		p.preRun = h
	}
	return p
}

// Option registers a command. name may end in a usage tag starting with
// '[' or '<', which is displayed but not matched. Spaces in the remaining
// name become hyphens. Registering an existing key replaces it.
func (p *Parser) Option(name, description string, h Handler) *Parser {
	return p.OptionShort("", name, description, h)
}

// OptionShort is Option with a short alias, displayed as "alias, name [tag]".
func (p *Parser) OptionShort(alias, name, description string, h Handler) *Parser {
	if h == nil {
		return p
	}
	key, tag := splitTag(name)
	if key == "" {
		return p
	}

	parts := make([]string, 0, 2)
	if alias != "" {
		p.aliases[alias] = key
		parts = append(parts, alias+",")
	}
	parts = append(parts, key)
	if tag != "" {
		parts = append(parts, tag)
	}

	e := &Entry{
		Key:         key,
		Alias:       alias,
		Description: strings.TrimSpace(description),
		Tag:         tag,
		Display:     strings.Join(parts, " "),
		Handler:     h,
	}
	p.commands[key] = e
	p.width = max(p.width, len(e.Display))
	return p
}

// splitTag separates "cmd name [tag] <tag>" into "cmd-name" and "[tag] <tag>".
func splitTag(name string) (key, tag string) {
	key = name
	if i := strings.IndexAny(name, "[<"); i >= 0 {
		key, tag = name[:i], strings.TrimSpace(name[i:])
	}
	key = strings.ReplaceAll(strings.TrimSpace(key), " ", "-")
	return key, tag
}

// Lookup resolves a key or alias to its entry.
func (p *Parser) Lookup(token string) (Entry, bool) {
	e, ok := p.lookup(token)
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

func (p *Parser) lookup(token string) (*Entry, bool) {
	if e, ok := p.commands[token]; ok {
		return e, true
	}
	if key, ok := p.aliases[token]; ok {
		e, ok := p.commands[key]
		return e, ok
	}
	return nil, false
}

// Commands returns the registered entries sorted by key.
func (p *Parser) Commands() []Entry {
	keys := x.SortedKeys(p.commands)
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		out = append(out, *p.commands[k])
	}
	return out
}
