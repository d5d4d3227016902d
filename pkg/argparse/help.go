package argparse

import (
	"fmt"
	"sort"
	"strings"
)

// ShowHelp writes the name, description, command list and epilog to the
// output in a single call.
func (p *Parser) ShowHelp() *Parser {
	var b strings.Builder
	b.WriteString(" ")
	if p.name != "" {
		b.WriteString(p.name + ": ")
	}
	b.WriteString(p.description + "\n\n")

	lines := make([]string, 0, len(p.commands))
	for _, e := range p.commands {
		lines = append(lines, fmt.Sprintf("     %-*s%s", p.width+5, e.Display, e.Description))
	}
	// sorted by rendered line, not by key
	sort.Strings(lines)
	b.WriteString(strings.Join(lines, "\n") + "\n")

	if p.epilog != "" {
		b.WriteString("\n " + p.epilog)
	}
	p.out(b.String())
	return p
}

// ShowVersion writes "name version", or just the version when no name is set.
func (p *Parser) ShowVersion() *Parser {
	if p.name != "" {
		p.out(p.name + " " + p.version)
		return p
	}
	p.out(p.version)
	return p
}
