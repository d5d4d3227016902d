// Package commands provides CLI command definitions for the application.
//
// Like a few other packages in this project, It uses a plugin style registration system
// simply because I like the pattern. If i need better go vet support later, swapping to
// a static list is trivial.
package commands

import (
	"argparse/internal/app"
	"argparse/pkg/argparse"
)

type RegFunc func(a *app.App, p *argparse.Parser)

var Registry []RegFunc

func register(rf RegFunc) RegFunc {
	if rf != nil {
		Registry = append(Registry, rf)
	}
	return rf
}

// RegisterAll applies every RegFunc to p.
func RegisterAll(a *app.App, p *argparse.Parser) *argparse.Parser {
	for _, rf := range Registry {
		rf(a, p)
	}
	return p
}
