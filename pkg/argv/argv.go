// Package argv splits a flat token list into named flags and positional values.
//
// It does not know which flags exist. Every flag-looking token becomes a flag,
// everything else is positional:
//
//	--name=value   name = "value"
//	--name         name = "true"
//	--no-name      name = "false"
//	-abc           a, b, c = "true"
//	-n=value       n = "value"
//	--             stop; the rest is positional
//
// A bare flag never consumes the following token.
package argv

import (
	"sort"
	"strconv"
	"strings"
)

// Args is the result of Parse.
type Args struct {
	// Positional holds the non-flag tokens in order. Never nil.
	Positional []string

	flags map[string][]string
}

// Parse tokenizes tokens. It never fails.
func Parse(tokens []string) *Args {
	a := &Args{
		Positional: []string{},
		flags:      make(map[string][]string),
	}
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			a.Positional = append(a.Positional, tokens[i+1:]...)
			return a
		case strings.HasPrefix(tok, "--"):
			if !a.long(tok[2:]) {
				a.Positional = append(a.Positional, tok)
			}
		case len(tok) > 1 && tok[0] == '-' && !isNumber(tok):
			if !a.short(tok[1:]) {
				a.Positional = append(a.Positional, tok)
			}
		default:
			a.Positional = append(a.Positional, tok)
		}
	}
	return a
}

func (a *Args) long(body string) bool {
	if name, value, ok := strings.Cut(body, "="); ok {
		if name == "" {
			return false
		}
		a.set(name, value)
		return true
	}
	if body == "" {
		return false
	}
	if name, ok := strings.CutPrefix(body, "no-"); ok && name != "" {
		a.set(name, "false")
		return true
	}
	a.set(body, "true")
	return true
}

func (a *Args) short(body string) bool {
	names, value, hasValue := strings.Cut(body, "=")
	if names == "" {
		return false
	}
	for i, r := range names {
		last := i+len(string(r)) == len(names)
		if last && hasValue {
			a.set(string(r), value)
			continue
		}
		a.set(string(r), "true")
	}
	return true
}

func (a *Args) set(name, value string) {
	a.flags[name] = append(a.flags[name], value)
}

// Has reports whether the flag appeared at least once.
func (a *Args) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// String returns the last value given for name, or "".
func (a *Args) String(name string) string {
	v := a.flags[name]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

// Strings returns every value given for name, in order.
func (a *Args) Strings(name string) []string {
	v := a.flags[name]
	out := make([]string, len(v))
	copy(out, v)
	return out
}

// Bool interprets the last value for name with strconv.ParseBool.
// Missing flags and unparsable values are false.
func (a *Args) Bool(name string) bool {
	b, err := strconv.ParseBool(a.String(name))
	if err != nil {
		return false
	}
	return b
}

// Names returns the flag names seen, sorted.
func (a *Args) Names() []string {
	names := make([]string, 0, len(a.flags))
	for n := range a.flags {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// isNumber matches negative numbers like -5 or -.5 so they stay positional.
func isNumber(tok string) bool {
	if len(tok) < 2 || (tok[1] != '.' && (tok[1] < '0' || tok[1] > '9')) {
		return false
	}
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
