// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import (
	"os"
	"strings"
)

// Mode controls where options may appear in the argument vector.
type Mode int

const (
	// Mixed keeps scanning for options after positional arguments.
	Mixed Mode = iota
	// OptionsFirst ends option scanning at the first positional
	// argument; every later token is positional.
	OptionsFirst
)

// Parser holds the registered options and positional slots and parses
// argument vectors against them.
//
// Registration and parsing are separate phases: register everything
// first, then call Parse as often as needed. Parse does not mutate the
// Parser, so concurrent Parse calls are safe as long as no AddOption or
// AddPositional call runs alongside them.
type Parser struct {
	mode        Mode
	options     map[string]Option
	aliases     map[string]string
	positionals []Positional
}

// New returns an empty Parser using the given mode.
func New(mode Mode) *Parser {
	return &Parser{
		mode:    mode,
		options: make(map[string]Option),
		aliases: make(map[string]string),
	}
}

// AddOption registers an option. It fails without mutating the parser
// if the name or alias is malformed or already taken.
func (p *Parser) AddOption(opt Option) error {
	if !validName(opt.Name) {
		return &InvalidOptionError{Name: opt.Name}
	}
	if _, ok := p.options[opt.Name]; ok {
		return &DuplicateOptionError{Name: opt.Name}
	}
	if opt.Alias != "" {
		if !validAlias(opt.Alias) {
			return &InvalidAliasError{Alias: opt.Alias}
		}
		if _, ok := p.aliases[opt.Alias]; ok {
			return &DuplicateAliasError{Alias: opt.Alias}
		}
	}
	p.options[opt.Name] = opt
	if opt.Alias != "" {
		p.aliases[opt.Alias] = opt.Name
	}
	return nil
}

// AddPositional registers a positional slot. A Rest slot must be the
// last slot registered; any registration after it fails.
func (p *Parser) AddPositional(pos Positional) error {
	if n := len(p.positionals); n > 0 && p.positionals[n-1].Kind == Rest {
		return &InvalidRestPositionError{}
	}
	p.positionals = append(p.positionals, pos)
	return nil
}

// ParseProcessArgs parses the process argument vector, excluding the
// program name.
func (p *Parser) ParseProcessArgs() ([]ParsedArg, error) {
	return p.Parse(os.Args[1:])
}

// Parse scans args left to right and returns the parsed entries in
// token order. On the first rule violation it returns a structured
// error and discards the partial result.
func (p *Parser) Parse(args []string) ([]ParsedArg, error) {
	s := scan{
		parser: p,
		// Copy: declustering pushes synthesized tokens onto the front.
		queue: append([]string(nil), args...),
		seen:  make(map[string]bool),
	}

	scanning := true
	for len(s.queue) > 0 {
		tok := s.queue[0]
		s.queue = s.queue[1:]

		// First "--" ends option scanning and emits nothing. Later
		// occurrences are ordinary positionals.
		if scanning && tok == "--" {
			scanning = false
			continue
		}

		if scanning && strings.HasPrefix(tok, "-") {
			if err := s.option(tok); err != nil {
				return nil, err
			}
			continue
		}

		s.out = append(s.out, PositionalArg{Value: tok})
		if p.mode == OptionsFirst {
			scanning = false
		}
	}

	expected := 0
	for _, pos := range p.positionals {
		if pos.Kind == Named {
			expected++
		}
	}
	got := 0
	for _, arg := range s.out {
		if _, ok := arg.(PositionalArg); ok {
			got++
		}
	}
	// A Rest slot absorbs any excess; only Named slots set a minimum.
	if got < expected {
		return nil, &MissingArgsError{Expected: expected, Got: got}
	}
	return s.out, nil
}

// scan is the transient state of one Parse call.
type scan struct {
	parser *Parser
	queue  []string
	out    []ParsedArg
	seen   map[string]bool
}

// option consumes one option-reference token. tok starts with "-" and
// is not a pending "--" terminator.
func (s *scan) option(tok string) error {
	var (
		name     string
		value    string
		viaAlias bool
		alias    string
	)

	if rest, ok := strings.CutPrefix(tok, "--"); ok {
		name, value, _ = strings.Cut(rest, "=")
		if !validName(name) {
			return &InvalidOptionError{Name: name}
		}
	} else {
		viaAlias = true
		remainder := ""
		if len(tok) > 1 {
			alias, remainder = tok[1:2], tok[2:]
		}
		if !validAlias(alias) {
			return &InvalidAliasError{Alias: alias}
		}
		var ok bool
		if name, ok = s.parser.aliases[alias]; !ok {
			return &UnknownAliasError{Alias: alias}
		}
		value = remainder
	}

	opt, ok := s.parser.options[name]
	if !ok {
		return &UnknownOptionError{Name: name}
	}

	if viaAlias {
		if rest, ok := strings.CutPrefix(value, "="); ok {
			value = rest
		} else if opt.Kind == KindFlag && value != "" {
			// A flag reference with a trailing remainder is a cluster of
			// short options: rescan the remainder as its own token.
			s.queue = append([]string{"-" + value}, s.queue...)
			value = ""
		}
	}

	switch opt.Kind {
	case KindFlag:
		if value != "" && value != "true" && value != "false" {
			if viaAlias {
				return &InvalidAliasValueError{Alias: alias, Value: value}
			}
			return &InvalidOptionValueError{Name: name, Value: value}
		}
		s.out = append(s.out, FlagArg{Name: name, Value: value != "false"})
	case KindRequiredValue:
		if value == "" {
			// One token of lookahead: consume the next token as the
			// value unless it is itself shaped like an option reference.
			if len(s.queue) == 0 || strings.HasPrefix(s.queue[0], "-") {
				if viaAlias {
					return &MissingAliasValueError{Alias: alias}
				}
				return &MissingOptionValueError{Name: name}
			}
			value, s.queue = s.queue[0], s.queue[1:]
		}
		s.out = append(s.out, RequiredValueArg{Name: name, Value: value})
	case KindOptionalValue:
		s.out = append(s.out, OptionalValueArg{Name: name, Value: value, HasValue: value != ""})
	}

	// Duplicate detection runs after value resolution, so a missing or
	// malformed value wins over the duplicate report.
	if !opt.Repeatable && s.seen[name] {
		if viaAlias {
			return &DuplicateAliasError{Alias: alias}
		}
		return &DuplicateOptionError{Name: name}
	}
	s.seen[name] = true
	return nil
}
