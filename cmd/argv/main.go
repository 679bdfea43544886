// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argv parses an argument vector against a declared option set
// and prints the structured result.
//
// The option set comes from a schema file (-s); without one, every
// token must be positional. The tool's own flags are parsed with the
// same library it demonstrates, in options-first mode, so everything
// after the first positional (or after "--") is handed to the loaded
// parser untouched:
//
//	argv -s cli.toml -- --verbose --output out.txt input.txt
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/yeetrun/argv/pkg/argv"
	"github.com/yeetrun/argv/pkg/schema"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: argv [-s schema.{toml,yaml}] [-m mixed|options-first] [-j] [-q] [--] args...")
}

// selfParser accepts the tool's own flags. Registration cannot fail:
// the names are static and valid.
func selfParser() *argv.Parser {
	p := argv.New(argv.OptionsFirst)
	for _, opt := range []argv.Option{
		argv.NewRequiredValue("schema").WithAlias("s"),
		argv.NewRequiredValue("mode").WithAlias("m"),
		argv.NewFlag("json").WithAlias("j"),
		argv.NewFlag("quiet").WithAlias("q"),
	} {
		if err := p.AddOption(opt); err != nil {
			panic(err)
		}
	}
	return p
}

func main() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		color.NoColor = true
	}
	log.SetFlags(0)
	log.SetPrefix("argv: ")

	parsed, err := selfParser().Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		usage(os.Stderr)
		os.Exit(2)
	}
	sel := argv.Select(parsed)

	modeStr, modeSet := sel.RequiredValue("mode")
	if !modeSet {
		modeStr = "mixed"
	}
	mode, err := parseMode(modeStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		usage(os.Stderr)
		os.Exit(2)
	}

	var p *argv.Parser
	if path, ok := sel.RequiredValue("schema"); ok {
		if modeSet {
			log.Print("warning: -m is ignored when a schema file sets the mode")
		}
		p, err = schema.LoadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("%v", err))
			os.Exit(1)
		}
	} else {
		p = argv.New(mode)
	}

	args, err := p.Parse(sel.Positionals())
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		os.Exit(2)
	}

	if sel.Flag("quiet", false) {
		return
	}
	if sel.Flag("json", false) {
		if err := renderJSON(os.Stdout, args); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("%v", err))
			os.Exit(1)
		}
		return
	}
	renderTable(os.Stdout, args)
}

func parseMode(s string) (argv.Mode, error) {
	switch s {
	case "mixed":
		return argv.Mixed, nil
	case "options-first":
		return argv.OptionsFirst, nil
	default:
		return 0, fmt.Errorf("unknown parsing mode %q", s)
	}
}

func renderTable(out io.Writer, args []argv.ParsedArg) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "KIND\tNAME\tVALUE")
	for _, arg := range args {
		switch a := arg.(type) {
		case argv.PositionalArg:
			fmt.Fprintf(w, "positional\t\t%s\n", a.Value)
		case argv.FlagArg:
			fmt.Fprintf(w, "flag\t%s\t%v\n", a.Name, a.Value)
		case argv.RequiredValueArg:
			fmt.Fprintf(w, "required-value\t%s\t%s\n", a.Name, a.Value)
		case argv.OptionalValueArg:
			value := "(absent)"
			if a.HasValue {
				value = a.Value
			}
			fmt.Fprintf(w, "optional-value\t%s\t%s\n", a.Name, value)
		}
	}
}

type jsonEntry struct {
	Kind  string `json:"kind"`
	Name  string `json:"name,omitempty"`
	Value any    `json:"value"`
}

func renderJSON(out io.Writer, args []argv.ParsedArg) error {
	entries := make([]jsonEntry, 0, len(args))
	for _, arg := range args {
		switch a := arg.(type) {
		case argv.PositionalArg:
			entries = append(entries, jsonEntry{Kind: "positional", Value: a.Value})
		case argv.FlagArg:
			entries = append(entries, jsonEntry{Kind: "flag", Name: a.Name, Value: a.Value})
		case argv.RequiredValueArg:
			entries = append(entries, jsonEntry{Kind: "required-value", Name: a.Name, Value: a.Value})
		case argv.OptionalValueArg:
			var value any
			if a.HasValue {
				value = a.Value
			}
			entries = append(entries, jsonEntry{Kind: "optional-value", Name: a.Name, Value: value})
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
