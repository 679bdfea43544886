// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argv tokenizes a raw argument vector into a structured,
// ordered sequence of parsed entries.
//
// Callers declare the accepted options (boolean flags, options that
// require a value, options that may carry a value) and positional slots
// up front, then hand the package an argument list. The parser performs
// a single left-to-right scan and returns the entries in token order,
// or a structured error describing the first rule violation.
//
// # Basic Usage
//
//	p := argv.New(argv.Mixed)
//	if err := p.AddOption(argv.NewFlag("verbose").WithAlias("v")); err != nil {
//	    log.Fatal(err)
//	}
//	if err := p.AddOption(argv.NewRequiredValue("output").WithAlias("o")); err != nil {
//	    log.Fatal(err)
//	}
//	args, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sel := argv.Select(args)
//	fmt.Println(sel.Flag("verbose", false), sel.Positionals())
//
// # Token Grammar
//
// While option scanning is active the parser recognizes:
//   - "--" ends option scanning; every later token is positional
//   - "--name" and "--name=value" reference a long option
//   - "-a", "-a=value", and "-avalue" reference a single-character alias
//   - anything else is a positional argument
//
// A short reference to a boolean flag whose remainder does not begin
// with "=" is declustered: "-bq=123" is rescanned as "-b" followed by
// "-q=123". In OptionsFirst mode the first positional token ends option
// scanning for the remainder of the input.
//
// The package never reads the process environment except through
// [Parser.ParseProcessArgs], and it performs no type coercion beyond
// the boolean values of flags. Interpreting values is the caller's job.
package argv
