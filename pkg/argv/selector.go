// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

// Selector answers queries over a parsed argument sequence. It is a
// read-only view: it performs no validation and has no knowledge of the
// registered options.
type Selector struct {
	args []ParsedArg
}

// Select wraps a parsed sequence for querying.
func Select(args []ParsedArg) Selector {
	return Selector{args: args}
}

// Positionals returns every positional value in token order.
func (s Selector) Positionals() []string {
	var vals []string
	for _, arg := range s.args {
		if pos, ok := arg.(PositionalArg); ok {
			vals = append(vals, pos.Value)
		}
	}
	return vals
}

// FirstPositional returns the first positional value, if any.
func (s Selector) FirstPositional() (string, bool) {
	for _, arg := range s.args {
		if pos, ok := arg.(PositionalArg); ok {
			return pos.Value, true
		}
	}
	return "", false
}

// LastPositional returns the last positional value, if any.
func (s Selector) LastPositional() (string, bool) {
	for i := len(s.args) - 1; i >= 0; i-- {
		if pos, ok := s.args[i].(PositionalArg); ok {
			return pos.Value, true
		}
	}
	return "", false
}

// Flag returns the value of the first occurrence of the named flag, or
// def if the flag never occurred.
func (s Selector) Flag(name string, def bool) bool {
	for _, arg := range s.args {
		if f, ok := arg.(FlagArg); ok && f.Name == name {
			return f.Value
		}
	}
	return def
}

// RequiredValue returns the value of the first occurrence of the named
// required-value option.
func (s Selector) RequiredValue(name string) (string, bool) {
	for _, arg := range s.args {
		if rv, ok := arg.(RequiredValueArg); ok && rv.Name == name {
			return rv.Value, true
		}
	}
	return "", false
}

// RequiredValues returns every value of the named required-value option
// in token order.
func (s Selector) RequiredValues(name string) []string {
	var vals []string
	for _, arg := range s.args {
		if rv, ok := arg.(RequiredValueArg); ok && rv.Name == name {
			vals = append(vals, rv.Value)
		}
	}
	return vals
}

// OptionalValue returns the value of the first occurrence of the named
// optional-value option that carried one, or def if none did.
func (s Selector) OptionalValue(name, def string) string {
	for _, arg := range s.args {
		if ov, ok := arg.(OptionalValueArg); ok && ov.Name == name && ov.HasValue {
			return ov.Value
		}
	}
	return def
}
