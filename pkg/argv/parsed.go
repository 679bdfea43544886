// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

// ParsedArg is one entry of a parsed argument vector. The variant set
// is closed: PositionalArg, FlagArg, RequiredValueArg and
// OptionalValueArg are the only implementations.
type ParsedArg interface {
	parsedArg()
}

// PositionalArg is a bare positional token.
type PositionalArg struct {
	Value string
}

// FlagArg is an occurrence of a boolean flag. Value is true unless the
// reference carried an explicit "=false".
type FlagArg struct {
	Name  string
	Value bool
}

// RequiredValueArg is an occurrence of an option that requires a value,
// always carrying one.
type RequiredValueArg struct {
	Name  string
	Value string
}

// OptionalValueArg is an occurrence of an option that may carry a
// value. HasValue distinguishes an absent value from an empty one;
// Value is empty whenever HasValue is false.
type OptionalValueArg struct {
	Name     string
	Value    string
	HasValue bool
}

func (PositionalArg) parsedArg()    {}
func (FlagArg) parsedArg()          {}
func (RequiredValueArg) parsedArg() {}
func (OptionalValueArg) parsedArg() {}
