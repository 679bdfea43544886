// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

import "fmt"

// InvalidOptionError is returned when an option name fails the name
// syntax rule, at registration time or when a long reference carries a
// malformed name.
type InvalidOptionError struct {
	Name string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("--%s is invalid", e.Name)
}

// InvalidAliasError is returned when an alias fails the single-character
// syntax rule.
type InvalidAliasError struct {
	Alias string
}

func (e *InvalidAliasError) Error() string {
	return fmt.Sprintf("-%s is invalid", e.Alias)
}

// DuplicateOptionError is returned when an option name is registered
// twice, or when a non-repeatable option is referenced twice by name in
// one argument vector.
type DuplicateOptionError struct {
	Name string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("cannot provide --%s again", e.Name)
}

// DuplicateAliasError is the alias-reference form of
// DuplicateOptionError.
type DuplicateAliasError struct {
	Alias string
}

func (e *DuplicateAliasError) Error() string {
	return fmt.Sprintf("cannot provide -%s again", e.Alias)
}

// UnknownOptionError is returned when a long reference names an
// unregistered option.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("--%s is undefined", e.Name)
}

// UnknownAliasError is returned when a short reference names an
// unregistered alias.
type UnknownAliasError struct {
	Alias string
}

func (e *UnknownAliasError) Error() string {
	return fmt.Sprintf("-%s is undefined", e.Alias)
}

// InvalidOptionValueError is returned when a flag referenced by name is
// given a value other than "true" or "false".
type InvalidOptionValueError struct {
	Name  string
	Value string
}

func (e *InvalidOptionValueError) Error() string {
	return fmt.Sprintf("--%s cannot accept '%s' as a value", e.Name, e.Value)
}

// InvalidAliasValueError is the alias-reference form of
// InvalidOptionValueError.
type InvalidAliasValueError struct {
	Alias string
	Value string
}

func (e *InvalidAliasValueError) Error() string {
	return fmt.Sprintf("-%s cannot accept '%s' as a value", e.Alias, e.Value)
}

// MissingOptionValueError is returned when an option that requires a
// value, referenced by name, has none available.
type MissingOptionValueError struct {
	Name string
}

func (e *MissingOptionValueError) Error() string {
	return fmt.Sprintf("--%s is missing a value", e.Name)
}

// MissingAliasValueError is the alias-reference form of
// MissingOptionValueError.
type MissingAliasValueError struct {
	Alias string
}

func (e *MissingAliasValueError) Error() string {
	return fmt.Sprintf("-%s is missing a value", e.Alias)
}

// InvalidRestPositionError is returned when a positional slot is
// registered after a Rest slot.
type InvalidRestPositionError struct{}

func (e *InvalidRestPositionError) Error() string {
	return "'rest' positional arg must be placed last"
}

// MissingArgsError is returned when fewer positional arguments are
// supplied than there are Named slots registered.
type MissingArgsError struct {
	Expected int
	Got      int
}

func (e *MissingArgsError) Error() string {
	return fmt.Sprintf("%d arg(s) required, but got %d", e.Expected, e.Got)
}
