// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argv

// Kind classifies how an option treats its value.
type Kind int

const (
	// KindFlag is a boolean option. It accepts no value, or an explicit
	// "true"/"false" via "=".
	KindFlag Kind = iota
	// KindRequiredValue is an option that must be given a value, either
	// inline or as the following token.
	KindRequiredValue
	// KindOptionalValue is an option whose value may be omitted. It never
	// consumes the following token.
	KindOptionalValue
)

// Option describes one named option. An Option is immutable once
// registered with a Parser.
type Option struct {
	// Name is the long name, referenced as "--name". It must be longer
	// than one character and satisfy the name syntax rule.
	Name string
	// Alias is an optional single-character short name, referenced as
	// "-a". Empty means no alias.
	Alias string
	// Kind selects the value handling behavior.
	Kind Kind
	// Repeatable permits the option to appear more than once in a single
	// argument vector.
	Repeatable bool
}

// NewFlag returns a boolean flag option with the given name.
func NewFlag(name string) Option {
	return Option{Name: name, Kind: KindFlag}
}

// NewRequiredValue returns an option that requires a value.
func NewRequiredValue(name string) Option {
	return Option{Name: name, Kind: KindRequiredValue}
}

// NewOptionalValue returns an option that may carry a value.
func NewOptionalValue(name string) Option {
	return Option{Name: name, Kind: KindOptionalValue}
}

// WithAlias returns a copy of the option with the given single-character
// alias set.
func (o Option) WithAlias(alias string) Option {
	o.Alias = alias
	return o
}

// Repeated returns a copy of the option marked repeatable.
func (o Option) Repeated() Option {
	o.Repeatable = true
	return o
}

// PositionalKind classifies a positional slot.
type PositionalKind int

const (
	// Named is a single required positional slot.
	Named PositionalKind = iota
	// Rest is a trailing slot that absorbs any number of extra
	// positionals. At most one may be registered and it must be last.
	Rest
)

// Positional describes one positional argument slot. Slot order is
// significant: the first registered slot is the first consumed.
type Positional struct {
	Kind PositionalKind
}

// NamedPositional returns a required positional slot.
func NamedPositional() Positional {
	return Positional{Kind: Named}
}

// RestPositional returns a trailing catch-all positional slot.
func RestPositional() Positional {
	return Positional{Kind: Rest}
}

// validName reports whether name is usable as a long option name:
// a hyphen sequence of more than one character.
func validName(name string) bool {
	return validHyphenSeq(name) && len(name) > 1
}

// validAlias reports whether alias is usable as a short option name:
// exactly one character, which the hyphen sequence rule then forces to
// be ASCII alphanumeric.
func validAlias(alias string) bool {
	return validHyphenSeq(alias) && len(alias) == 1
}

// validHyphenSeq reports whether s contains only ASCII alphanumerics
// and hyphens, where a hyphen may only directly follow an alphanumeric
// and may not be the final character.
func validHyphenSeq(s string) bool {
	allowHyphen := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '-' && allowHyphen && i+1 < len(s):
			allowHyphen = false
		case isAlnum(c):
			allowHyphen = true
		default:
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
