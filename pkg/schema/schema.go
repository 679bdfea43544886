// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package schema builds a configured argv.Parser from a declarative
// option-set file in TOML or YAML form.
//
// A schema file names the parsing mode, the accepted options, and the
// positional slots:
//
//	version = 1
//	mode = "mixed"
//
//	[[option]]
//	name = "verbose"
//	alias = "v"
//	kind = "flag"
//	repeatable = true
//
//	[[positional]]
//	kind = "named"
//
// All registration rules of package argv apply unchanged; a schema that
// declares a duplicate or malformed option fails with the same error a
// direct AddOption call would return.
package schema

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yeetrun/argv/pkg/argv"
)

// Version is the schema file version this package understands. Files
// may omit the field entirely.
const Version = 1

// Format selects the encoding of a schema document.
type Format int

const (
	TOML Format = iota
	YAML
)

// File is the on-disk shape of an option-set declaration.
type File struct {
	Version     int              `toml:"version,omitempty" yaml:"version,omitempty"`
	Mode        string           `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Options     []OptionDecl     `toml:"option,omitempty" yaml:"options,omitempty"`
	Positionals []PositionalDecl `toml:"positional,omitempty" yaml:"positionals,omitempty"`
}

// OptionDecl declares one named option.
type OptionDecl struct {
	Name       string `toml:"name" yaml:"name"`
	Alias      string `toml:"alias,omitempty" yaml:"alias,omitempty"`
	Kind       string `toml:"kind" yaml:"kind"`
	Repeatable bool   `toml:"repeatable,omitempty" yaml:"repeatable,omitempty"`
}

// PositionalDecl declares one positional slot.
type PositionalDecl struct {
	Kind string `toml:"kind" yaml:"kind"`
}

// Load decodes a schema document and builds the parser it declares.
func Load(r io.Reader, format Format) (*argv.Parser, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f File
	switch format {
	case TOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode schema: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to decode schema: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown schema format %d", format)
	}

	return f.Build()
}

// LoadFile loads a schema file, inferring the format from its
// extension (.toml, .yaml or .yml).
func LoadFile(path string) (*argv.Parser, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		format = TOML
	case ".yaml", ".yml":
		format = YAML
	default:
		return nil, fmt.Errorf("unsupported schema file extension %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, format)
}

// Build constructs the parser declared by f.
func (f *File) Build() (*argv.Parser, error) {
	if f.Version != 0 && f.Version != Version {
		return nil, fmt.Errorf("unsupported schema version %d", f.Version)
	}

	mode, err := parseMode(f.Mode)
	if err != nil {
		return nil, err
	}

	p := argv.New(mode)
	for _, decl := range f.Options {
		kind, err := parseOptionKind(decl.Kind)
		if err != nil {
			return nil, err
		}
		opt := argv.Option{
			Name:       decl.Name,
			Alias:      decl.Alias,
			Kind:       kind,
			Repeatable: decl.Repeatable,
		}
		if err := p.AddOption(opt); err != nil {
			return nil, err
		}
	}
	for _, decl := range f.Positionals {
		kind, err := parsePositionalKind(decl.Kind)
		if err != nil {
			return nil, err
		}
		if err := p.AddPositional(argv.Positional{Kind: kind}); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseMode(s string) (argv.Mode, error) {
	switch s {
	case "", "mixed":
		return argv.Mixed, nil
	case "options-first":
		return argv.OptionsFirst, nil
	default:
		return 0, fmt.Errorf("unknown parsing mode %q", s)
	}
}

func parseOptionKind(s string) (argv.Kind, error) {
	switch s {
	case "flag":
		return argv.KindFlag, nil
	case "required-value":
		return argv.KindRequiredValue, nil
	case "optional-value":
		return argv.KindOptionalValue, nil
	default:
		return 0, fmt.Errorf("unknown option kind %q", s)
	}
}

func parsePositionalKind(s string) (argv.PositionalKind, error) {
	switch s {
	case "named":
		return argv.Named, nil
	case "rest":
		return argv.Rest, nil
	default:
		return 0, fmt.Errorf("unknown positional kind %q", s)
	}
}
