// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yeetrun/argv/pkg/argv"
)

const tomlSchema = `
version = 1
mode = "mixed"

[[option]]
name = "verbose"
alias = "v"
kind = "flag"
repeatable = true

[[option]]
name = "output"
alias = "o"
kind = "required-value"

[[option]]
name = "color"
kind = "optional-value"

[[positional]]
kind = "named"

[[positional]]
kind = "rest"
`

const yamlSchema = `
version: 1
mode: mixed
options:
  - name: verbose
    alias: v
    kind: flag
    repeatable: true
  - name: output
    alias: o
    kind: required-value
  - name: color
    kind: optional-value
positionals:
  - kind: named
  - kind: rest
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		format Format
	}{
		{name: "toml", doc: tomlSchema, format: TOML},
		{name: "yaml", doc: yamlSchema, format: YAML},
	}

	args := []string{"-v", "--output", "out.txt", "--color=red", "in.txt", "extra"}
	want := []argv.ParsedArg{
		argv.FlagArg{Name: "verbose", Value: true},
		argv.RequiredValueArg{Name: "output", Value: "out.txt"},
		argv.OptionalValueArg{Name: "color", Value: "red", HasValue: true},
		argv.PositionalArg{Value: "in.txt"},
		argv.PositionalArg{Value: "extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(strings.NewReader(tt.doc), tt.format)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			got, err := p.Parse(args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", args, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", args, diff)
			}
		})
	}
}

func TestLoad_OptionsFirstMode(t *testing.T) {
	doc := `
mode = "options-first"

[[option]]
name = "verbose"
kind = "flag"
`
	p, err := Load(strings.NewReader(doc), TOML)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got, err := p.Parse([]string{"pos", "--verbose"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []argv.ParsedArg{
		argv.PositionalArg{Value: "pos"},
		argv.PositionalArg{Value: "--verbose"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantMsg string
	}{
		{
			name:    "unsupported version",
			file:    File{Version: 2},
			wantMsg: "unsupported schema version 2",
		},
		{
			name:    "unknown mode",
			file:    File{Mode: "strict"},
			wantMsg: `unknown parsing mode "strict"`,
		},
		{
			name:    "unknown option kind",
			file:    File{Options: []OptionDecl{{Name: "verbose", Kind: "counter"}}},
			wantMsg: `unknown option kind "counter"`,
		},
		{
			name:    "unknown positional kind",
			file:    File{Positionals: []PositionalDecl{{Kind: "variadic"}}},
			wantMsg: `unknown positional kind "variadic"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.file.Build()
			if err == nil || err.Error() != tt.wantMsg {
				t.Errorf("Build() error = %v, want %q", err, tt.wantMsg)
			}
		})
	}
}

func TestBuild_PropagatesRegistrationErrors(t *testing.T) {
	t.Run("duplicate option", func(t *testing.T) {
		f := File{Options: []OptionDecl{
			{Name: "verbose", Kind: "flag"},
			{Name: "verbose", Kind: "flag"},
		}}
		_, err := f.Build()
		var dup *argv.DuplicateOptionError
		if !errors.As(err, &dup) || dup.Name != "verbose" {
			t.Errorf("Build() error = %v, want DuplicateOptionError for verbose", err)
		}
	})

	t.Run("rest not last", func(t *testing.T) {
		f := File{Positionals: []PositionalDecl{{Kind: "rest"}, {Kind: "named"}}}
		_, err := f.Build()
		var rest *argv.InvalidRestPositionError
		if !errors.As(err, &rest) {
			t.Errorf("Build() error = %v, want InvalidRestPositionError", err)
		}
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tomlPath := filepath.Join(dir, "cli.toml")
	if err := os.WriteFile(tomlPath, []byte(tomlSchema), 0644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "cli.yaml")
	if err := os.WriteFile(yamlPath, []byte(yamlSchema), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{tomlPath, yamlPath} {
		p, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) error = %v", path, err)
		}
		if _, err := p.Parse([]string{"-v", "in.txt"}); err != nil {
			t.Errorf("Parse via %s error = %v", filepath.Base(path), err)
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "cli.json")); err == nil {
		t.Error("LoadFile(cli.json) error = nil, want unsupported extension error")
	}
	if _, err := LoadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing.toml) error = %v, want not-exist", err)
	}
}
