// Package scenario runs swap cases described in YAML through a
// swap.Resolver and checks that every swap really exchanged the values.
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Value kinds a Case can build.
const (
	KindInt          = "int"
	KindString       = "string"
	KindText         = "text"
	KindTripleInt    = "triple-int"
	KindTripleString = "triple-string"
	KindLabels       = "labels"
)

// Expected outcomes.
const (
	ExpectOK              = "ok"
	ExpectLengthViolation = "length-violation"
)

var (
	ErrInvalidCase = errors.New("invalid case")
	ErrNotSwapped  = errors.New("values were not exchanged")
	ErrUnexpected  = errors.New("unexpected outcome")
)

// Case is one swap to perform. Left and Right hold the textual values used to
// build the two operands; scalar kinds take exactly one value.
type Case struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Left   []string `yaml:"left"`
	Right  []string `yaml:"right"`
	Expect string   `yaml:"expect,omitempty"`
}

// File is the top-level YAML document.
type File struct {
	Cases []Case `yaml:"cases"`
}

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in cases.
func Default() File {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("scenario: built-in cases: %v", err))
	}
	return f
}

// Load reads and validates a scenario file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("load scenarios: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("load scenarios %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML and validates every case. A missing expect defaults to
// ExpectOK.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse scenarios: %w", err)
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Expect == "" {
			c.Expect = ExpectOK
		}
		if err := c.validate(); err != nil {
			return File{}, fmt.Errorf("case %d: %w", i, err)
		}
	}
	return f, nil
}

func (c Case) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidCase)
	}
	switch c.Kind {
	case KindInt, KindString, KindText:
		if len(c.Left) != 1 || len(c.Right) != 1 {
			return fmt.Errorf("%w: %q: kind %s takes exactly one value per side", ErrInvalidCase, c.Name, c.Kind)
		}
	case KindTripleInt, KindTripleString, KindLabels:
	default:
		return fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidCase, c.Name, c.Kind)
	}
	switch c.Expect {
	case ExpectOK, ExpectLengthViolation:
	default:
		return fmt.Errorf("%w: %q: unknown expect %q", ErrInvalidCase, c.Name, c.Expect)
	}
	return nil
}
