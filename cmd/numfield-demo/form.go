package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/numfield/numfmt"
)

var errEmptyForm = errors.New("form has no fields")

type formFile struct {
	Fields []fieldSpec `yaml:"fields"`
}

// fieldSpec is one field of a YAML form definition.
type fieldSpec struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	// Preset is a numfmt preset name; empty means "currency".
	Preset string `yaml:"preset"`
	Value  string `yaml:"value"`
	// Initial overrides the dirty baseline.
	Initial     *string `yaml:"initial"`
	Placeholder string  `yaml:"placeholder"`
	Prefix      string  `yaml:"prefix"`
}

func (s fieldSpec) format() (numfmt.Config, error) {
	name := s.Preset
	if name == "" {
		name = "currency"
	}
	return numfmt.Preset(name)
}

func (s fieldSpec) label() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Name
}

func defaultForm() []fieldSpec {
	return []fieldSpec{
		{Name: "balance", Label: "Balance", Preset: "currency", Value: "1234.5", Placeholder: "0.00", Prefix: "$"},
		{Name: "fee", Label: "Fee", Preset: "unsigned-currency", Placeholder: "0.00", Prefix: "$"},
		{Name: "quantity", Label: "Quantity", Preset: "integer", Value: "12", Placeholder: "0"},
	}
}

func loadForm(path string) ([]fieldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read form: %w", err)
	}
	return parseForm(data)
}

func parseForm(data []byte) ([]fieldSpec, error) {
	var f formFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyForm
		}
		return nil, fmt.Errorf("parse form: %w", err)
	}
	if len(f.Fields) == 0 {
		return nil, errEmptyForm
	}

	seen := make(map[string]bool, len(f.Fields))
	for i, s := range f.Fields {
		if s.Name == "" {
			return nil, fmt.Errorf("field %d: name is required", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("field %q: duplicate name", s.Name)
		}
		seen[s.Name] = true
		if _, err := s.format(); err != nil {
			return nil, fmt.Errorf("field %q: %w", s.Name, err)
		}
	}
	return f.Fields, nil
}
