// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cssfproject loads and validates the declarative project file
// that describes a CSSFinder task: mode, precision, backend, input
// matrix, solver parameters and resource limits. Formats are YAML or
// JSON, detected from the file extension and parsed into a static
// struct, validated eagerly with a hand-written Validate rather than a
// reflective validator.
package cssfproject

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wiesnim9/CSSFinder/internal/gilbert"
)

// Precision selects the floating-point width the solver runs at.
type Precision string

const (
	Single Precision = "single"
	Double Precision = "double"
)

// Backend names the registered dense CPU implementation. "default" is
// the only backend currently shipped; the field exists so a future
// backend can be registered without changing the project schema.
type Backend string

const Default Backend = "default"

// Symmetry is one orbit: a list of matrix-file paths whose unitaries are
// applied, in order, to ρ1 at startup and again every
// gilbert.SymmetryEvery accepted corrections.
type Symmetry []string

// Resources bounds how a task may be executed.
type Resources struct {
	MaxParallel int `yaml:"max_parallel" json:"max_parallel"`
}

// Project is the full declarative description of one CSSFinder task.
type Project struct {
	Mode      string    `yaml:"mode" json:"mode"`
	Precision Precision `yaml:"precision" json:"precision"`
	Backend   Backend   `yaml:"backend" json:"backend"`

	Input string `yaml:"input" json:"input"`

	Depth    int `yaml:"depth,omitempty" json:"depth,omitempty"`
	Quantity int `yaml:"quantity,omitempty" json:"quantity,omitempty"`

	Visibility float64 `yaml:"visibility" json:"visibility"`

	MaxEpochs      int `yaml:"max_epochs" json:"max_epochs"`
	ItersPerEpoch  int `yaml:"iters_per_epoch" json:"iters_per_epoch"`
	MaxCorrections int `yaml:"max_corrections" json:"max_corrections"`

	Symmetries []Symmetry `yaml:"symmetries,omitempty" json:"symmetries,omitempty"`
	Projection string     `yaml:"projection,omitempty" json:"projection,omitempty"`

	Resources Resources `yaml:"resources" json:"resources"`
}

// Load reads and parses a project file, auto-detecting YAML vs JSON
// from its extension (anything but ".json" is treated as YAML).
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cssfproject: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f, detectFormat(path))
}

// LoadFromReader parses a project document of the given format
// ("json" or "yaml") from r.
func LoadFromReader(r io.Reader, format string) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cssfproject: %w", err)
	}

	var p Project
	switch format {
	case "json":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("cssfproject: parse json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("cssfproject: parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("cssfproject: unsupported format %q", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// detectFormat maps a file extension to a format name; YAML is the
// default for any unrecognized or absent extension. JSON is valid
// YAML, so yaml.Unmarshal handles both once detected.
func detectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// Validate checks structural and boundary constraints that the parser
// itself cannot express. It is intentionally a plain function, not a
// reflection-driven struct-tag validator: the schema is small and
// static, and an explicit check reads as a list of the actual rules.
func (p *Project) Validate() error {
	if _, ok := gilbert.ParseMode(p.Mode); !ok {
		return fmt.Errorf("cssfproject: unknown mode %q", p.Mode)
	}
	switch p.Precision {
	case Single, Double:
	default:
		return fmt.Errorf("cssfproject: unknown precision %q", p.Precision)
	}
	if p.Backend != Default {
		return fmt.Errorf("cssfproject: unknown backend %q", p.Backend)
	}
	if p.Input == "" {
		return fmt.Errorf("cssfproject: input is required")
	}
	if p.Visibility < 0 || p.Visibility > 1 {
		return fmt.Errorf("cssfproject: visibility %v out of range [0,1]", p.Visibility)
	}
	if p.MaxEpochs <= 0 {
		return fmt.Errorf("cssfproject: max_epochs must be positive")
	}
	if p.ItersPerEpoch <= 0 {
		return fmt.Errorf("cssfproject: iters_per_epoch must be positive")
	}
	if p.MaxCorrections < -1 {
		return fmt.Errorf("cssfproject: max_corrections must be -1 or non-negative")
	}
	if p.Depth < 0 {
		return fmt.Errorf("cssfproject: depth must be non-negative")
	}
	if p.Quantity < 0 {
		return fmt.Errorf("cssfproject: quantity must be non-negative")
	}
	if p.Resources.MaxParallel < 0 {
		return fmt.Errorf("cssfproject: resources.max_parallel must be non-negative")
	}
	for i, sym := range p.Symmetries {
		if len(sym) == 0 {
			return fmt.Errorf("cssfproject: symmetries[%d] is empty", i)
		}
	}
	return nil
}
