// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifestEntry names one registered task: its project file and the
// directory its state/corrections persist to.
type manifestEntry struct {
	Name    string `yaml:"name"`
	Project string `yaml:"project"`
	Dir     string `yaml:"dir"`
}

type manifest struct {
	Tasks []manifestEntry `yaml:"tasks"`
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &manifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func (m *manifest) save(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func (m *manifest) add(e manifestEntry) error {
	for _, existing := range m.Tasks {
		if existing.Name == e.Name {
			return fmt.Errorf("task %q already registered", e.Name)
		}
	}
	m.Tasks = append(m.Tasks, e)
	return nil
}
