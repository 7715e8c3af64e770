// Copyright ©2017 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corrections persists the Gilbert engine's accepted-update log:
// a growing JSON array of [iteration_index, correction_ordinal,
// residual_squared_norm] triples.
package corrections

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record is one accepted Gilbert update.
type Record struct {
	Iteration           int
	Ordinal             int
	ResidualSquaredNorm float64
}

// MarshalJSON encodes a Record as a 3-element array.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{float64(r.Iteration), float64(r.Ordinal), r.ResidualSquaredNorm})
}

// UnmarshalJSON decodes a Record from a 3-element array.
func (r *Record) UnmarshalJSON(data []byte) error {
	var triple [3]float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("corrections: %w", err)
	}
	r.Iteration = int(triple[0])
	r.Ordinal = int(triple[1])
	r.ResidualSquaredNorm = triple[2]
	return nil
}

// WriteAll writes the full corrections list to w as a JSON array.
func WriteAll(w io.Writer, records []Record) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("corrections: encode: %w", err)
	}
	return nil
}

// Save writes the full corrections list to path, overwriting it.
func Save(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("corrections: %w", err)
	}
	defer f.Close()
	return WriteAll(f, records)
}

// Load reads a corrections JSON array from path.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corrections: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("corrections: %w", err)
	}
	return records, nil
}
