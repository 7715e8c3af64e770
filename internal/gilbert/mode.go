// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gilbert

// Mode selects the convex set C of non-entangled states the engine
// searches.
type Mode int

const (
	// FSnQd is full separability of n qudits.
	FSnQd Mode = iota
	// SBiPa is bipartite separability.
	SBiPa
	// G3PaE3qD is the genuine 3-partite entanglement witness mode.
	G3PaE3qD
	// G4PaE3qD is the genuine 4-partite entanglement witness mode.
	G4PaE3qD
)

func (m Mode) String() string {
	switch m {
	case FSnQd:
		return "FSnQd"
	case SBiPa:
		return "SBiPa"
	case G3PaE3qD:
		return "G3PaE3qD"
	case G4PaE3qD:
		return "G4PaE3qD"
	default:
		return "unknown"
	}
}

// ParseMode parses the four supported mode names.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "FSnQd":
		return FSnQd, true
	case "SBiPa":
		return SBiPa, true
	case "G3PaE3qD":
		return G3PaE3qD, true
	case "G4PaE3qD":
		return G4PaE3qD, true
	default:
		return 0, false
	}
}
