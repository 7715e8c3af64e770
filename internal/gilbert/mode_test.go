// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gilbert

import "testing"

func TestParseModeRoundTrip(t *testing.T) {
	modes := []Mode{FSnQd, SBiPa, G3PaE3qD, G4PaE3qD}
	for _, m := range modes {
		got, ok := ParseMode(m.String())
		if !ok {
			t.Errorf("ParseMode(%q) failed", m.String())
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestParseModeRejectsUnknown(t *testing.T) {
	if _, ok := ParseMode("NotAMode"); ok {
		t.Error("ParseMode(\"NotAMode\"): want ok=false")
	}
}
