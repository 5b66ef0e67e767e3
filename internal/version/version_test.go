// Copyright (c) 2015-2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

// TestString ensures invalid characters are dropped from the pre-release and
// build portions and the separators only appear when a portion is present.
func TestString(t *testing.T) {
	origPreRelease, origBuild := PreRelease, BuildMetadata
	defer func() {
		PreRelease, BuildMetadata = origPreRelease, origBuild
	}()

	tests := []struct {
		preRelease string
		build      string
		want       string
	}{
		{"", "", "0.1.0"},
		{"beta", "", "0.1.0-beta"},
		{"rc.1", "", "0.1.0-rc1"},
		{"", "git.abc123", "0.1.0+git.abc123"},
		{"alpha", "linux/amd64", "0.1.0-alpha+linuxamd64"},
		{"!!", "??", "0.1.0"},
	}

	for i, test := range tests {
		PreRelease, BuildMetadata = test.preRelease, test.build
		if got := String(); got != test.want {
			t.Errorf("String #%d: unexpected version - got %q, want %q",
				i, got, test.want)
		}
	}
}
