// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestOrDefault(t *testing.T) {
	origVersion, origCommit := Version, Commit
	defer func() { Version, Commit = origVersion, origCommit }()

	Version, Commit = "", ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected dev, got %s", got)
	}
	if got := CommitOrDefault("none"); got != "none" {
		t.Fatalf("expected none, got %s", got)
	}

	Version, Commit = "v1.0.0", "abc1234"
	if got := VersionOrDefault("dev"); got != "v1.0.0" {
		t.Fatalf("expected v1.0.0, got %s", got)
	}
	if got := CommitOrDefault("none"); got != "abc1234" {
		t.Fatalf("expected abc1234, got %s", got)
	}
}
