// Copyright (c) 2026 Caesarcipher Team
// Caesarcipher - Caesar shift cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via
// `-ldflags -X github.com/toeirei/caesarcipher/buildvars.Version=...`.
// It is empty for local or development builds.
var Version string

// Commit is the short commit SHA, set at link time like Version.
var Commit string

// Date is the build date in RFC3339, set at link time like Version.
var Date string

// VersionOrDefault returns `Version` if set, otherwise returns the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// CommitOrDefault returns `Commit` if set, otherwise returns the provided default.
func CommitOrDefault(def string) string {
	if len(Commit) > 0 {
		return Commit
	}
	return def
}
