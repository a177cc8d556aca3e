// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

// Version is the semantic version set at build time using ldflags
// (e.g., "0.1.0"). When empty, the version recorded in the module
// build info is used.
var Version = ""

// Short returns just the version string.
func Short() string {
	if Version != "" {
		return Version
	}
	return versioninfo.Short()
}

// Commit returns the abbreviated VCS revision of the build.
func Commit() string {
	if rev := versioninfo.Revision; len(rev) > 7 {
		return rev[:7]
	}
	return versioninfo.Revision
}

// Date returns the VCS commit time of the build in RFC3339 format.
func Date() string {
	if versioninfo.LastCommit.IsZero() {
		return "unknown"
	}
	return versioninfo.LastCommit.UTC().Format(time.RFC3339)
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("bindgen version %s (commit: %s, built: %s, go: %s)",
		Short(), Commit(), Date(), runtime.Version())
}
