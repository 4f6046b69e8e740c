// Package testutil provides helpers for vibesync tests: in-memory filesystems,
// declarative tree setup and inspection, and filesystems that fail on demand.
//
// Tests should prefer NewTestFS over the real filesystem. Tree contents are
// declared inline as path -> content maps, never loaded from fixtures, with the
// exception of golden files for generated output.
package testutil
