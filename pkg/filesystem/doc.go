// Package filesystem provides filesystem implementations for vibesync.
//
// This package contains implementations of the types.FS interface (the OS
// filesystem and an afero-backed one used by tests), plus the two read-only
// helpers every planner and checker relies on: Inspect, which folds "does not
// exist" into a Presence value instead of an error, and ListFiles, the
// depth-first tree enumeration shared by plan, execute and check.
package filesystem
