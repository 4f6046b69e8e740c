// Package types defines the core types and interfaces shared across vibesync:
// the ResolvedArtifact value produced from configuration entries and the FS
// abstraction every component performs its I/O through.
package types
