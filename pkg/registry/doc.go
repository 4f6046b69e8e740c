// Package registry provides a small generic name-to-item table used for the
// static preset lookup. It is safe for concurrent use.
package registry
