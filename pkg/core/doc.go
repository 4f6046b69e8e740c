// Package core runs the two vibesync operations.
//
// Sync and Check share one flow: load the configuration, resolve the source
// and destination artifacts relative to the configuration file, then walk
// the destinations in configuration order, dispatching each pair to the
// first adapter that accepts it.
//
// Sync plans and executes each destination before moving to the next and
// stops at the first failure, leaving earlier destinations updated. Check
// only reads; a destination that is out of sync is reported, not treated as
// an error.
package core
