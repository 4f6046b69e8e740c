// Package executor interprets sync plans against a types.FS.
//
// Actions run strictly in order and the first failure stops the run. There is
// no rollback: actions applied before the failure stay applied. Writes are
// last-writer-wins and directory creation is idempotent.
package executor
