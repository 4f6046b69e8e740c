// Package actions defines the declarative filesystem actions a plan is made of.
//
// Actions are plain data. They carry no behaviour beyond describing themselves;
// the executor package is the only place that performs their I/O. A plan is an
// ordered []Action where a Mkdir always precedes the writes that land under it.
package actions
