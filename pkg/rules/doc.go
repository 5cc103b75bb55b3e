// Package rules defines the configurable compliance rule specification
// and its loader.
//
// The loader resolves a rule spec through an injectable Store port so
// callers and tests can exercise missing, valid and corrupt sources
// without touching real storage. A missing source yields the built-in
// defaults, which are persisted back through the store so subsequent
// runs are reproducible and editable; a corrupt source falls back to the
// defaults without persisting. The loader never returns an error to its
// caller.
package rules
