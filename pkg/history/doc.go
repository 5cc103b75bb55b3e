// Package history persists per-document validation outcomes across runs.
//
// Each validated document yields one Record tagged with the run it
// belonged to. Storage backends implement the Storage interface; the
// SQLite backend is the production store and the in-memory backend
// exists for tests. Retention is enforced by a Pruner, optionally on a
// cron schedule.
package history
