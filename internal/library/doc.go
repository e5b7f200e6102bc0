// Package library persists the movie collection in SQLite and owns every
// write to it.
//
// The Store enforces title uniqueness, resolves new titles through an
// injected metadata lookup before inserting, and hands out full snapshots
// for the query layer to work on. Reads are snapshot-based by contract:
// callers re-read before every operation instead of caching, which keeps
// stale-read bugs out of the sort/filter/statistics paths.
//
// Failures are classified with the sentinel errors in errors.go so the
// presentation layer can react per kind; the store never retries and never
// leaves a partial write behind.
package library
