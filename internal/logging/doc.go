// Package logging assembles the structured slog loggers used across
// cinelog.
//
// It centralizes level and format plumbing and tags every logger with a
// per-invocation session id. Prefer these constructors over hand-rolled
// slog setup so all components emit log lines with the same shape.
package logging
