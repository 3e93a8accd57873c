// Package logging assembles the structured slog loggers and formatting
// helpers used across retitle.
//
// It owns the console/JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so resolution code can
// automatically tag log lines with component names and session
// correlation IDs. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every
// component emits data with the same shape.
package logging
