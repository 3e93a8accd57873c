// Package pinstore persists pinned show selections.
//
// A pin maps a normalized query string to a candidate id and
// short-circuits every name heuristic during resolution. Pins live in
// a SQLite database so they survive across invocations; a companion
// flock file keeps concurrent CLI runs from interleaving writes, and
// busy retries absorb the short lock windows SQLite itself takes.
package pinstore
