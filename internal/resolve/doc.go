// Package resolve orchestrates one bulk-rename session.
//
// A session wires the scanner, catalog, pin store, and the matching
// algorithms together: each scanned file's show name is resolved
// against the catalog (pins first), the matching season's episode
// listings become title rows, filename title hints pre-select
// ambiguous rows, and user-forced selections cascade through the
// remaining rows. The output is a report the CLI renders; nothing here
// touches the files themselves.
//
// Propagation is single-writer: the session owns its row slice and all
// row mutation happens sequentially on the calling goroutine.
package resolve
