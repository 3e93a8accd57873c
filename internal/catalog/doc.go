// Package catalog is a file-backed candidate source for show
// resolution.
//
// The catalog is a single JSON document listing shows with their ids,
// aliases, first-aired years, and per-season episode listings. An
// episode slot may carry more than one title when providers disagree
// about ordering; those alternatives become the option rows the title
// chain propagator works on. Search is offline and deterministic:
// matching shows come back in catalog order, and ranking is the
// evaluator's job, not the catalog's.
package catalog
