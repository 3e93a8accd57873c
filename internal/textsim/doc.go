// Package textsim provides normalized string similarity scoring used by
// show matching and episode title pre-selection.
//
// Similarity is a case-folded, Levenshtein-based score in [0, 1]. A score
// of 1.0 is reserved for strings that are equal after case folding; every
// other pair scores strictly below 1.0. The function is symmetric, total,
// and deterministic, so callers can compare scores against configured
// thresholds without worrying about input order or degenerate inputs.
package textsim
