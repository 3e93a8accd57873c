// Package showmatch decides which catalog show an extracted filename
// title refers to.
//
// Evaluate runs a fixed cascade of rules over the caller-supplied
// candidate list: pinned-id override, exact name and alias matching,
// base-title and token tie-breaks, first-aired-year tolerance, and a
// fuzzy Levenshtein fallback with score and margin thresholds. Each rule
// either settles the decision or falls through to the next, and the
// returned Decision carries a human-readable reason so hosts can explain
// why a show was auto-selected, left ambiguous, or reported missing.
//
// The evaluator is a pure function: no I/O, no shared state, and a
// deterministic result for identical inputs. Candidate lists come from a
// Source collaborator and pinned ids from a PinStore collaborator; both
// are resolved by the caller before Evaluate runs.
//
// Thresholds live in Policy so they can be recalibrated from
// configuration without touching the cascade itself.
package showmatch
