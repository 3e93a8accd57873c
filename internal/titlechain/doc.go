// Package titlechain cascades episode title choices across rows that
// share overlapping title options.
//
// Providers sometimes expose two different titles for the same
// season/episode slot (airing order vs. disc order). When several
// adjacent episodes each carry exactly two candidate titles and those
// titles overlap pairwise (ep18: {A,B}, ep19: {B,C}, ep20: {C,D}),
// choosing one title logically determines all the others: claiming B for
// ep18 means ep19 must be C, which means ep20 must be D. Propagate walks
// that chain depth-first with a visited set, so cyclic title graphs
// terminate and each row flips at most once per call.
//
// Rows are owned by the caller for the duration of a call and only
// ChosenIndex is ever written. Propagation is a single-writer operation:
// a second propagation interleaved with the first could observe a row
// mid-update and skip it as already correct, so hosts must serialize
// calls over one row collection.
package titlechain
