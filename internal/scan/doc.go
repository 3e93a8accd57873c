// Package scan extracts structured episode information from
// release-style filenames and walks library directories for video
// files.
//
// Parsing is deliberately tolerant: community naming conventions vary
// (dots, underscores, SxxEyy, NxNN, embedded years, codec tags), and
// the parser's job is to recover the show name, season/episode
// numbers, an optional year, and an optional episode-title hint from
// whatever it is given. The hint feeds title pre-selection downstream
// and is best effort; the show name and season/episode pair are the
// load-bearing outputs.
package scan
