package textsim

import (
	"golang.org/x/text/cases"
)

// Similarity scores how close two strings are after Unicode case folding.
// It returns 1.0 only when the folded strings are identical (two empty
// strings included) and otherwise 1 - distance/maxLen, where distance is
// the unit-cost Levenshtein edit distance over code points.
func Similarity(a, b string) float64 {
	fa := []rune(cases.Fold().String(a))
	fb := []rune(cases.Fold().String(b))

	if runesEqual(fa, fb) {
		return 1.0
	}

	maxLen := max(len(fa), len(fb))
	// Folded inequality implies at least one side is non-empty.
	return 1.0 - float64(distance(fa, fb))/float64(maxLen)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// distance computes the Levenshtein edit distance with two rolling rows,
// keeping memory proportional to the shorter input.
func distance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
