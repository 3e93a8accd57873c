package titlechain

import (
	"strings"

	"retitle/internal/showmatch"
	"retitle/internal/textsim"
)

// Propagate cascades the title selected for rows[sourceIndex] to every
// other two-option row of the same show that lists the selected title,
// flipping each such row to its other option and recursing from there.
// The caller is expected to have applied the selection to the source row
// already; the returned indices cover only the rows this call changed,
// in visit order, so a host can re-render exactly those. An out-of-range
// sourceIndex is a no-op.
func Propagate(rows []*Row, sourceIndex int, selectedTitle string) []int {
	if sourceIndex < 0 || sourceIndex >= len(rows) {
		return nil
	}
	source := rows[sourceIndex]
	if source == nil {
		return nil
	}

	visited := make(map[int]struct{}, len(rows))
	visited[sourceIndex] = struct{}{}
	var changed []int

	var visit func(title string)
	visit = func(title string) {
		for i, row := range rows {
			if _, seen := visited[i]; seen {
				continue
			}
			if row == nil || row.ShowKey != source.ShowKey || len(row.Options) != 2 {
				continue
			}
			matched := -1
			for j := range row.Options {
				if row.Options[j].Title == title {
					matched = j
					break
				}
			}
			if matched < 0 {
				continue
			}
			// The shared title is claimed elsewhere, so this row must be
			// the other option.
			other := 1 - matched
			if row.ChosenIndex == other {
				continue
			}
			row.ChosenIndex = other
			visited[i] = struct{}{}
			changed = append(changed, i)
			visit(row.Options[other].Title)
		}
	}

	visit(selectedTitle)
	return changed
}

// Preselect auto-selects an option for the two-option row at index using
// a filename-embedded title hint, then cascades the implied choice. The
// hint must clear the pre-selection score threshold and lead the other
// option by the pre-selection margin, otherwise nothing happens. Returns
// every changed row index, the source row included when it flipped.
func Preselect(rows []*Row, index int, hint string, policy showmatch.Policy) []int {
	policy = policy.Normalized()

	if index < 0 || index >= len(rows) {
		return nil
	}
	row := rows[index]
	if row == nil || len(row.Options) != 2 {
		return nil
	}
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return nil
	}

	scores := [2]float64{
		textsim.Similarity(hint, row.Options[0].Title),
		textsim.Similarity(hint, row.Options[1].Title),
	}
	bestIdx := 0
	if scores[1] > scores[0] {
		bestIdx = 1
	}
	best, second := scores[bestIdx], scores[1-bestIdx]
	if best < policy.PreselectScore || best-second < policy.PreselectMargin {
		return nil
	}

	var changed []int
	if row.ChosenIndex != bestIdx {
		row.ChosenIndex = bestIdx
		changed = append(changed, index)
	}
	changed = append(changed, Propagate(rows, index, row.Options[bestIdx].Title)...)
	return changed
}
