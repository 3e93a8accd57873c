package resolve

import (
	"fmt"

	"retitle/internal/scan"
	"retitle/internal/showmatch"
	"retitle/internal/titlechain"
)

// FileResult is the per-file slice of a report. RowIndex points into
// Report.Rows, or -1 when the file has no episode row (unparseable
// name, unresolved show, or no catalog listing).
type FileResult struct {
	Path     string             `json:"path"`
	Parsed   scan.ParsedName    `json:"parsed,omitempty"`
	Skipped  bool               `json:"skipped,omitempty"`
	Decision showmatch.Decision `json:"decision,omitempty"`
	RowIndex int                `json:"row_index"`
}

// Report is the outcome of a planning session. Rows are shared across
// files of the same show so a selection on one file can cascade to the
// others.
type Report struct {
	SessionID string            `json:"session_id"`
	Files     []FileResult      `json:"files"`
	Rows      []*titlechain.Row `json:"rows"`
	Changed   []int             `json:"changed,omitempty"`
}

// Select forces the title for one row and cascades the choice. It
// returns the indices of every row that changed, the selected row
// included.
func (r *Report) Select(rowIndex int, title string) ([]int, error) {
	if rowIndex < 0 || rowIndex >= len(r.Rows) {
		return nil, fmt.Errorf("row index %d out of range", rowIndex)
	}
	row := r.Rows[rowIndex]

	selected := -1
	for i, option := range row.Options {
		if option.Title == title {
			selected = i
			break
		}
	}
	if selected < 0 {
		return nil, fmt.Errorf("row %d has no option %q", rowIndex, title)
	}

	var changed []int
	if row.ChosenIndex != selected {
		row.ChosenIndex = selected
		changed = append(changed, rowIndex)
	}
	changed = append(changed, titlechain.Propagate(r.Rows, rowIndex, title)...)
	r.markChanged(changed)
	return changed, nil
}

// ProposedName renders the rename target for file i, false when the
// file resolved to nothing usable.
func (r *Report) ProposedName(i int) (string, bool) {
	if i < 0 || i >= len(r.Files) {
		return "", false
	}
	file := r.Files[i]
	if file.Skipped || file.Decision.Outcome != showmatch.OutcomeResolved || file.Decision.Chosen == nil {
		return "", false
	}

	title := file.Parsed.TitleHint
	if file.RowIndex >= 0 {
		title = r.Rows[file.RowIndex].Chosen().Title
	}

	name := fmt.Sprintf("%s - S%02dE%02d", file.Decision.Chosen.Name, file.Parsed.Season, file.Parsed.Episode)
	if title != "" {
		name += " - " + title
	}
	return name + file.Parsed.Ext, true
}

// markChanged appends row indices to the changed list, skipping ones
// already recorded.
func (r *Report) markChanged(indices []int) {
	seen := make(map[int]struct{}, len(r.Changed))
	for _, idx := range r.Changed {
		seen[idx] = struct{}{}
	}
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		r.Changed = append(r.Changed, idx)
	}
}
