package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"retitle/internal/logging"
	"retitle/internal/showmatch"
	"retitle/internal/textsim"
)

// searchFloor is the similarity below which a show is not even worth
// returning as a candidate. The evaluator applies its own, stricter
// thresholds on top.
const searchFloor = 0.5

// EpisodeOption is one title a provider lists for an episode slot.
// Ref keys the option back to the provider record.
type EpisodeOption struct {
	Title string `json:"title"`
	Ref   string `json:"ref,omitempty"`
}

// Episode is one season/episode slot with its candidate titles.
type Episode struct {
	Number  int             `json:"number"`
	Options []EpisodeOption `json:"options"`
}

// Season groups the episode listings for one season number.
type Season struct {
	Number   int       `json:"number"`
	Episodes []Episode `json:"episodes"`
}

// Show is one catalog entry.
type Show struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases,omitempty"`
	FirstAiredYear int      `json:"first_aired_year,omitempty"`
	Seasons        []Season `json:"seasons,omitempty"`
}

// Catalog holds the loaded show listings. It is immutable after Load
// and safe for concurrent readers.
type Catalog struct {
	path   string
	logger *slog.Logger
	shows  []Show
	byID   map[string]int
}

type catalogFile struct {
	Shows []Show `json:"shows"`
}

// Load reads and indexes the catalog file at path.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	byID := make(map[string]int, len(file.Shows))
	for i, show := range file.Shows {
		if strings.TrimSpace(show.ID) == "" {
			return nil, fmt.Errorf("parse catalog %s: show %d has no id", path, i)
		}
		if _, dup := byID[show.ID]; dup {
			return nil, fmt.Errorf("parse catalog %s: duplicate show id %q", path, show.ID)
		}
		byID[show.ID] = i
	}

	logger.Debug("catalog loaded",
		logging.String("path", path),
		logging.Int("shows", len(file.Shows)))

	return &Catalog{path: path, logger: logger, shows: file.Shows, byID: byID}, nil
}

// Len returns the number of shows in the catalog.
func (c *Catalog) Len() int { return len(c.shows) }

// Search implements showmatch.Source. It returns every show whose name
// or alias plausibly matches query, in catalog order. Plausible means
// token containment either way or similarity at or above the search
// floor; precise selection is left to the evaluator.
func (c *Catalog) Search(ctx context.Context, query string) ([]showmatch.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	queryTokens := showmatch.CanonicalTokens(showmatch.StripParenthetical(query))
	if queryTokens == "" {
		return nil, nil
	}

	var results []showmatch.Candidate
	for _, show := range c.shows {
		if matchesQuery(queryTokens, show) {
			results = append(results, showmatch.Candidate{
				ID:             show.ID,
				Name:           show.Name,
				Aliases:        append([]string(nil), show.Aliases...),
				FirstAiredYear: show.FirstAiredYear,
			})
		}
	}
	return results, nil
}

// ShowByID returns the full show record for a candidate id.
func (c *Catalog) ShowByID(id string) (Show, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Show{}, false
	}
	return c.shows[idx], true
}

// Episodes returns the episode listings for one season of a show.
func (c *Catalog) Episodes(id string, season int) ([]Episode, bool) {
	show, ok := c.ShowByID(id)
	if !ok {
		return nil, false
	}
	for _, s := range show.Seasons {
		if s.Number == season {
			return s.Episodes, true
		}
	}
	return nil, false
}

func matchesQuery(queryTokens string, show Show) bool {
	names := append([]string{show.Name}, show.Aliases...)
	for _, name := range names {
		nameTokens := showmatch.CanonicalTokens(name)
		if nameTokens == "" {
			continue
		}
		if strings.Contains(nameTokens, queryTokens) || strings.Contains(queryTokens, nameTokens) {
			return true
		}
		if textsim.Similarity(queryTokens, nameTokens) >= searchFloor {
			return true
		}
	}
	return false
}
