package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"retitle/internal/catalog"
	"retitle/internal/logging"
	"retitle/internal/scan"
	"retitle/internal/showmatch"
	"retitle/internal/titlechain"
)

// Session resolves a batch of names or files against one catalog with
// one policy. Each session carries a correlation id so its log lines
// can be tied together.
type Session struct {
	id      string
	logger  *slog.Logger
	catalog *catalog.Catalog
	pins    showmatch.PinStore
	policy  showmatch.Policy
}

// NewSession builds a session. The pin store may be nil, in which case
// no pins apply.
func NewSession(cat *catalog.Catalog, pins showmatch.PinStore, policy showmatch.Policy, logger *slog.Logger) (*Session, error) {
	if cat == nil {
		return nil, errors.New("resolve session requires a catalog")
	}
	id := uuid.NewString()
	return &Session{
		id:      id,
		logger:  logging.NewComponentLogger(logger, "resolve"),
		catalog: cat,
		pins:    pins,
		policy:  policy.Normalized(),
	}, nil
}

// ID returns the session correlation id.
func (s *Session) ID() string { return s.id }

// Context returns ctx tagged with the session correlation id.
func (s *Session) Context(ctx context.Context) context.Context {
	return logging.WithCorrelationID(ctx, s.id)
}

// NameResult pairs a query with its show decision.
type NameResult struct {
	Query    string
	Decision showmatch.Decision
}

// ResolveName evaluates a single extracted name against the catalog.
func (s *Session) ResolveName(ctx context.Context, name string) (NameResult, error) {
	ctx = s.Context(ctx)
	logger := logging.WithContext(ctx, s.logger)

	pinnedID := s.lookupPin(ctx, name, logger)
	candidates, err := s.catalog.Search(ctx, name)
	if err != nil {
		return NameResult{}, fmt.Errorf("search catalog: %w", err)
	}

	decision := showmatch.Evaluate(name, candidates, pinnedID, s.policy)
	logger.Debug("show decision",
		logging.String("query", name),
		logging.String("outcome", decision.Outcome.String()),
		logging.String("reason", decision.Reason),
		logging.Int("candidates", len(candidates)))
	return NameResult{Query: name, Decision: decision}, nil
}

// ResolveNames evaluates each name in order.
func (s *Session) ResolveNames(ctx context.Context, names []string) ([]NameResult, error) {
	results := make([]NameResult, 0, len(names))
	for _, name := range names {
		result, err := s.ResolveName(ctx, name)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Plan resolves every file and assembles the rename report: show
// decisions, episode title rows, and the pre-selections implied by
// filename title hints.
func (s *Session) Plan(ctx context.Context, files []string) (*Report, error) {
	ctx = s.Context(ctx)
	logger := logging.WithContext(ctx, s.logger)

	report := &Report{SessionID: s.id}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result := FileResult{Path: path, RowIndex: -1}

		parsed, ok := scan.Parse(path)
		if !ok {
			result.Skipped = true
			logger.Debug("skipping unparseable file", logging.String("path", path))
			report.Files = append(report.Files, result)
			continue
		}
		result.Parsed = parsed

		query := parsed.Query()
		pinnedID := s.lookupPin(ctx, query, logger)
		candidates, err := s.catalog.Search(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("search catalog: %w", err)
		}
		result.Decision = showmatch.Evaluate(query, candidates, pinnedID, s.policy)
		logger.Debug("show decision",
			logging.String("path", path),
			logging.String("query", query),
			logging.String("outcome", result.Decision.Outcome.String()),
			logging.String("reason", result.Decision.Reason))

		if result.Decision.Outcome == showmatch.OutcomeResolved {
			result.RowIndex = s.appendRow(report, parsed, result.Decision.Chosen)
		}
		report.Files = append(report.Files, result)
	}

	s.preselect(report, logger)
	return report, nil
}

// appendRow turns the catalog's episode listing for one file into a
// title row. Returns -1 when the catalog has no listing for the slot.
func (s *Session) appendRow(report *Report, parsed scan.ParsedName, show *showmatch.Candidate) int {
	episodes, ok := s.catalog.Episodes(show.ID, parsed.Season)
	if !ok {
		return -1
	}
	for _, episode := range episodes {
		if episode.Number != parsed.Episode || len(episode.Options) == 0 {
			continue
		}
		options := make([]titlechain.Option, 0, len(episode.Options))
		for _, option := range episode.Options {
			options = append(options, titlechain.Option{Title: option.Title, Ref: option.Ref})
		}
		report.Rows = append(report.Rows, &titlechain.Row{ShowKey: show.ID, Options: options})
		return len(report.Rows) - 1
	}
	return -1
}

// preselect applies filename title hints to ambiguous rows and records
// every row the cascades changed.
func (s *Session) preselect(report *Report, logger *slog.Logger) {
	for _, file := range report.Files {
		if file.RowIndex < 0 || file.Parsed.TitleHint == "" {
			continue
		}
		changed := titlechain.Preselect(report.Rows, file.RowIndex, file.Parsed.TitleHint, s.policy)
		if len(changed) > 0 {
			logger.Debug("title hint pre-selected",
				logging.String("hint", file.Parsed.TitleHint),
				logging.Int("row", file.RowIndex),
				logging.Int("cascaded", len(changed)))
			report.markChanged(changed)
		}
	}
}

func (s *Session) lookupPin(ctx context.Context, query string, logger *slog.Logger) string {
	if s.pins == nil {
		return ""
	}
	id, ok, err := s.pins.Pin(ctx, query)
	if err != nil {
		logger.Warn("pin lookup failed",
			logging.String("query", query),
			logging.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return id
}
