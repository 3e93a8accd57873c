package showmatch

import "context"

// Candidate is one show returned by a provider search, competing to match
// an extracted name. ID is stable per show and unique within a provider.
type Candidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases,omitempty"`
	FirstAiredYear int      `json:"first_aired_year,omitempty"`
}

// ScoredCandidate pairs a candidate with its fuzzy similarity score.
// A score of 1.0 means the name matched exactly after case folding.
type ScoredCandidate struct {
	Candidate Candidate `json:"candidate"`
	Score     float64   `json:"score"`
}

// Outcome classifies an evaluation result.
type Outcome int

const (
	// OutcomeNotFound means no candidate could apply.
	OutcomeNotFound Outcome = iota
	// OutcomeResolved means exactly one candidate was selected.
	OutcomeResolved
	// OutcomeAmbiguous means a human (or a pin) has to decide.
	OutcomeAmbiguous
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeAmbiguous:
		return "ambiguous"
	default:
		return "not_found"
	}
}

// MarshalText renders the outcome for JSON output.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Decision is the evaluator's verdict for one extracted name.
// Chosen is set only for OutcomeResolved; Ranked is populated only for
// OutcomeAmbiguous and is sorted by descending score.
type Decision struct {
	Outcome Outcome           `json:"outcome"`
	Chosen  *Candidate        `json:"chosen,omitempty"`
	Reason  string            `json:"reason"`
	Ranked  []ScoredCandidate `json:"ranked,omitempty"`
}

// Source supplies show candidates for a search query. Implementations
// are injected by the host; the evaluator itself never performs lookups.
type Source interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// PinStore resolves a persisted candidate-id override for a query.
// The boolean reports whether a pin exists.
type PinStore interface {
	Pin(ctx context.Context, query string) (string, bool, error)
}
