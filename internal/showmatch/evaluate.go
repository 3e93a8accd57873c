package showmatch

import (
	"fmt"
	"sort"
	"strings"

	"retitle/internal/textsim"
)

const (
	reasonNoMatches  = "No matches"
	reasonPinned     = "Resolved via pinned ID"
	reasonExactName  = "Resolves via exact name match"
	reasonExactAlias = "Resolves via exact alias match"
	reasonBaseTitle  = "Preferred base title over parenthetical variants"
	reasonTokenMatch = "Preferred exact token match over extra tokens"
	reasonUnique     = "Resolves uniquely"
	reasonAmbiguous  = "Still ambiguous (would prompt)"
)

// Evaluate decides whether extractedName maps to exactly one candidate.
// Rules run in strict order; the first one that settles the question
// wins. A pinned id always beats name heuristics so a user override
// sticks even when another candidate's name matches better. The result
// is deterministic for identical inputs: every traversal walks the
// caller-supplied order and tie-break rules only fire when exactly one
// candidate qualifies.
func Evaluate(extractedName string, candidates []Candidate, pinnedID string, policy Policy) Decision {
	policy = policy.Normalized()

	if len(candidates) == 0 {
		return Decision{Outcome: OutcomeNotFound, Reason: reasonNoMatches}
	}

	if pinnedID != "" {
		for i := range candidates {
			if candidates[i].ID != "" && candidates[i].ID == pinnedID {
				return resolved(candidates[i], reasonPinned)
			}
		}
	}

	trimmed := strings.TrimSpace(extractedName)
	canonical := CanonicalTokens(extractedName)

	if trimmed != "" {
		if dec, ok := exactNameMatch(candidates, trimmed, canonical); ok {
			return dec
		}
		if dec, ok := exactAliasMatch(candidates, trimmed, canonical); ok {
			return dec
		}
	}
	if dec, ok := baseTitleTieBreak(candidates, canonical); ok {
		return dec
	}
	if dec, ok := tokenTieBreak(candidates, canonical); ok {
		return dec
	}
	if dec, ok := yearTieBreak(extractedName, candidates, policy.YearTolerance); ok {
		return dec
	}

	if len(candidates) == 1 {
		return resolved(candidates[0], reasonUnique)
	}

	return fuzzyFallback(trimmed, candidates, policy)
}

func resolved(c Candidate, reason string) Decision {
	chosen := c
	return Decision{Outcome: OutcomeResolved, Chosen: &chosen, Reason: reason}
}

func exactNameMatch(candidates []Candidate, trimmed, canonical string) (Decision, bool) {
	for i := range candidates {
		name := strings.TrimSpace(candidates[i].Name)
		if name == "" {
			continue
		}
		if strings.EqualFold(name, trimmed) || (canonical != "" && strings.EqualFold(name, canonical)) {
			return resolved(candidates[i], reasonExactName), true
		}
	}
	return Decision{}, false
}

func exactAliasMatch(candidates []Candidate, trimmed, canonical string) (Decision, bool) {
	for i := range candidates {
		if strings.TrimSpace(candidates[i].Name) == "" {
			continue
		}
		for _, alias := range candidates[i].Aliases {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			if strings.EqualFold(alias, trimmed) || (canonical != "" && strings.EqualFold(alias, canonical)) {
				return resolved(candidates[i], reasonExactAlias), true
			}
		}
	}
	return Decision{}, false
}

// baseTitleTieBreak prefers a bare "Title" candidate when the remaining
// competition is "Title (US)"-style regional variants. It stays silent
// when only suffixed variants exist so genuine ambiguity survives.
func baseTitleTieBreak(candidates []Candidate, canonical string) (Decision, bool) {
	if canonical == "" {
		return Decision{}, false
	}
	baseIdx := -1
	baseCount := 0
	for i := range candidates {
		name := strings.TrimSpace(candidates[i].Name)
		if name == "" || hasParentheticalSuffix(name) {
			continue
		}
		if CanonicalTokens(name) == canonical {
			baseIdx = i
			baseCount++
		}
	}
	if baseCount != 1 {
		return Decision{}, false
	}
	base := strings.TrimSpace(candidates[baseIdx].Name)
	for i := range candidates {
		if i == baseIdx {
			continue
		}
		name := strings.TrimSpace(candidates[i].Name)
		if name == "" || !hasParentheticalSuffix(name) {
			continue
		}
		if strings.EqualFold(StripParenthetical(name), base) {
			return resolved(candidates[baseIdx], reasonBaseTitle), true
		}
	}
	return Decision{}, false
}

func tokenTieBreak(candidates []Candidate, canonical string) (Decision, bool) {
	if canonical == "" {
		return Decision{}, false
	}
	matchIdx := -1
	count := 0
	for i := range candidates {
		name := strings.TrimSpace(candidates[i].Name)
		if name == "" {
			continue
		}
		if CanonicalTokens(name) == canonical {
			matchIdx = i
			count++
		}
	}
	if count != 1 {
		return Decision{}, false
	}
	return resolved(candidates[matchIdx], reasonTokenMatch), true
}

func yearTieBreak(extractedName string, candidates []Candidate, tolerance int) (Decision, bool) {
	year, ok := YearToken(extractedName)
	if !ok {
		return Decision{}, false
	}
	matchIdx := -1
	count := 0
	for i := range candidates {
		aired := candidates[i].FirstAiredYear
		if aired == 0 {
			continue
		}
		diff := year - aired
		if diff < 0 {
			diff = -diff
		}
		if diff <= tolerance {
			matchIdx = i
			count++
		}
	}
	if count != 1 {
		return Decision{}, false
	}
	reason := fmt.Sprintf("Resolved via FirstAiredYear (±%d) match", tolerance)
	return resolved(candidates[matchIdx], reason), true
}

func fuzzyFallback(trimmed string, candidates []Candidate, policy Policy) Decision {
	ranked := make([]ScoredCandidate, 0, len(candidates))
	for i := range candidates {
		ranked = append(ranked, ScoredCandidate{
			Candidate: candidates[i],
			Score:     bestSimilarity(trimmed, candidates[i]),
		})
	}
	// Stable sort keeps caller order for equal scores.
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].Score > ranked[b].Score })

	best := ranked[0].Score
	second := 0.0
	if len(ranked) > 1 {
		second = ranked[1].Score
	}
	margin := best - second
	if best >= policy.AutoAcceptScore && margin >= policy.AutoAcceptMargin {
		reason := fmt.Sprintf("Resolved via fuzzy match: %.0f%% score, %.0f%% margin", best*100, margin*100)
		return resolved(ranked[0].Candidate, reason)
	}
	return Decision{Outcome: OutcomeAmbiguous, Reason: reasonAmbiguous, Ranked: ranked}
}

func bestSimilarity(query string, c Candidate) float64 {
	best := 0.0
	if strings.TrimSpace(c.Name) != "" {
		best = textsim.Similarity(query, c.Name)
	}
	for _, alias := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			continue
		}
		if s := textsim.Similarity(query, alias); s > best {
			best = s
		}
	}
	return best
}
