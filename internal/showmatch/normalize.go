package showmatch

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	yearTokenPattern           = regexp.MustCompile(`(?:^|[\s(])((?:19|20)\d{2})(?:[\s)]|$)`)
	parentheticalSuffixPattern = regexp.MustCompile(`\s*\([^()]*\)$`)
)

// CanonicalTokens lowercases a name, strips punctuation to spaces, and
// collapses runs of whitespace, yielding a stable token string for
// comparisons ("The.Night-Manager " -> "the night manager").
func CanonicalTokens(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// StripParenthetical removes a single trailing parenthesized suffix, e.g.
// "The Office (US)" -> "The Office". Names that are nothing but a
// parenthetical are returned trimmed and unchanged.
func StripParenthetical(value string) string {
	trimmed := strings.TrimSpace(value)
	stripped := strings.TrimSpace(parentheticalSuffixPattern.ReplaceAllString(trimmed, ""))
	if stripped == "" {
		return trimmed
	}
	return stripped
}

func hasParentheticalSuffix(value string) bool {
	trimmed := strings.TrimSpace(value)
	if !strings.HasSuffix(trimmed, ")") {
		return false
	}
	return StripParenthetical(trimmed) != trimmed
}

// YearToken extracts a 4-digit 19xx/20xx year bounded by whitespace,
// parentheses, or the string edges.
func YearToken(value string) (int, bool) {
	m := yearTokenPattern.FindStringSubmatch(value)
	if len(m) != 2 {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}
