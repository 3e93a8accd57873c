package scan

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	// seasonEpisodePattern matches canonical forms: S01E02, s1e2, S01.E02.
	seasonEpisodePattern = regexp.MustCompile(`(?i)\bS(\d{1,2})[\s._-]*E(\d{1,3})\b`)

	// altSeasonEpisodePattern matches the NxNN convention: 1x02, 10x12.
	altSeasonEpisodePattern = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})\b`)

	// trailingYearPattern captures a year left at the end of the show
	// segment, parenthesized or bare.
	trailingYearPattern = regexp.MustCompile(`(?i)\s*(?:\(|\b)((?:19|20)\d{2})\)?\s*$`)

	// qualityNoisePattern finds the first codec/resolution/source tag;
	// everything from there on is release noise, not title.
	qualityNoisePattern = regexp.MustCompile(`(?i)\b(?:480p|576p|720p|1080p|2160p|4k|uhd|hdr10?|dv|x26[45]|h[ .]?26[45]|hevc|avc|xvid|divx|aac|ac3|eac3|dd5|dts|flac|mp3|opus|web-?dl|web-?rip|bluray|blu-ray|bdrip|brrip|dvdrip|hdtv|pdtv|remux|proper|repack|internal|limited|extended|uncut|multi|dual|10bit|8bit)\b`)

	whitespacePattern = regexp.MustCompile(`\s+`)
	separatorReplacer = strings.NewReplacer(".", " ", "_", " ", "-", " ", "–", " ")
)

// ParsedName is the structured form of one release-style filename.
// TitleHint is the episode-title fragment between the season/episode
// marker and the first quality tag; it is empty when the filename
// carries no title.
type ParsedName struct {
	Show      string
	Season    int
	Episode   int
	Year      int
	TitleHint string
	Ext       string
}

// Parse extracts show, season/episode, year, and title hint from a
// filename or path. It reports false when no season/episode marker is
// present; everything else is best effort.
func Parse(name string) (ParsedName, bool) {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	loc := seasonEpisodePattern.FindStringSubmatchIndex(stem)
	if loc == nil {
		loc = altSeasonEpisodePattern.FindStringSubmatchIndex(stem)
	}
	if loc == nil {
		return ParsedName{}, false
	}

	season, _ := strconv.Atoi(stem[loc[2]:loc[3]])
	episode, _ := strconv.Atoi(stem[loc[4]:loc[5]])

	show, year := splitShowYear(cleanSegment(stem[:loc[0]]))
	hint := cleanSegment(stripQualityNoise(stem[loc[1]:]))

	return ParsedName{
		Show:      show,
		Season:    season,
		Episode:   episode,
		Year:      year,
		TitleHint: hint,
		Ext:       ext,
	}, true
}

// Query rebuilds the search string for the show, reattaching the year
// so year-aware disambiguation can see it.
func (p ParsedName) Query() string {
	if p.Year > 0 {
		return p.Show + " (" + strconv.Itoa(p.Year) + ")"
	}
	return p.Show
}

func cleanSegment(value string) string {
	cleaned := separatorReplacer.Replace(value)
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func splitShowYear(value string) (string, int) {
	matches := trailingYearPattern.FindStringSubmatch(value)
	if len(matches) != 2 {
		return value, 0
	}
	year, err := strconv.Atoi(matches[1])
	if err != nil {
		return value, 0
	}
	cleaned := strings.TrimSpace(trailingYearPattern.ReplaceAllString(value, ""))
	if cleaned == "" {
		// A bare year is the whole name, not an annotation.
		return value, 0
	}
	return strings.Trim(cleaned, "() "), year
}

func stripQualityNoise(value string) string {
	if loc := qualityNoisePattern.FindStringIndex(value); loc != nil {
		return value[:loc[0]]
	}
	return value
}
