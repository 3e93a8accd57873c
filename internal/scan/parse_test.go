package scan

import "testing"

func TestParseStandardMarker(t *testing.T) {
	parsed, ok := Parse("The.Night.Manager.S01E03.1080p.WEB-DL.x265.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.Show != "The Night Manager" {
		t.Fatalf("show = %q", parsed.Show)
	}
	if parsed.Season != 1 || parsed.Episode != 3 {
		t.Fatalf("season/episode = %d/%d", parsed.Season, parsed.Episode)
	}
	if parsed.Ext != ".mkv" {
		t.Fatalf("ext = %q", parsed.Ext)
	}
	if parsed.TitleHint != "" {
		t.Fatalf("noise-only tail produced hint %q", parsed.TitleHint)
	}
}

func TestParseTitleHint(t *testing.T) {
	parsed, ok := Parse("MacGyver.S01E18.Rock.the.Cradle.720p.HDTV.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.TitleHint != "Rock the Cradle" {
		t.Fatalf("hint = %q", parsed.TitleHint)
	}
}

func TestParseEmbeddedYear(t *testing.T) {
	parsed, ok := Parse("Archer.(2009).S05E01.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.Show != "Archer" || parsed.Year != 2009 {
		t.Fatalf("show/year = %q/%d", parsed.Show, parsed.Year)
	}
	if got := parsed.Query(); got != "Archer (2009)" {
		t.Fatalf("query = %q", got)
	}
}

func TestParseYearOnlyShowName(t *testing.T) {
	// A show literally named after a year must not lose its name to the
	// year extractor.
	parsed, ok := Parse("1923.S01E02.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.Show != "1923" || parsed.Year != 0 {
		t.Fatalf("show/year = %q/%d", parsed.Show, parsed.Year)
	}
}

func TestParseAlternateMarker(t *testing.T) {
	parsed, ok := Parse("Fargo - 2x04 - Fear and Trembling.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.Show != "Fargo" {
		t.Fatalf("show = %q", parsed.Show)
	}
	if parsed.Season != 2 || parsed.Episode != 4 {
		t.Fatalf("season/episode = %d/%d", parsed.Season, parsed.Episode)
	}
	if parsed.TitleHint != "Fear and Trembling" {
		t.Fatalf("hint = %q", parsed.TitleHint)
	}
}

func TestParseNoMarker(t *testing.T) {
	if _, ok := Parse("Some Random Movie (2020).mkv"); ok {
		t.Fatalf("markerless name should not parse")
	}
	if _, ok := Parse(""); ok {
		t.Fatalf("empty name should not parse")
	}
}

func TestParseUsesBaseName(t *testing.T) {
	parsed, ok := Parse("/library/tv/Mr. Robot/Mr.Robot.S02E05.mkv")
	if !ok {
		t.Fatalf("expected parse to succeed")
	}
	if parsed.Show != "Mr Robot" {
		t.Fatalf("show = %q", parsed.Show)
	}
	if parsed.Season != 2 || parsed.Episode != 5 {
		t.Fatalf("season/episode = %d/%d", parsed.Season, parsed.Episode)
	}
}
