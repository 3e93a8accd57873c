package showmatch

import "testing"

func TestCanonicalTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The.Night.Manager", "the night manager"},
		{"  Mr. Robot ", "mr robot"},
		{"The Office (US)", "the office us"},
		{"", ""},
		{"---", ""},
		{"What's  Up", "what s up"},
	}
	for _, tc := range tests {
		if got := CanonicalTokens(tc.in); got != tc.want {
			t.Fatalf("CanonicalTokens(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripParenthetical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The Office (US)", "The Office"},
		{"The Office", "The Office"},
		{"Archer (2009)", "Archer"},
		{"(US)", "(US)"},
		{"  Shameless (US)  ", "Shameless"},
	}
	for _, tc := range tests {
		if got := StripParenthetical(tc.in); got != tc.want {
			t.Fatalf("StripParenthetical(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestYearToken(t *testing.T) {
	tests := []struct {
		in   string
		year int
		ok   bool
	}{
		{"Archer (2010)", 2010, true},
		{"Archer 2009", 2009, true},
		{"2001", 2001, true},
		{"Archer", 0, false},
		{"Blade Runner 2049x", 0, false},
		{"19999", 0, false},
		{"Catch 22", 0, false},
	}
	for _, tc := range tests {
		year, ok := YearToken(tc.in)
		if year != tc.year || ok != tc.ok {
			t.Fatalf("YearToken(%q) = (%d, %v), want (%d, %v)", tc.in, year, ok, tc.year, tc.ok)
		}
	}
}
