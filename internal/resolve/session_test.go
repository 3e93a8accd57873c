package resolve_test

import (
	"context"
	"testing"

	"retitle/internal/catalog"
	"retitle/internal/config"
	"retitle/internal/resolve"
	"retitle/internal/showmatch"
	"retitle/internal/testsupport"
)

const fixtureJSON = `{
  "shows": [
    {
      "id": "macgyver",
      "name": "MacGyver",
      "first_aired_year": 1985,
      "seasons": [
        {
          "number": 1,
          "episodes": [
            {
              "number": 18,
              "options": [
                {"title": "Rock the Cradle", "ref": "mg/1/18a"},
                {"title": "The Madonna", "ref": "mg/1/18b"}
              ]
            },
            {
              "number": 19,
              "options": [
                {"title": "The Madonna", "ref": "mg/1/19a"},
                {"title": "Thin Ice", "ref": "mg/1/19b"}
              ]
            },
            {
              "number": 20,
              "options": [
                {"title": "Thin Ice", "ref": "mg/1/20a"},
                {"title": "The Widowmaker", "ref": "mg/1/20b"}
              ]
            }
          ]
        }
      ]
    },
    {
      "id": "archer-2009",
      "name": "Archer",
      "first_aired_year": 2009
    },
    {
      "id": "archer-1999",
      "name": "Archer",
      "first_aired_year": 1999
    }
  ]
}`

type staticPins map[string]string

func (p staticPins) Pin(_ context.Context, query string) (string, bool, error) {
	id, ok := p[showmatch.CanonicalTokens(query)]
	return id, ok, nil
}

func newSessionWithConfig(t *testing.T, pins showmatch.PinStore, opts ...testsupport.ConfigOption) *resolve.Session {
	t.Helper()
	opts = append([]testsupport.ConfigOption{testsupport.WithCatalog(fixtureJSON)}, opts...)
	cfg := testsupport.NewConfig(t, opts...)
	cat, err := catalog.Load(cfg.Paths.CatalogPath, nil)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	session, err := resolve.NewSession(cat, pins, cfg.MatchPolicy(), nil)
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	return session
}

func newSession(t *testing.T, pins showmatch.PinStore) *resolve.Session {
	t.Helper()
	return newSessionWithConfig(t, pins)
}

func TestPlanPreselectCascadesAcrossFiles(t *testing.T) {
	session := newSession(t, nil)
	files := []string{
		"MacGyver.S01E18.The.Madonna.720p.HDTV.mkv",
		"MacGyver.S01E19.mkv",
		"MacGyver.S01E20.mkv",
	}

	report, err := session.Plan(context.Background(), files)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if len(report.Files) != 3 || len(report.Rows) != 3 {
		t.Fatalf("report shape: %d files, %d rows", len(report.Files), len(report.Rows))
	}

	// The E18 hint claims "The Madonna", which forces E19 to "Thin Ice"
	// and E20 to "The Widowmaker".
	wantTitles := []string{"The Madonna", "Thin Ice", "The Widowmaker"}
	for i, want := range wantTitles {
		if got := report.Rows[i].Chosen().Title; got != want {
			t.Fatalf("row %d chose %q, want %q", i, got, want)
		}
	}
	if len(report.Changed) != 3 {
		t.Fatalf("changed = %v", report.Changed)
	}

	name, ok := report.ProposedName(0)
	if !ok || name != "MacGyver - S01E18 - The Madonna.mkv" {
		t.Fatalf("proposed name = %q, %v", name, ok)
	}
}

func TestPlanPreselectHonorsConfiguredThresholds(t *testing.T) {
	session := newSessionWithConfig(t, nil, testsupport.WithMatching(config.Matching{
		AutoAcceptScore:  0.80,
		AutoAcceptMargin: 0.10,
		YearTolerance:    1,
		PreselectScore:   0.95,
		PreselectMargin:  0.15,
	}))

	// The misspelled hint scores ~0.91 against "The Madonna", under the
	// raised pre-selection threshold, so no row may flip.
	report, err := session.Plan(context.Background(), []string{
		"MacGyver.S01E18.The.Madona.mkv",
		"MacGyver.S01E19.mkv",
	})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if len(report.Changed) != 0 {
		t.Fatalf("changed = %v", report.Changed)
	}
	if got := report.Rows[0].Chosen().Title; got != "Rock the Cradle" {
		t.Fatalf("row 0 chose %q", got)
	}
}

func TestPlanSkipsUnparseableFiles(t *testing.T) {
	session := newSession(t, nil)
	report, err := session.Plan(context.Background(), []string{"random-clip.mkv"})
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}
	if len(report.Files) != 1 || !report.Files[0].Skipped {
		t.Fatalf("report = %+v", report.Files)
	}
	if _, ok := report.ProposedName(0); ok {
		t.Fatalf("skipped file produced a proposed name")
	}
}

func TestResolveNameAmbiguousWithoutPin(t *testing.T) {
	session := newSession(t, nil)
	// "Archers" matches both Archer entries equally well, so nothing can
	// separate them without a pin or a year.
	result, err := session.ResolveName(context.Background(), "Archers")
	if err != nil {
		t.Fatalf("ResolveName() error: %v", err)
	}
	if result.Decision.Outcome != showmatch.OutcomeAmbiguous {
		t.Fatalf("decision = %+v", result.Decision)
	}
}

func TestResolveNamePinWins(t *testing.T) {
	pins := staticPins{showmatch.CanonicalTokens("Archer"): "archer-1999"}
	session := newSession(t, pins)

	result, err := session.ResolveName(context.Background(), "Archer")
	if err != nil {
		t.Fatalf("ResolveName() error: %v", err)
	}
	if result.Decision.Outcome != showmatch.OutcomeResolved || result.Decision.Chosen.ID != "archer-1999" {
		t.Fatalf("decision = %+v", result.Decision)
	}
	if result.Decision.Reason != "Resolved via pinned ID" {
		t.Fatalf("reason = %q", result.Decision.Reason)
	}
}

func TestReportSelectCascades(t *testing.T) {
	session := newSession(t, nil)
	files := []string{
		"MacGyver.S01E18.mkv",
		"MacGyver.S01E19.mkv",
		"MacGyver.S01E20.mkv",
	}
	report, err := session.Plan(context.Background(), files)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	changed, err := report.Select(0, "The Madonna")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if len(changed) != 3 {
		t.Fatalf("changed = %v", changed)
	}
	if got := report.Rows[2].Chosen().Title; got != "The Widowmaker" {
		t.Fatalf("row 2 chose %q", got)
	}

	if _, err := report.Select(0, "Not an Option"); err == nil {
		t.Fatalf("unknown title accepted")
	}
	if _, err := report.Select(99, "The Madonna"); err == nil {
		t.Fatalf("out-of-range row accepted")
	}
}

func TestSessionIDsDiffer(t *testing.T) {
	first := newSession(t, nil)
	second := newSession(t, nil)
	if first.ID() == "" || first.ID() == second.ID() {
		t.Fatalf("session ids: %q, %q", first.ID(), second.ID())
	}
}
