package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"retitle/internal/testsupport"
)

const testCatalog = `{
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
            }
          ]
        }
      ]
    },
    {"id": "office-us", "name": "The Office (US)", "first_aired_year": 2005},
    {"id": "office-uk", "name": "The Office (UK)", "first_aired_year": 2001}
  ]
}`

// writeTestConfig builds a config file pointing every path into the
// test's temp dir and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithCatalog(testCatalog))
	return testsupport.WriteConfigFile(t, cfg)
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	output, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatalf("second init without --overwrite succeeded")
	}
	if _, err := runCommand(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("init with --overwrite failed: %v", err)
	}
}

func TestConfigShowCommand(t *testing.T) {
	configPath := writeTestConfig(t)
	output, err := runCommand(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "[matching]") {
		t.Fatalf("effective config missing matching section:\n%s", output)
	}
	if !strings.Contains(output, "catalog.json") {
		t.Fatalf("catalog path not shown:\n%s", output)
	}
}

func TestResolveCommandJSON(t *testing.T) {
	configPath := writeTestConfig(t)

	output, err := runCommand(t, "--config", configPath, "--json", "resolve", "MacGyver")
	if err != nil {
		t.Fatalf("resolve failed: %v\n%s", err, output)
	}

	var results []struct {
		Query    string `json:"Query"`
		Decision struct {
			Outcome string `json:"outcome"`
			Chosen  *struct {
				ID string `json:"id"`
			} `json:"chosen"`
		} `json:"Decision"`
	}
	if err := json.Unmarshal([]byte(output), &results); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, output)
	}
	if len(results) != 1 || results[0].Decision.Outcome != "resolved" {
		t.Fatalf("unexpected results: %s", output)
	}
	if results[0].Decision.Chosen == nil || results[0].Decision.Chosen.ID != "macgyver" {
		t.Fatalf("unexpected chosen candidate: %s", output)
	}
}

func TestResolveCommandAmbiguousTable(t *testing.T) {
	configPath := writeTestConfig(t)

	output, err := runCommand(t, "--config", configPath, "resolve", "The Office")
	if err != nil {
		t.Fatalf("resolve failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "ambiguous") {
		t.Fatalf("ambiguity not reported:\n%s", output)
	}
	if !strings.Contains(output, "office-us") || !strings.Contains(output, "office-uk") {
		t.Fatalf("candidates not listed:\n%s", output)
	}
	if !strings.Contains(output, "retitle pin set") {
		t.Fatalf("pin hint missing:\n%s", output)
	}
}

func TestPinCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	if output, err := runCommand(t, "--config", configPath, "pin", "set", "The Office", "office-uk"); err != nil {
		t.Fatalf("pin set failed: %v\n%s", err, output)
	}

	output, err := runCommand(t, "--config", configPath, "pin", "list")
	if err != nil {
		t.Fatalf("pin list failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "office-uk") {
		t.Fatalf("pin not listed:\n%s", output)
	}

	// The pin resolves the previously ambiguous query.
	output, err = runCommand(t, "--config", configPath, "resolve", "The Office")
	if err != nil {
		t.Fatalf("resolve failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Resolved via pinned ID") {
		t.Fatalf("pin did not resolve query:\n%s", output)
	}

	if output, err = runCommand(t, "--config", configPath, "pin", "clear", "The Office"); err != nil {
		t.Fatalf("pin clear failed: %v\n%s", err, output)
	}
	output, err = runCommand(t, "--config", configPath, "pin", "list")
	if err != nil {
		t.Fatalf("pin list failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No pins recorded in ") || !strings.Contains(output, "pins.db") {
		t.Fatalf("pin survived clear or store path missing:\n%s", output)
	}
}

func TestPlanCommand(t *testing.T) {
	configPath := writeTestConfig(t)

	dir := t.TempDir()
	testsupport.WriteVideoFiles(t, dir,
		"MacGyver.S01E18.The.Madonna.720p.mkv",
		"MacGyver.S01E19.mkv",
		"notes.txt")

	output, err := runCommand(t, "--config", configPath, "plan", dir)
	if err != nil {
		t.Fatalf("plan failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "MacGyver - S01E18 - The Madonna.mkv") {
		t.Fatalf("proposed name missing:\n%s", output)
	}
	// The E18 hint forces E19 onto the other option in its pair.
	if !strings.Contains(output, "MacGyver - S01E19 - Thin Ice.mkv") {
		t.Fatalf("cascaded title missing:\n%s", output)
	}
	if !strings.Contains(output, "2 planned") {
		t.Fatalf("summary missing:\n%s", output)
	}
}

func TestPlanCommandJSON(t *testing.T) {
	configPath := writeTestConfig(t)

	dir := t.TempDir()
	testsupport.WriteVideoFiles(t, dir, "MacGyver.S01E18.mkv")

	output, err := runCommand(t, "--config", configPath, "--json", "plan", dir)
	if err != nil {
		t.Fatalf("plan failed: %v\n%s", err, output)
	}
	var report struct {
		SessionID string `json:"session_id"`
		Files     []struct {
			RowIndex int `json:"row_index"`
		} `json:"files"`
	}
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, output)
	}
	if report.SessionID == "" || len(report.Files) != 1 {
		t.Fatalf("unexpected report: %s", output)
	}
	if report.Files[0].RowIndex != 0 {
		t.Fatalf("row index = %d", report.Files[0].RowIndex)
	}
}
