package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"retitle/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CatalogPath = filepath.Join(base, "catalog.json")
	cfgVal.Paths.PinDBPath = filepath.Join(base, "pins.db")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:   t,
		cfg: &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCatalog writes the provided catalog JSON into the test config's
// catalog path.
func WithCatalog(jsonDoc string) ConfigOption {
	return func(b *configBuilder) {
		WriteCatalog(b.t, b.cfg.Paths.CatalogPath, jsonDoc)
	}
}

// WithMatching overrides the matching thresholds on the test config.
func WithMatching(matching config.Matching) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching = matching
	}
}

// WriteConfigFile marshals cfg into a TOML file under a fresh temp dir
// and returns its path, for tests that drive the CLI's --config flag.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}
