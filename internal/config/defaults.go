package config

import "retitle/internal/scan"

const (
	defaultCatalogPath = "~/.config/retitle/catalog.json"
	defaultPinDBPath   = "~/.local/state/retitle/pins.db"
	defaultLogDir      = "~/.local/state/retitle/logs"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogPath: defaultCatalogPath,
			PinDBPath:   defaultPinDBPath,
			LogDir:      defaultLogDir,
		},
		Matching: Matching{
			AutoAcceptScore:  0.80,
			AutoAcceptMargin: 0.10,
			YearTolerance:    1,
			PreselectScore:   0.60,
			PreselectMargin:  0.15,
		},
		Scan: Scan{
			VideoExtensions: append([]string(nil), scan.DefaultVideoExtensions...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
