// Package config loads, normalizes, and validates retitle configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every
// knob the CLI needs: catalog and pin store locations, the matching
// thresholds, scan extensions, and log output settings.
//
// Always obtain settings through this package so downstream code
// receives sanitized paths, canonical log formats, and clear validation
// errors.
package config
