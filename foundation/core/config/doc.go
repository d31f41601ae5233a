// Package config loads rbstr settings from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: rbstr Configuration
// Description: Reads configuration files in TOML or YAML, exposes values
//              through dot-notation getters with defaults and lets
//              environment variables override any key. Discover searches
//              the standard rbstr locations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-01 v0.1.0: TOML/YAML loading and getters
// - 2026-10-13 v0.2.0: Discovery and validation rules
//
// Keys used by the rbstr command:
//
//	[log]
//	level  = "warn"    # trace, debug, info, warn, error
//	format = "text"    # text, json, logfmt
//
//	[output]
//	format = "text"    # text, json
//
//	[split]
//	literal = false    # treat split patterns as literal text
//
//	[justify]
//	pad = " "
//
// With the prefix "RBSTR" the key log.level is overridden by RBSTR_LOG_LEVEL.
//
// Usage:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	level := cfg.GetString("log.level", "warn")
package config
