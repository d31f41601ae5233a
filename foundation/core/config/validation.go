// File: validation.go
// Title: Configuration Validation
// Description: Checks configuration values against simple rules so that a
//              typo in a config file is reported before any command runs.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-18 v0.1.1: Log levels come from the log package

package config

import (
	"fmt"
	"sort"
	"strings"

	rberr "github.com/msto63/rbstr/foundation/core/error"
	"github.com/msto63/rbstr/foundation/core/log"
)

// ValidationRule describes the accepted values for one key
type ValidationRule struct {
	Required bool
	// OneOf lists the accepted values, compared case-insensitively
	OneOf []string
	// Type is "string" or "bool"; empty accepts anything
	Type string
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// DefaultRules returns the rules for the keys read by the rbstr command
func DefaultRules() ValidationRules {
	return ValidationRules{
		"log.level":     {Type: "string", OneOf: log.LevelNames()},
		"log.format":    {Type: "string", OneOf: []string{"text", "json", "logfmt"}},
		"output.format": {Type: "string", OneOf: []string{"text", "json"}},
		"split.literal": {Type: "bool"},
		"justify.pad":   {Type: "string"},
	}
}

// Validate checks every rule and returns a single INVALID_CONFIG error
// listing all problems, or nil.
func (c *Config) Validate(rules ValidationRules) error {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []string
	for _, key := range keys {
		if problem := c.validateField(key, rules[key]); problem != "" {
			problems = append(problems, problem)
		}
	}

	if len(problems) == 0 {
		return nil
	}

	err := rberr.New("invalid configuration: "+strings.Join(problems, "; ")).
		WithCode(rberr.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("problems", problems)
	if path := c.FilePath(); path != "" {
		err = err.WithDetail("path", path)
	}
	return err
}

func (c *Config) validateField(key string, rule ValidationRule) string {
	if !c.Has(key) {
		if rule.Required {
			return fmt.Sprintf("%s is required", key)
		}
		return ""
	}

	c.mu.RLock()
	raw := c.getValue(key)
	c.mu.RUnlock()

	switch rule.Type {
	case "bool":
		if _, isBool := raw.(bool); raw != nil && !isBool {
			return fmt.Sprintf("%s must be true or false", key)
		}
	case "string":
		if _, isString := raw.(string); raw != nil && !isString {
			return fmt.Sprintf("%s must be a string", key)
		}
	}

	if len(rule.OneOf) > 0 {
		value := strings.ToLower(c.GetString(key))
		for _, allowed := range rule.OneOf {
			if value == allowed {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of %s, got %q", key, strings.Join(rule.OneOf, ", "), value)
	}

	return ""
}
