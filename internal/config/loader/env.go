package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvLoader loads configuration from environment variables, using a fixed
// mapping from variable name to the flat config key it overrides.
type EnvLoader struct {
	mapping map[string]string
}

// NewEnvLoader creates an environment variable loader using the engine's
// built-in EDITTREE_* mapping.
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{mapping: defaultEnvMapping()}
}

// defaultEnvMapping maps each recognized environment variable to the flat
// config key it overrides.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"EDITTREE_MAX_TREE_DEPTH":    "maxTreeDepth",
		"EDITTREE_CONSIDER_SCRIPT":   "considerScript",
		"EDITTREE_BOUNDARY_WARNINGS": "boundaryWarnings",
	}
}

// Load reads the mapped environment variables and returns a flat
// configuration map keyed the same way TOML loading produces one.
// Note: empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, key := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			config[key] = l.parseValue(val)
		}
	}
	return config, nil
}

// parseValue attempts to parse the string value into an appropriate type.
func (l *EnvLoader) parseValue(s string) any {
	// Empty string
	if s == "" {
		return s
	}

	// Try bool
	lower := strings.ToLower(s)
	if lower == "true" || lower == "yes" || lower == "on" || s == "1" {
		return true
	}
	if lower == "false" || lower == "no" || lower == "off" || s == "0" {
		return false
	}

	// Try int
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Try float (only if it contains a decimal point to avoid misinterpreting ints)
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	// Try duration
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	// Try JSON array/object
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	// Default to string
	return s
}
