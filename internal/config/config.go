package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/halvard/edittree/edit"
	"github.com/halvard/edittree/internal/config/loader"
)

// Config holds the engine-wide tuning a caller would otherwise have to pass
// to every Apply call by hand.
type Config struct {
	// DefaultFlags is the edit.Flags combination used when a caller
	// doesn't specify one of their own.
	DefaultFlags edit.Flags
	// MaxTreeDepth rejects a tree deeper than this before pass A runs.
	// 0 disables the guard.
	MaxTreeDepth int
	// ConsiderScript, if set, is the path to a Lua script supplying the
	// processor's inclusion predicate (see the script package).
	ConsiderScript string
	// BoundaryWarnings makes the CLI run the grapheme/combining-mark
	// advisory check (edit.CheckBoundaries) before Apply.
	BoundaryWarnings bool
}

// Default returns the engine's built-in defaults.
func Default() Config {
	return Config{
		DefaultFlags:     edit.DefaultFlags,
		MaxTreeDepth:     0,
		BoundaryWarnings: false,
	}
}

// Load reads a TOML file at path (if it exists), then applies EDITTREE_*
// environment variable overrides, and validates the result. A missing file
// is not an error: Load falls back to Default and still applies env
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := loader.NewTOMLLoader(path).Load()
		if err != nil {
			return Config{}, err
		}
		if raw != nil {
			applyTOML(&cfg, raw)
		}
	}

	env, err := loader.NewEnvLoader().Load()
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg, env)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration's values are internally
// consistent, returning a *ValidationError wrapping ErrInvalidConfig when
// they are not.
func (c Config) Validate() error {
	if c.MaxTreeDepth < 0 {
		return &ValidationError{Field: "maxTreeDepth", Value: c.MaxTreeDepth, Message: "must be >= 0"}
	}
	if c.ConsiderScript != "" {
		if _, err := os.Stat(c.ConsiderScript); err != nil {
			return &ValidationError{Field: "considerScript", Value: c.ConsiderScript, Message: "file not found"}
		}
	}
	return nil
}

func applyTOML(cfg *Config, raw map[string]any) {
	if v, ok := raw["maxTreeDepth"]; ok {
		if n, ok := toInt(v); ok {
			cfg.MaxTreeDepth = n
		}
	}
	if v, ok := raw["considerScript"]; ok {
		if s, ok := v.(string); ok {
			cfg.ConsiderScript = resolvePath(s)
		}
	}
	if v, ok := raw["boundaryWarnings"]; ok {
		if b, ok := v.(bool); ok {
			cfg.BoundaryWarnings = b
		}
	}
	if v, ok := raw["defaultFlags"]; ok {
		if flags, ok := v.([]any); ok {
			cfg.DefaultFlags = parseFlagNames(flags)
		}
	}
}

func applyEnv(cfg *Config, env map[string]any) {
	if v, ok := env["maxTreeDepth"]; ok {
		if n, ok := toInt(v); ok {
			cfg.MaxTreeDepth = n
		}
	}
	if v, ok := env["considerScript"]; ok {
		if s, ok := v.(string); ok {
			cfg.ConsiderScript = resolvePath(s)
		}
	}
	if v, ok := env["boundaryWarnings"]; ok {
		if b, ok := v.(bool); ok {
			cfg.BoundaryWarnings = b
		}
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int64:
		return int(n), true
	case int:
		return n, true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func parseFlagNames(names []any) edit.Flags {
	var f edit.Flags
	for _, n := range names {
		s, ok := n.(string)
		if !ok {
			continue
		}
		switch s {
		case "createUndo":
			f |= edit.FlagCreateUndo
		case "updateRegions":
			f |= edit.FlagUpdateRegions
		}
	}
	return f
}

func resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

// String implements fmt.Stringer for debug logging.
func (c Config) String() string {
	return fmt.Sprintf("Config{DefaultFlags:%v MaxTreeDepth:%d ConsiderScript:%q BoundaryWarnings:%v}",
		c.DefaultFlags, c.MaxTreeDepth, c.ConsiderScript, c.BoundaryWarnings)
}
