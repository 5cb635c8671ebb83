package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/halvard/edittree/edit"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.DefaultFlags != edit.DefaultFlags {
		t.Errorf("DefaultFlags: got %v, want %v", cfg.DefaultFlags, edit.DefaultFlags)
	}
	if cfg.MaxTreeDepth != 0 {
		t.Errorf("MaxTreeDepth: got %d, want 0", cfg.MaxTreeDepth)
	}
	if cfg.BoundaryWarnings {
		t.Error("BoundaryWarnings should default to false")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultFlags != edit.DefaultFlags {
		t.Errorf("expected default flags, got %v", cfg.DefaultFlags)
	}
}

func TestLoadParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edittree.toml")
	content := `
maxTreeDepth = 32
boundaryWarnings = true
defaultFlags = ["createUndo"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTreeDepth != 32 {
		t.Errorf("MaxTreeDepth: got %d, want 32", cfg.MaxTreeDepth)
	}
	if !cfg.BoundaryWarnings {
		t.Error("BoundaryWarnings: expected true")
	}
	if cfg.DefaultFlags != edit.FlagCreateUndo {
		t.Errorf("DefaultFlags: got %v, want %v", cfg.DefaultFlags, edit.FlagCreateUndo)
	}
}

func TestLoadEnvOverridesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "edittree.toml")
	if err := os.WriteFile(path, []byte("maxTreeDepth = 5\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	t.Setenv("EDITTREE_MAX_TREE_DEPTH", "99")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxTreeDepth != 99 {
		t.Errorf("expected env override to win, got %d", cfg.MaxTreeDepth)
	}
}

func TestValidateRejectsNegativeMaxTreeDepth(t *testing.T) {
	cfg := Default()
	cfg.MaxTreeDepth = -1
	err := cfg.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("expected error to match ErrInvalidConfig via Is")
	}
}

func TestValidateRejectsMissingConsiderScript(t *testing.T) {
	cfg := Default()
	cfg.ConsiderScript = filepath.Join(t.TempDir(), "missing.lua")
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a considerScript that doesn't exist")
	}
}

func TestConfigStringIncludesFields(t *testing.T) {
	cfg := Default()
	s := cfg.String()
	if s == "" {
		t.Error("expected a non-empty String() representation")
	}
}
