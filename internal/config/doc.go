// Package config loads the edittree engine's tuning settings: which Apply
// flags to default to, an optional tree depth guard, an optional Lua
// considered-edit script, and whether boundary advisories are enabled.
//
// Load reads a TOML file if one is given, then applies EDITTREE_*
// environment variable overrides on top, and validates the result:
//
//	cfg, err := config.Load("edittree.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	undo, err := edit.Apply(root, doc, cfg.DefaultFlags, edit.WithMaxDepth(cfg.MaxTreeDepth))
//
// # Configuration file
//
//	maxTreeDepth = 64
//	considerScript = "considered.lua"
//	boundaryWarnings = true
//	defaultFlags = ["createUndo", "updateRegions"]
package config
