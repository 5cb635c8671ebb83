// Package main is the entry point for the edittree command-line tool.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/halvard/edittree/document"
	"github.com/halvard/edittree/edit"
	"github.com/halvard/edittree/internal/config"
	"github.com/halvard/edittree/internal/script"
	"github.com/halvard/edittree/internal/treeio"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	switch args[0] {
	case "apply":
		return runApply(args[1:])
	case "version":
		fmt.Printf("edittree %s (commit %s, built %s)\n", version, commit, date)
		return 0
	case "-h", "--help", "help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "edittree: unknown command %q\n\n", args[0])
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "edittree - apply a JSON edit tree to a document\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  edittree apply -doc <file> -script <edits.json> [-config <edittree.toml>] [-out <file>]\n")
	fmt.Fprintf(os.Stderr, "  edittree version\n")
}

func runApply(args []string) int {
	fs := newApplyFlagSet()
	if err := fs.Parse(args); err != nil {
		return 1
	}
	opts := fs.opts

	if opts.docPath == "" || opts.scriptPath == "" {
		fmt.Fprintln(os.Stderr, "edittree apply: -doc and -script are required")
		fs.fs.Usage()
		return 1
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	docBytes, err := os.ReadFile(opts.docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading document: %v\n", err)
		return 1
	}

	treeBytes, err := os.ReadFile(opts.scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading edit script: %v\n", err)
		return 1
	}

	root, err := treeio.Decode(string(treeBytes))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: decoding edit tree: %v\n", err)
		return 1
	}

	doc := document.NewRopeDocument(string(docBytes))

	applyOpts := []edit.ApplyOption{}
	if cfg.MaxTreeDepth > 0 {
		applyOpts = append(applyOpts, edit.WithMaxDepth(cfg.MaxTreeDepth))
	}
	if cfg.ConsiderScript != "" {
		pred, err := script.LoadFromFile(cfg.ConsiderScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: loading consider script: %v\n", err)
			return 1
		}
		defer pred.Close()
		applyOpts = append(applyOpts, edit.WithConsider(pred.Func()))
	}

	if cfg.BoundaryWarnings {
		for _, w := range edit.CheckBoundaries(root, doc) {
			slog.Warn("boundary advisory", "offset", w.Offset, "reason", w.Reason, "edit", w.Edit.String())
		}
	}

	undo, err := edit.Apply(root, doc, cfg.DefaultFlags, applyOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: applying edits: %v\n", err)
		return 1
	}

	out := opts.outPath
	if out == "" {
		out = opts.docPath
	}
	if err := os.WriteFile(out, []byte(doc.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: writing result: %v\n", err)
		return 1
	}

	if opts.undoPath != "" {
		if undo == nil {
			fmt.Fprintln(os.Stderr, "Error: -undo requires createUndo in the configured default flags")
			return 1
		}
		undoJSON, err := treeio.Encode(undo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: encoding undo tree: %v\n", err)
			return 1
		}
		if err := os.WriteFile(opts.undoPath, []byte(undoJSON), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: writing undo tree: %v\n", err)
			return 1
		}
	}

	return 0
}
