package main

import (
	"flag"
	"fmt"
	"os"
)

type applyOptions struct {
	docPath    string
	scriptPath string
	configPath string
	outPath    string
	undoPath   string
}

type applyFlagSet struct {
	fs   *flag.FlagSet
	opts applyOptions
}

func newApplyFlagSet() *applyFlagSet {
	a := &applyFlagSet{fs: flag.NewFlagSet("apply", flag.ContinueOnError)}

	a.fs.StringVar(&a.opts.docPath, "doc", "", "Path to the document to edit")
	a.fs.StringVar(&a.opts.scriptPath, "script", "", "Path to the JSON edit tree")
	a.fs.StringVar(&a.opts.configPath, "config", "", "Path to edittree.toml")
	a.fs.StringVar(&a.opts.outPath, "out", "", "Output path (defaults to overwriting -doc)")
	a.fs.StringVar(&a.opts.undoPath, "undo", "", "If set, write the undo tree as JSON to this path")

	a.fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: edittree apply -doc <file> -script <edits.json> [options]\n\n")
		a.fs.PrintDefaults()
	}

	return a
}

func (a *applyFlagSet) Parse(args []string) error {
	return a.fs.Parse(args)
}
