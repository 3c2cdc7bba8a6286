package main

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/extract"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/log"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/output"
)

type extractOptions struct {
	output  string   // write result here instead of stdout
	exclude []string // extra excluded sub-command prefixes
	copy    bool     // also copy result to clipboard
}

func runExtract(ctx context.Context, paths []string, opts extractOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	rules := cfg.ExtractRules()
	rules.Exclude = append(rules.Exclude, opts.exclude...)

	l.Debug("scanning", "files", len(paths), "prefix", rules.Prefix)

	lines, err := extract.Files(paths, rules)
	if err != nil {
		return err
	}

	l.Debug("scan complete", "matched", len(lines))

	text := extract.Join(lines)

	if opts.copy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		l.Printf("Copied %d commands to clipboard\n", len(lines))
	}

	return out.Emit(text, opts.output)
}
