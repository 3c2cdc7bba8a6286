package main

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/extract"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/log"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/output"
	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/ui"
)

func runStats(ctx context.Context, paths []string, jsonOutput bool) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	rules := cfg.ExtractRules()
	l.Debug("counting", "files", len(paths), "prefix", rules.Prefix)

	counts, err := extract.Count(paths, rules)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(out.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	headers := []string{"FILE", "LINES", "COMMANDS"}
	var rows [][]string
	totalLines, totalMatched := 0, 0
	for _, fc := range counts {
		rows = append(rows, []string{fc.Path, strconv.Itoa(fc.Lines), strconv.Itoa(fc.Matched)})
		totalLines += fc.Lines
		totalMatched += fc.Matched
	}
	if len(counts) > 1 {
		rows = append(rows, []string{"TOTAL", strconv.Itoa(totalLines), strconv.Itoa(totalMatched)})
	}

	out.Printf("%s", ui.RenderTable(headers, rows))

	return nil
}
