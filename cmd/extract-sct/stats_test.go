package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spinalcordtoolbox/sct-tutorial-data/internal/extract"
)

func TestRunStats(t *testing.T) {
	useDefaultConfig(t)

	t.Run("table with totals", func(t *testing.T) {
		ctx, out := newTestContext()
		a := writeTutorial(t, "sct_propseg -i a.nii.gz -c t2\nprose\n")
		b := writeTutorial(t, "no commands here\n")

		if err := runStats(ctx, []string{a, b}, false); err != nil {
			t.Fatalf("runStats failed: %v", err)
		}

		got := out.String()
		for _, want := range []string{"FILE", "LINES", "COMMANDS", "TOTAL"} {
			if !strings.Contains(got, want) {
				t.Errorf("stats output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("single file has no total row", func(t *testing.T) {
		ctx, out := newTestContext()
		a := writeTutorial(t, "sct_propseg -i a.nii.gz -c t2\n")

		if err := runStats(ctx, []string{a}, false); err != nil {
			t.Fatalf("runStats failed: %v", err)
		}
		if strings.Contains(out.String(), "TOTAL") {
			t.Errorf("stats output should not contain TOTAL for one file:\n%s", out.String())
		}
	})

	t.Run("json output", func(t *testing.T) {
		ctx, out := newTestContext()
		a := writeTutorial(t, "sct_propseg -i a.nii.gz -c t2\nprose\n")

		if err := runStats(ctx, []string{a}, true); err != nil {
			t.Fatalf("runStats failed: %v", err)
		}

		var counts []extract.FileCount
		if err := json.Unmarshal(out.Bytes(), &counts); err != nil {
			t.Fatalf("stats --json produced invalid JSON: %v\n%s", err, out.String())
		}
		if len(counts) != 1 {
			t.Fatalf("got %d entries, want 1", len(counts))
		}
		if counts[0].Lines != 2 || counts[0].Matched != 1 {
			t.Errorf("counts = %+v, want Lines=2 Matched=1", counts[0])
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		ctx, _ := newTestContext()
		if err := runStats(ctx, []string{"/nonexistent/tutorial.txt"}, false); err == nil {
			t.Fatal("expected error for missing file, got nil")
		}
	})
}
