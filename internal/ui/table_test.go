package ui

import (
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	t.Parallel()

	t.Run("empty rows render nothing", func(t *testing.T) {
		t.Parallel()
		if got := RenderTable([]string{"FILE", "COMMANDS"}, nil); got != "" {
			t.Errorf("RenderTable = %q, want empty", got)
		}
	})

	t.Run("headers and rows present", func(t *testing.T) {
		t.Parallel()
		got := RenderTable(
			[]string{"FILE", "LINES", "COMMANDS"},
			[][]string{
				{"a.txt", "10", "3"},
				{"b.txt", "5", "0"},
			},
		)

		for _, want := range []string{"FILE", "LINES", "COMMANDS", "a.txt", "b.txt", "3"} {
			if !strings.Contains(got, want) {
				t.Errorf("RenderTable output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("ends with newline", func(t *testing.T) {
		t.Parallel()
		got := RenderTable([]string{"FILE"}, [][]string{{"a.txt"}})
		if !strings.HasSuffix(got, "\n") {
			t.Errorf("RenderTable output should end with newline, got %q", got)
		}
	})
}
