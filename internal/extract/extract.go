package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Rules control which lines qualify as runnable commands.
type Rules struct {
	// Prefix identifies the command family, e.g. "sct_".
	Prefix string

	// CommentMarker is the leading sequence stripped from commented-out
	// command lines before matching. Exactly len(CommentMarker) characters
	// are removed; the marker is not checked against the file's syntax.
	CommentMarker string

	// MinTokens is the minimum number of single-space-separated tokens.
	// Lines below the threshold are labels, not invocations.
	MinTokens int

	// Exclude lists sub-command prefixes that never qualify.
	Exclude []string
}

// DefaultRules returns the rules used by the CI workflow: sct_ commands
// with at least command + arg + value, minus data downloads (the data is
// already present in CI) and batch runs (driven by the workflow itself).
func DefaultRules() Rules {
	return Rules{
		Prefix:        "sct_",
		CommentMarker: "# ",
		MinTokens:     3,
		Exclude:       []string{"sct_download_data", "sct_run_batch"},
	}
}

// Match reports whether a single line qualifies under r.
// The returned string is the normalized form that should be collected:
// left-stripped, de-commented, and right-trimmed.
func (r Rules) Match(line string) (string, bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)

	// A commented-out command is matched as if it were active.
	if strings.HasPrefix(s, r.CommentMarker+r.Prefix) {
		s = s[len(r.CommentMarker):]
	}

	if !strings.HasPrefix(s, r.Prefix) {
		return "", false
	}
	if len(strings.Split(s, " ")) < r.MinTokens {
		return "", false
	}
	// Lines with <...> are placeholders from the tutorial text.
	if strings.Contains(s, "<") && strings.Contains(s, ">") {
		return "", false
	}
	for _, ex := range r.Exclude {
		if strings.HasPrefix(s, ex) {
			return "", false
		}
	}

	return strings.TrimRightFunc(s, unicode.IsSpace), true
}

// Scan reads r line by line and returns the matching lines in order.
func Scan(r io.Reader, rules Rules) ([]string, error) {
	var matched []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line, ok := rules.Match(sc.Text()); ok {
			matched = append(matched, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return matched, nil
}

// File scans a single file.
func File(path string, rules Rules) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	matched, err := Scan(f, rules)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return matched, nil
}

// Files scans every path in order and concatenates the matches.
// The first unreadable file aborts the scan; no partial result is returned.
func Files(paths []string, rules Rules) ([]string, error) {
	var all []string
	for _, path := range paths {
		matched, err := File(path, rules)
		if err != nil {
			return nil, err
		}
		all = append(all, matched...)
	}
	return all, nil
}

// FileCount holds per-file scan statistics.
type FileCount struct {
	Path    string `json:"path"`
	Lines   int    `json:"lines"`
	Matched int    `json:"matched"`
}

// Count scans every path in order and reports per-file totals.
func Count(paths []string, rules Rules) ([]FileCount, error) {
	var counts []FileCount
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		fc := FileCount{Path: path}
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			fc.Lines++
			if _, ok := rules.Match(sc.Text()); ok {
				fc.Matched++
			}
		}
		err = sc.Err()
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		counts = append(counts, fc)
	}
	return counts, nil
}

// Join renders matched lines as the final output text: newline-joined,
// no trailing newline.
func Join(lines []string) string {
	return strings.Join(lines, "\n")
}
