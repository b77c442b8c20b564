package changelog

import (
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Report is the rendered two-section change summary for one modified file.
// Entries carry 1-based line numbers in their respective versions.
type Report struct {
	Added   []string
	Removed []string
}

// Empty reports whether no semantic line changes survived rendering.
func (r Report) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0
}

// Unified computes a unified diff between two line sequences. Lines are
// normalized to end with a newline so the hunk format stays well-formed.
func Unified(oldLines, newLines []string) ([]string, error) {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        terminated(oldLines),
		B:        terminated(newLines),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	})
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func terminated(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if !strings.HasSuffix(l, "\n") {
			l += "\n"
		}
		out[i] = l
	}
	return out
}

// Render converts unified-diff lines into a Report. A removed line followed
// immediately by an added line that is equal after trailing-whitespace
// normalization is a non-semantic pair: both counters advance and neither
// entry is emitted, so line-ending-only edits stay out of the changelog.
// Malformed hunk headers reset the counters to zero instead of failing.
func Render(diffLines []string) Report {
	var rep Report
	oldLn, newLn := 0, 0

	for i := 0; i < len(diffLines); i++ {
		line := diffLines[i]

		if strings.HasPrefix(line, "@@") {
			oldLn, newLn = parseHunkHeader(line)
			continue
		}

		// identical -/+ pair: newline or trailing-whitespace change
		if strings.HasPrefix(line, "-") && i+1 < len(diffLines) &&
			strings.HasPrefix(diffLines[i+1], "+") &&
			rstrip(line[1:]) == rstrip(diffLines[i+1][1:]) {
			oldLn++
			newLn++
			i++
			continue
		}

		switch {
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			rep.Removed = append(rep.Removed, "L"+strconv.Itoa(oldLn)+": "+rstrip(line[1:]))
			oldLn++
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			rep.Added = append(rep.Added, "L"+strconv.Itoa(newLn)+": "+rstrip(line[1:]))
			newLn++
		case strings.HasPrefix(line, `\`):
			// "\ No newline at end of file": no counter movement
		default:
			oldLn++
			newLn++
		}
	}

	return rep
}

// parseHunkHeader extracts the starting line numbers from "@@ -a,b +c,d @@".
func parseHunkHeader(line string) (oldLn, newLn int) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return 0, 0
	}
	o, errOld := strconv.Atoi(strings.TrimPrefix(firstField(parts[1]), "-"))
	n, errNew := strconv.Atoi(strings.TrimPrefix(firstField(parts[2]), "+"))
	if errOld != nil || errNew != nil {
		return 0, 0
	}
	return o, n
}

func firstField(s string) string {
	if i := strings.Index(s, ","); i >= 0 {
		return s[:i]
	}
	return s
}

func rstrip(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}

// Format renders the report as changelog body text: Added section first,
// then Removed, entries in diff order.
func (r Report) Format() string {
	var out []string
	if len(r.Added) > 0 {
		out = append(out, "### Added")
		out = append(out, r.Added...)
		out = append(out, "")
	}
	if len(r.Removed) > 0 {
		out = append(out, "### Removed")
		out = append(out, r.Removed...)
		out = append(out, "")
	}
	return strings.Join(out, "\n")
}
