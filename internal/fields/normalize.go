package fields

import (
	"regexp"
	"strings"
)

var (
	reNoiseRuns  = regexp.MustCompile(`[|_]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
	reIntraLine  = regexp.MustCompile(`[ \t]+`)
	reCRLF       = regexp.MustCompile(`\r\n?`)
)

// Normalize collapses pipe/underscore noise runs and all whitespace runs
// (including line breaks) to single spaces. Idempotent.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reNoiseRuns.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeLines applies the same noise and whitespace collapsing but keeps
// line breaks, for the extractors that scan text line by line.
func NormalizeLines(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reNoiseRuns.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(reIntraLine.ReplaceAllString(lines[i], " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
