package fields

import (
	"regexp"
	"strings"
)

var reLettersSpaces = regexp.MustCompile(`^[A-Za-z\s]+$`)
var reNameShape = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)

// Words that disqualify a standalone line from being treated as a name.
var nameStopWords = []string{"form", "application", "document", "page"}

var honorifics = []string{"Mr.", "Mrs.", "Ms.", "Dr.", "Prof."}

// ExtractName tries the ordered name label patterns; the first structurally
// valid capture (letters and spaces only) wins. When no label matches it falls
// back to scanning the first 10 lines for a standalone line that looks like a
// person's name.
func (e *Extractor) ExtractName(text string) (string, bool) {
	lined := NormalizeLines(text)
	for _, re := range e.table.name {
		m := re.FindStringSubmatch(lined)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if reNameShape.MatchString(candidate) {
			return cleanName(candidate), true
		}
	}

	// Fallback: a short all-letters line near the top of the document.
	lines := strings.Split(lined, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 3 || len(line) >= 50 || !reLettersSpaces.MatchString(line) {
			continue
		}
		lower := strings.ToLower(line)
		stopped := false
		for _, w := range nameStopWords {
			if strings.Contains(lower, w) {
				stopped = true
				break
			}
		}
		if !stopped {
			return cleanName(line), true
		}
	}
	return "", false
}

// cleanName collapses whitespace, title-cases, and strips a known honorific.
func cleanName(name string) string {
	name = titleCase(strings.Join(strings.Fields(name), " "))
	for _, prefix := range honorifics {
		if strings.HasPrefix(name, prefix) {
			name = strings.TrimSpace(strings.TrimPrefix(name, prefix))
		}
	}
	return name
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
