package fields

import (
	"regexp"
	"strings"
)

var (
	reWordChar     = regexp.MustCompile(`\w`)
	reNonWordSpace = regexp.MustCompile(`[^\w\s]`)
	reSpacesToUnd  = regexp.MustCompile(`\s+`)
)

// Generic label words that are never meaningful field names on their own.
// Tuned empirically against scanned Indian forms; treat as reference baseline.
var dynamicStopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"page": {}, "form": {}, "document": {}, "application": {}, "submit": {},
	"date": {}, "time": {}, "please": {},
	"fill": {}, "enter": {}, "write": {}, "sign": {}, "signature": {},
	"print": {}, "clear": {}, "block": {},
	"letters": {}, "capital": {}, "small": {}, "tick": {}, "mark": {},
	"yes": {}, "no": {}, "male": {}, "female": {},
}

// ExtractDynamic harvests arbitrary label/value pairs not covered by the
// predefined tables. The line scan is first-write-wins per key; the table and
// education/employment sub-extractors run afterwards and overwrite duplicates.
func (e *Extractor) ExtractDynamic(text string) FieldSet {
	dynamic := FieldSet{}
	lined := NormalizeLines(text)

	for _, line := range strings.Split(lined, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 5 {
			continue
		}
		for _, re := range e.table.dynamic {
			for _, m := range re.FindAllStringSubmatch(line, -1) {
				if len(m) < 3 {
					continue
				}
				name := strings.TrimSpace(m[1])
				value := strings.TrimSpace(m[2])
				if !isValidDynamicField(name, value) {
					continue
				}
				normalized := normalizeFieldName(name)
				if normalized == "" || len(value) <= 1 {
					continue
				}
				if _, exists := dynamic[normalized]; !exists {
					dynamic[normalized] = value
				}
			}
		}
	}

	// Table rows scan the raw text: normalization collapses the pipe
	// delimiters the table patterns key on.
	for k, v := range e.extractTableData(reCRLF.ReplaceAllString(text, "\n")) {
		dynamic[k] = v
	}
	for k, v := range e.extractLabeled(e.table.education, e.table.educationOrder, lined) {
		dynamic[k] = v
	}
	for k, v := range e.extractLabeled(e.table.employment, e.table.employmentOrder, lined) {
		dynamic[k] = v
	}

	e.log.Debug("fields.dynamic.ok", "count", len(dynamic))
	return dynamic
}

// extractTableData scans the whole text for table-like Key : Value and
// pipe-delimited rows.
func (e *Extractor) extractTableData(text string) FieldSet {
	out := FieldSet{}
	for _, re := range e.table.table {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 3 {
				continue
			}
			key := normalizeFieldName(m[1])
			value := strings.TrimSpace(m[2])
			if key != "" && len(value) > 1 {
				out[key] = value
			}
		}
	}
	return out
}

// extractLabeled runs a set of dedicated label-pattern lists (education or
// employment), first match wins per sub-field.
func (e *Extractor) extractLabeled(rules map[string][]*regexp.Regexp, order []string, text string) FieldSet {
	out := FieldSet{}
	for _, key := range order {
		if val, ok := firstMatch(rules[key], text); ok {
			out[key] = strings.TrimSpace(val)
		}
	}
	return out
}

// isValidDynamicField rejects candidates that are too short/long, pure
// punctuation, or whose label is mostly digits.
func isValidDynamicField(name, value string) bool {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" || value == "" {
		return false
	}
	if len(name) < 2 || len(name) > 50 {
		return false
	}
	if len(value) < 1 || len(value) > 200 {
		return false
	}
	if !reWordChar.MatchString(value) {
		return false
	}
	digits := 0
	for _, r := range name {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits*2 <= len(name)
}

// normalizeFieldName lowercases a label, drops punctuation, joins words with
// underscores, and rejects stoplisted or degenerate names.
func normalizeFieldName(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = reNonWordSpace.ReplaceAllString(normalized, "")
	normalized = strings.TrimSpace(normalized)
	normalized = reSpacesToUnd.ReplaceAllString(normalized, "_")
	if len(normalized) < 2 || len(normalized) > 50 {
		return ""
	}
	if _, stopped := dynamicStopWords[normalized]; stopped {
		return ""
	}
	return normalized
}
