package fields

import (
	"regexp"
	"strings"

	"github.com/docuvault/field-extractor/constants"
)

var (
	reNonDigit     = regexp.MustCompile(`\D`)
	reNotDigitPlus = regexp.MustCompile(`[^\d+]`)
)

// ExtractKind matches one predefined field kind against the text, trying the
// kind's ordered pattern list and returning the first cleaned match.
func (e *Extractor) ExtractKind(text string, kind constants.FieldKind) (string, bool) {
	rules, ok := e.table.predefined[kind]
	if !ok {
		return "", false
	}
	raw, ok := firstMatch(rules, Normalize(text))
	if !ok {
		return "", false
	}
	val := cleanFieldValue(raw, kind)
	if val == "" {
		return "", false
	}
	return val, true
}

// cleanFieldValue applies kind-specific cleanup to a raw pattern match.
func cleanFieldValue(value string, kind constants.FieldKind) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	switch kind {
	case constants.FieldPAN, constants.FieldIFSC:
		return strings.ReplaceAll(strings.ToUpper(value), " ", "")
	case constants.FieldAadhaar:
		return reNonDigit.ReplaceAllString(value, "")
	case constants.FieldEmail:
		return strings.ToLower(value)
	case constants.FieldPhone:
		return reNotDigitPlus.ReplaceAllString(value, "")
	case constants.FieldPincode, constants.FieldAccountNumber:
		return reNonDigit.ReplaceAllString(value, "")
	}
	return value
}
