// Package fields turns raw OCR text into a normalized, validated set of
// document fields. Predefined kinds (government IDs, contact, bank details)
// are matched against ordered pattern lists; everything else is harvested
// generically from label/value lines and reconciled into one field set.
package fields

import (
	"log/slog"
	"sort"

	"github.com/docuvault/field-extractor/constants"
)

// FieldSet maps normalized snake_case field names to extracted values.
type FieldSet map[string]string

// Extractor applies the pattern table to raw text. Stateless and safe for
// concurrent use; all matching is pure string work.
type Extractor struct {
	table *PatternTable
	log   *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{table: defaultTable, log: logger}
}

// ExtractAll runs every extractor over the text and reconciles the results
// into one field set: predefined matches take precedence over name/address/
// bank results, which take precedence over dynamically discovered fields.
// Canonical renames (dob -> date_of_birth, ...) happen at insertion time, so
// a rename collision resolves by tier rather than by map iteration order.
func (e *Extractor) ExtractAll(text string) FieldSet {
	e.log.Debug("fields.extract.start", "text_len", len(text))

	out := FieldSet{}
	put := func(name, val string) {
		key := constants.CanonicalName(name)
		if _, exists := out[key]; !exists {
			out[key] = val
		}
	}

	// Tier 1: predefined pattern tables.
	for _, kind := range e.table.predefinedOrder {
		if val, ok := e.ExtractKind(text, kind); ok {
			put(string(kind), val)
		}
	}

	// Tier 2: specialized matchers with structural post-processing.
	if name, ok := e.ExtractName(text); ok {
		put(string(constants.FieldFullName), name)
	}
	if addr, ok := e.ExtractAddress(text); ok {
		for k, v := range addr.Components() {
			put(k, v)
		}
	}
	if bank, ok := e.ExtractBankName(text); ok {
		put(string(constants.FieldBankName), bank)
	}

	matched := len(out)

	// Tier 3: dynamic fields fill absent keys only, in sorted key order so
	// collisions inside the tier resolve the same way on every run.
	dynamic := e.ExtractDynamic(text)
	names := make([]string, 0, len(dynamic))
	for k := range dynamic {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		put(k, dynamic[k])
	}

	e.log.Info("fields.extract.ok",
		"predefined", matched,
		"dynamic", len(dynamic),
		"total", len(out),
	)
	return out
}

// ExtractValidated is ExtractAll followed by structural validation; fields
// failing validation are dropped and logged, never an error.
func (e *Extractor) ExtractValidated(text string) FieldSet {
	return e.Validate(e.ExtractAll(text))
}
