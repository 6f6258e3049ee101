package fields

import (
	"regexp"
	"strings"

	"github.com/docuvault/field-extractor/constants"
)

var (
	rePartSplit = regexp.MustCompile(`[,\n]`)
	rePincode   = regexp.MustCompile(`\b([1-9][0-9]{5})\b`)
)

// Address holds the structural components split out of a matched address.
type Address struct {
	Line1   string
	Line2   string
	City    string
	State   string
	Pincode string
}

// Components returns the non-empty components keyed by field name.
func (a Address) Components() map[string]string {
	out := make(map[string]string, 5)
	put := func(k constants.FieldKind, v string) {
		if v != "" {
			out[string(k)] = v
		}
	}
	put(constants.FieldAddressLine1, a.Line1)
	put(constants.FieldAddressLine2, a.Line2)
	put(constants.FieldCity, a.City)
	put(constants.FieldState, a.State)
	put(constants.FieldPincode, a.Pincode)
	return out
}

// ExtractAddress tries the ordered address label patterns (multi-line capture)
// and decomposes the first candidate whose cleaned form is longer than 10
// characters into line, city, state and pincode components.
func (e *Extractor) ExtractAddress(text string) (Address, bool) {
	lined := NormalizeLines(text)
	for _, re := range e.table.address {
		m := re.FindStringSubmatch(lined)
		if m == nil {
			continue
		}
		raw := strings.TrimSpace(m[1])
		if len(Normalize(raw)) > 10 {
			return parseAddress(raw), true
		}
	}
	return Address{}, false
}

// parseAddress splits a matched address on commas and line breaks, then pulls
// pincode, city and state out of the trailing segment.
func parseAddress(addr string) Address {
	var parts []string
	for _, p := range rePartSplit.Split(addr, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var out Address
	if len(parts) == 0 {
		return out
	}
	out.Line1 = Normalize(parts[0])
	if len(parts) >= 2 {
		out.Line2 = Normalize(parts[1])
	}

	last := parts[len(parts)-1]
	if m := rePincode.FindStringSubmatch(last); m != nil {
		out.Pincode = m[1]
		last = strings.TrimSpace(strings.Replace(last, m[0], "", 1))
	}
	tokens := strings.Fields(last)
	switch {
	case len(tokens) >= 2:
		out.City = tokens[0]
		out.State = strings.Join(tokens[1:], " ")
	case len(tokens) == 1:
		out.City = tokens[0]
	}
	return out
}
