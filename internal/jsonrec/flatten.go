package jsonrec

import (
	"encoding/json"
	"strings"
)

// FlattenText renders a recovered document as "label: value" lines so the
// line-oriented field matchers can run over model output that came back as
// structured JSON. Object keys become labels, arrays repeat the parent label,
// and string scalars are unquoted.
func FlattenText(v *Value) string {
	var b strings.Builder
	flattenInto(v, "", &b)
	return strings.TrimRight(b.String(), "\n")
}

func flattenInto(v *Value, label string, b *strings.Builder) {
	if v == nil {
		return
	}
	switch v.Kind() {
	case KindNull:
	case KindScalar:
		s := scalarText(v)
		if s == "" {
			return
		}
		if label != "" {
			b.WriteString(label)
			b.WriteString(": ")
		}
		b.WriteString(s)
		b.WriteByte('\n')
	case KindObject:
		for _, k := range v.Keys() {
			flattenInto(v.Get(k), k, b)
		}
	case KindArray:
		for _, item := range v.Items() {
			flattenInto(item, label, b)
		}
	}
}

func scalarText(v *Value) string {
	raw := v.Scalar()
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
