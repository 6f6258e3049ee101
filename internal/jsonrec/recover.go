package jsonrec

import (
	"log/slog"
	"regexp"
	"strings"
)

// reFence matches a fenced code block, with or without a "json" tag.
var reFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

var smartQuotes = strings.NewReplacer(
	"“", `"`, // left double
	"”", `"`, // right double
	"‘", `'`, // left single
	"’", `'`, // right single
)

// Recoverer pulls a parseable JSON value out of raw model output. Model
// responses wrap the payload in prose, markdown fences, or smart quotes more
// often than not, so candidates are tried from most to least specific.
type Recoverer struct {
	log *slog.Logger
}

func NewRecoverer(logger *slog.Logger) *Recoverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recoverer{log: logger}
}

// Recover returns the first candidate substring that parses as JSON, or nil
// when nothing in the text does. Already-valid JSON passes through unchanged.
func (r *Recoverer) Recover(text string) *Value {
	for _, candidate := range candidates(text) {
		v, err := Parse([]byte(smartQuotes.Replace(candidate)))
		if err == nil {
			return v
		}
	}
	r.log.Debug("jsonrec.recover.miss", "len", len(text))
	return nil
}

// RecoverOrText recovers JSON from text, degrading to {"text": <raw>} so a
// page that produced prose instead of JSON still contributes its content.
func (r *Recoverer) RecoverOrText(text string) *Value {
	if v := r.Recover(text); v != nil {
		return v
	}
	wrapped := NewObject()
	wrapped.Set("text", String(strings.TrimSpace(text)))
	return wrapped
}

// candidates orders the substrings worth a parse attempt: fenced block,
// widest {...} span, widest [...] span, then the trimmed text itself.
func candidates(text string) []string {
	var out []string
	if m := reFence.FindStringSubmatch(text); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	}
	if span := widestSpan(text, '{', '}'); span != "" {
		out = append(out, span)
	}
	if span := widestSpan(text, '[', ']'); span != "" {
		out = append(out, span)
	}
	out = append(out, strings.TrimSpace(text))
	return out
}

func widestSpan(text string, open, close byte) string {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return ""
	}
	end := strings.LastIndexByte(text, close)
	if end <= start {
		return ""
	}
	return text[start : end+1]
}
