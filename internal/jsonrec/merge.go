package jsonrec

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxMergeDepth bounds object recursion during merges. Model output is
// untrusted; a pathological nesting stops merging instead of blowing the
// stack, keeping the earlier value at the cutoff.
const maxMergeDepth = 32

// Page is one page's raw extraction output fed into a document merge.
type Page struct {
	Number int
	Text   string
	Err    error
}

// Merger folds per-page values into a single document object. The first
// non-empty value for a key wins; objects merge recursively and arrays
// concatenate.
type Merger struct {
	rec *Recoverer
	log *slog.Logger
}

func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{rec: NewRecoverer(logger), log: logger}
}

// MergeDocument combines the pages of one document. Pages that failed
// upstream land in an "errors" array, pages whose output is valid JSON but
// not an object (or no JSON at all) land in a "pages" array, and object
// pages merge into the accumulator.
func (m *Merger) MergeDocument(pages []Page) *Value {
	merged := NewObject()
	for _, p := range pages {
		if p.Err != nil {
			entry := NewObject()
			entry.Set("page", Number(p.Number))
			entry.Set("error", String(p.Err.Error()))
			appendTo(merged, "errors", entry)
			m.log.Warn("jsonrec.merge.page_error", "page", p.Number, "error", p.Err)
			continue
		}
		v := m.rec.Recover(p.Text)
		switch {
		case v == nil:
			entry := NewObject()
			entry.Set("page", Number(p.Number))
			entry.Set("text", String(strings.TrimSpace(p.Text)))
			appendTo(merged, "pages", entry)
		case v.IsObject():
			mergeInto(merged, v, maxMergeDepth)
		default:
			appendTo(merged, "pages", v)
		}
	}
	return merged
}

// Merge folds src into dst, mutating dst. Exposed for callers that already
// hold parsed page objects.
func (m *Merger) Merge(dst, src *Value) {
	if dst.IsObject() && src.IsObject() {
		mergeInto(dst, src, maxMergeDepth)
	}
}

func mergeInto(dst, src *Value, depth int) {
	if depth <= 0 {
		return
	}
	for _, k := range src.Keys() {
		incoming := src.Get(k)
		existing := dst.Get(k)
		switch {
		case existing == nil || existing.isEmpty():
			dst.Set(k, incoming)
		case existing.IsObject() && incoming.IsObject():
			mergeInto(existing, incoming, depth-1)
		case existing.IsArray() && incoming.IsArray():
			existing.Append(incoming.Items()...)
		}
		// otherwise the existing non-empty value wins
	}
}

func appendTo(obj *Value, key string, item *Value) {
	arr := obj.Get(key)
	if !arr.IsArray() {
		arr = NewArray()
		obj.Set(key, arr)
	}
	arr.Append(item)
}

// Number builds a scalar numeric value.
func Number(n int) *Value {
	return &Value{kind: KindScalar, scalar: []byte(fmt.Sprintf("%d", n))}
}
