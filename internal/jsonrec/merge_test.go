package jsonrec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDocument_FirstNonEmptyWins(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"name": "John", "city": ""}`},
		{Number: 2, Text: `{"name": "Jane", "city": "Pune"}`},
	})
	assert.Equal(t, "John", merged.Get("name").Interface())
	assert.Equal(t, "Pune", merged.Get("city").Interface())
}

func TestMergeDocument_NullAndEmptyArrayAreEmpty(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"a": null, "b": []}`},
		{Number: 2, Text: `{"a": "x", "b": [1]}`},
	})
	assert.Equal(t, "x", merged.Get("a").Interface())
	require.True(t, merged.Get("b").IsArray())
	assert.Equal(t, 1, merged.Get("b").Len())
}

func TestMergeDocument_ObjectsMergeRecursively(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"address": {"city": "Pune"}}`},
		{Number: 2, Text: `{"address": {"city": "Mumbai", "state": "MH"}}`},
	})
	addr := merged.Get("address")
	require.True(t, addr.IsObject())
	assert.Equal(t, "Pune", addr.Get("city").Interface())
	assert.Equal(t, "MH", addr.Get("state").Interface())
}

func TestMergeDocument_ArraysConcatenate(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"items": [1]}`},
		{Number: 2, Text: `{"items": [2, 3]}`},
	})
	assert.Equal(t, 3, merged.Get("items").Len())
}

func TestMergeDocument_ScalarConflictKeepsEarlier(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"pan": "ABCDE1234F"}`},
		{Number: 2, Text: `{"pan": "ZZZZZ9999Z"}`},
	})
	assert.Equal(t, "ABCDE1234F", merged.Get("pan").Interface())
}

func TestMergeDocument_PageErrorsCollected(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"name": "John"}`},
		{Number: 2, Err: errors.New("ocr timeout")},
	})
	assert.Equal(t, "John", merged.Get("name").Interface())

	errs := merged.Get("errors")
	require.True(t, errs.IsArray())
	require.Equal(t, 1, errs.Len())
	entry := errs.Items()[0]
	assert.Equal(t, json.Number("2"), entry.Get("page").Interface())
	assert.Equal(t, "ocr timeout", entry.Get("error").Interface())
}

func TestMergeDocument_NonObjectPagesCollected(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: "[1, 2]"},
		{Number: 2, Text: "handwritten remarks, nothing structured"},
	})
	pages := merged.Get("pages")
	require.True(t, pages.IsArray())
	require.Equal(t, 2, pages.Len())

	assert.True(t, pages.Items()[0].IsArray())

	prose := pages.Items()[1]
	require.True(t, prose.IsObject())
	assert.Equal(t, json.Number("2"), prose.Get("page").Interface())
	assert.Equal(t, "handwritten remarks, nothing structured", prose.Get("text").Interface())
}

func TestMergeDocument_EmptyObjectStillMerges(t *testing.T) {
	m := NewMerger(nil)

	merged := m.MergeDocument([]Page{
		{Number: 1, Text: `{"meta": {}}`},
		{Number: 2, Text: `{"meta": {"source": "scan"}}`},
	})
	assert.Equal(t, "scan", merged.Get("meta").Get("source").Interface())
}

func TestMerge_DepthBounded(t *testing.T) {
	m := NewMerger(nil)

	chain := func(depth int, leafKey string) *Value {
		root := NewObject()
		cur := root
		for i := 0; i < depth; i++ {
			next := NewObject()
			cur.Set("k", next)
			cur = next
		}
		cur.Set(leafKey, String("v"))
		return root
	}

	// Shallow chains merge fully.
	dst := chain(5, "existing")
	m.Merge(dst, chain(5, "added"))
	cur := dst
	for i := 0; i < 5; i++ {
		cur = cur.Get("k")
		require.NotNil(t, cur)
	}
	assert.NotNil(t, cur.Get("added"))

	// Beyond the recursion bound the accumulator is left untouched.
	dst = chain(40, "existing")
	m.Merge(dst, chain(40, "added"))
	cur = dst
	for i := 0; i < 40; i++ {
		cur = cur.Get("k")
		require.NotNil(t, cur)
	}
	assert.NotNil(t, cur.Get("existing"))
	assert.Nil(t, cur.Get("added"))
}

func TestValue_MarshalPreservesInsertionOrder(t *testing.T) {
	v := NewObject()
	v.Set("z", String("1"))
	v.Set("a", String("2"))
	v.Set("z", String("3"))

	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"3","a":"2"}`, string(b))
}
