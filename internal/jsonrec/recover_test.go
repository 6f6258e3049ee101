package jsonrec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_ValidJSONPassesThrough(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover(`{"name": "John", "age": 30}`)
	require.True(t, v.IsObject())
	assert.Equal(t, "John", v.Get("name").Interface())
	assert.Equal(t, json.Number("30"), v.Get("age").Interface())
}

func TestRecover_FencedBlock(t *testing.T) {
	r := NewRecoverer(nil)

	text := "Here is the extracted data:\n```json\n{\"name\": \"John\"}\n```\nLet me know if you need anything else."
	v := r.Recover(text)
	require.True(t, v.IsObject())
	assert.Equal(t, "John", v.Get("name").Interface())
}

func TestRecover_UntaggedFence(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover("```\n{\"k\": true}\n```")
	require.True(t, v.IsObject())
	assert.Equal(t, true, v.Get("k").Interface())
}

func TestRecover_WidestObjectSpan(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover(`The output is {"x": 2} as requested.`)
	require.True(t, v.IsObject())
	assert.Equal(t, json.Number("2"), v.Get("x").Interface())
}

func TestRecover_ArraySpan(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover("scores were [1, 2, 3] overall")
	require.True(t, v.IsArray())
	assert.Equal(t, 3, v.Len())
}

func TestRecover_SmartQuotes(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover("{“key”: “value”}")
	require.True(t, v.IsObject())
	assert.Equal(t, "value", v.Get("key").Interface())
}

func TestRecover_NothingParseable(t *testing.T) {
	r := NewRecoverer(nil)

	assert.Nil(t, r.Recover("no structured data in this page"))
	assert.Nil(t, r.Recover(""))
}

func TestRecoverOrText_WrapsProse(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.RecoverOrText("  just prose  ")
	require.True(t, v.IsObject())
	assert.Equal(t, "just prose", v.Get("text").Interface())
}

func TestRecover_IdempotentOnOwnOutput(t *testing.T) {
	r := NewRecoverer(nil)

	v := r.Recover("```json\n{\"a\": [1, 2], \"b\": {\"c\": null}}\n```")
	require.NotNil(t, v)
	first, err := json.Marshal(v)
	require.NoError(t, err)

	again := r.Recover(string(first))
	require.NotNil(t, again)
	second, err := json.Marshal(again)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}

func TestParse_RejectsTrailingData(t *testing.T) {
	_, err := Parse([]byte(`{"a":1} {"b":2}`))
	assert.Error(t, err)
}
