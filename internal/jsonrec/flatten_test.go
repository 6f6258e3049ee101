package jsonrec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenText_ObjectToLines(t *testing.T) {
	v, err := Parse([]byte(`{"name":"Rahul Sharma","pan":"ABCDE1234F","age":30}`))
	require.NoError(t, err)

	// Parse sorts object keys, so lines come out alphabetically.
	got := FlattenText(v)
	assert.Equal(t, "age: 30\nname: Rahul Sharma\npan: ABCDE1234F", got)
}

func TestFlattenText_NestedAndArrays(t *testing.T) {
	v, err := Parse([]byte(`{
		"bank": {"ifsc": "SBIN0001234", "account": "123456789012"},
		"pages": [{"page": 1, "text": "PAN: ABCDE1234F"}],
		"errors": []
	}`))
	require.NoError(t, err)

	got := FlattenText(v)
	assert.Contains(t, got, "ifsc: SBIN0001234")
	assert.Contains(t, got, "account: 123456789012")
	assert.Contains(t, got, "page: 1")
	assert.Contains(t, got, "text: PAN: ABCDE1234F")
}

func TestFlattenText_SkipsNullsAndEmptyStrings(t *testing.T) {
	v, err := Parse([]byte(`{"a":null,"b":"","c":"kept"}`))
	require.NoError(t, err)

	assert.Equal(t, "c: kept", FlattenText(v))
}

func TestFlattenText_BareScalar(t *testing.T) {
	v, err := Parse([]byte(`"just text"`))
	require.NoError(t, err)

	assert.Equal(t, "just text", FlattenText(v))
}
