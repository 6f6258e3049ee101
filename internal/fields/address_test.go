package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAddress_CommaSeparated(t *testing.T) {
	e := NewExtractor(nil)

	addr, ok := e.ExtractAddress("Address: 12 MG Road, Indiranagar, Bangalore Karnataka 560038")
	require.True(t, ok)
	assert.Equal(t, "12 MG Road", addr.Line1)
	assert.Equal(t, "Indiranagar", addr.Line2)
	assert.Equal(t, "Bangalore", addr.City)
	assert.Equal(t, "Karnataka", addr.State)
	assert.Equal(t, "560038", addr.Pincode)
}

func TestExtractAddress_SpansLines(t *testing.T) {
	e := NewExtractor(nil)

	addr, ok := e.ExtractAddress("Permanent Address: 45 Park Street,\nKolkata West Bengal 700016")
	require.True(t, ok)
	assert.Equal(t, "45 Park Street", addr.Line1)
	assert.Equal(t, "Kolkata", addr.City)
	assert.Equal(t, "West Bengal", addr.State)
	assert.Equal(t, "700016", addr.Pincode)
}

func TestExtractAddress_SinglePartCityOnly(t *testing.T) {
	e := NewExtractor(nil)

	addr, ok := e.ExtractAddress("Address: 7 Nehru Marg Jaipur")
	require.True(t, ok)
	assert.Equal(t, "7 Nehru Marg Jaipur", addr.Line1)
	assert.Empty(t, addr.Line2)
	assert.Empty(t, addr.Pincode)
}

func TestExtractAddress_TooShort(t *testing.T) {
	e := NewExtractor(nil)

	_, ok := e.ExtractAddress("Address: abc")
	assert.False(t, ok)
}

func TestAddress_Components(t *testing.T) {
	a := Address{Line1: "12 MG Road", City: "Bangalore", Pincode: "560038"}
	got := a.Components()
	assert.Equal(t, map[string]string{
		"address_line_1": "12 MG Road",
		"city":           "Bangalore",
		"pincode":        "560038",
	}, got)
}
