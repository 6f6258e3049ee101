package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName_LabeledStopsAtLineEnd(t *testing.T) {
	e := NewExtractor(nil)

	name, ok := e.ExtractName("Name: John Doe\nPAN: ABCDE1234F\nEmail: JOHN@X.COM")
	require.True(t, ok)
	assert.Equal(t, "John Doe", name)
}

func TestExtractName_TitleCased(t *testing.T) {
	e := NewExtractor(nil)

	name, ok := e.ExtractName("Candidate Name: RAJESH KUMAR SHARMA")
	require.True(t, ok)
	assert.Equal(t, "Rajesh Kumar Sharma", name)
}

func TestExtractName_FallbackToTopLines(t *testing.T) {
	e := NewExtractor(nil)

	text := "APPLICATION FORM\nRajesh Kumar\nDOB: 01/01/1990"
	got, ok := e.ExtractName(text)
	require.True(t, ok)
	assert.Equal(t, "Rajesh Kumar", got)
}

func TestExtractName_FallbackSkipsFormNoise(t *testing.T) {
	e := NewExtractor(nil)

	// Every candidate line is disqualified: stop words, digits, too short.
	_, ok := e.ExtractName("APPLICATION FORM\nPAGE ONE\n123\nOK")
	assert.False(t, ok)
}

func TestExtractName_NoCandidates(t *testing.T) {
	e := NewExtractor(nil)

	_, ok := e.ExtractName("12345\n!!!\n@@@")
	assert.False(t, ok)
}
