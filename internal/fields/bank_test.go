package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBankName_Labeled(t *testing.T) {
	e := NewExtractor(nil)

	got, ok := e.ExtractBankName("Bank Name: State Bank of India\nIFSC: SBIN0001234")
	require.True(t, ok)
	assert.Equal(t, "State Bank Of India", got)
}

func TestExtractBankName_ShortLabelFallthrough(t *testing.T) {
	e := NewExtractor(nil)

	got, ok := e.ExtractBankName("Bank: HDFC Bank\nBranch: Koramangala")
	require.True(t, ok)
	assert.Equal(t, "Hdfc Bank", got)
}

func TestExtractBankName_RejectsTooShort(t *testing.T) {
	e := NewExtractor(nil)

	_, ok := e.ExtractBankName("some text without any match")
	assert.False(t, ok)
}
