package fields

import (
	"testing"

	"github.com/docuvault/field-extractor/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKind_PAN(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("PAN: ABCDE1234F", constants.FieldPAN)
	require.True(t, ok)
	assert.Equal(t, "ABCDE1234F", val)

	// Lowercase input is matched and uppercased.
	val, ok = e.ExtractKind("pan: abcde1234f", constants.FieldPAN)
	require.True(t, ok)
	assert.Equal(t, "ABCDE1234F", val)

	_, ok = e.ExtractKind("no identifiers here", constants.FieldPAN)
	assert.False(t, ok)
}

func TestExtractKind_AadhaarStripsSeparators(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("Aadhaar: 1234 5678 9012", constants.FieldAadhaar)
	require.True(t, ok)
	assert.Equal(t, "123456789012", val)

	val, ok = e.ExtractKind("UID 1234-5678-9012", constants.FieldAadhaar)
	require.True(t, ok)
	assert.Equal(t, "123456789012", val)
}

func TestExtractKind_EmailLowercased(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("Email: JOHN.DOE@EXAMPLE.COM", constants.FieldEmail)
	require.True(t, ok)
	assert.Equal(t, "john.doe@example.com", val)
}

func TestExtractKind_Phone(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("Mobile: +91-9876543210", constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "+919876543210", val)

	val, ok = e.ExtractKind("call me at 9876543210 today", constants.FieldPhone)
	require.True(t, ok)
	assert.Equal(t, "9876543210", val)

	// Landline-style numbers without a 6-9 lead digit are not mobiles.
	_, ok = e.ExtractKind("Phone: 0226543210", constants.FieldPhone)
	assert.False(t, ok)
}

func TestExtractKind_DOB(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("DOB: 12/05/1990", constants.FieldDOB)
	require.True(t, ok)
	assert.Equal(t, "12/05/1990", val)

	val, ok = e.ExtractKind("Born on 1990-05-12 in Pune", constants.FieldDOB)
	require.True(t, ok)
	assert.Equal(t, "1990-05-12", val)
}

func TestExtractKind_BankIdentifiers(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("IFSC: HDFC0001234", constants.FieldIFSC)
	require.True(t, ok)
	assert.Equal(t, "HDFC0001234", val)

	val, ok = e.ExtractKind("Account Number: 123456789012345", constants.FieldAccountNumber)
	require.True(t, ok)
	assert.Equal(t, "123456789012345", val)
}

func TestExtractKind_Passport(t *testing.T) {
	e := NewExtractor(nil)

	val, ok := e.ExtractKind("Passport: A1234567", constants.FieldPassport)
	require.True(t, ok)
	assert.Equal(t, "A1234567", val)
}

func TestExtractKind_NoisyTextIsNormalizedFirst(t *testing.T) {
	e := NewExtractor(nil)

	// Form noise between label and value must not defeat the match.
	val, ok := e.ExtractKind("PAN __||__ ABCDE1234F", constants.FieldPAN)
	require.True(t, ok)
	assert.Equal(t, "ABCDE1234F", val)
}

func TestExtractKind_UnknownKind(t *testing.T) {
	e := NewExtractor(nil)

	_, ok := e.ExtractKind("anything", constants.FieldKind("no_such_kind"))
	assert.False(t, ok)
}
