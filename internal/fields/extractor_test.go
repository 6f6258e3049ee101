package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAll_MultiFieldDocument(t *testing.T) {
	e := NewExtractor(nil)

	text := "Name: John Doe\nPAN: ABCDE1234F\nEmail: JOHN@X.COM\nDOB: 12/05/1990"
	got := e.ExtractAll(text)

	assert.Equal(t, "John Doe", got["full_name"])
	assert.Equal(t, "ABCDE1234F", got["pan_number"])
	assert.Equal(t, "john@x.com", got["email"])
	assert.Equal(t, "12/05/1990", got["date_of_birth"])
}

func TestExtractAll_CanonicalRenames(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractAll("Aadhaar: 1234 5678 9012\nMobile: +91-9876543210")

	assert.Equal(t, "123456789012", got["aadhaar_number"])
	assert.Equal(t, "+919876543210", got["phone_number"])
	// Raw extraction keys must not survive the rename.
	assert.NotContains(t, got, "aadhaar")
	assert.NotContains(t, got, "phone")
	assert.NotContains(t, got, "dob")
	assert.NotContains(t, got, "pan")
}

func TestExtractAll_PredefinedBeatsDynamic(t *testing.T) {
	e := NewExtractor(nil)

	// The dynamic scan sees the raw lowercase value for the same label; the
	// predefined match (cleaned, uppercased) must win.
	got := e.ExtractAll("pan: abcde1234f")
	assert.Equal(t, "ABCDE1234F", got["pan_number"])
}

func TestExtractAll_RenameCollisionKeepsPredefined(t *testing.T) {
	e := NewExtractor(nil)

	// "dob" (predefined) and a dynamically harvested "date_of_birth" both
	// canonicalize to date_of_birth; the predefined value must survive, and
	// identically on every run.
	text := "DOB: 01/01/1990\nDate Of Birth - 02/02/1992"
	for i := 0; i < 50; i++ {
		got := e.ExtractAll(text)
		assert.Equal(t, "01/01/1990", got["date_of_birth"])
		assert.NotContains(t, got, "dob")
	}
}

func TestExtractAll_DynamicFillsUnknownLabels(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractAll("Nationality: Indian\nPAN: ABCDE1234F")
	assert.Equal(t, "Indian", got["nationality"])
	assert.Equal(t, "ABCDE1234F", got["pan_number"])
}

func TestExtractAll_EmptyText(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractAll("")
	assert.Empty(t, got)
}

func TestExtractValidated_DropsStructurallyInvalid(t *testing.T) {
	e := NewExtractor(nil)

	// "Phone" is not a predefined match here (bad lead digit), so the value
	// arrives via the dynamic tier and must be dropped by validation.
	got := e.ExtractValidated("PAN: ABCDE1234F\nPhone: 1234567890")
	assert.Equal(t, "ABCDE1234F", got["pan_number"])
	assert.NotContains(t, got, "phone_number")
}
