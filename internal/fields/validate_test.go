package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value string
		want  bool
	}{
		{"pan ok", "pan_number", "ABCDE1234F", true},
		{"pan short", "pan_number", "ABC123", false},
		{"pan lowercase", "pan_number", "abcde1234f", false},

		{"aadhaar ok", "aadhaar_number", "123456789012", true},
		{"aadhaar separators ignored", "aadhaar_number", "1234 5678 9012", true},
		{"aadhaar short", "aadhaar_number", "12345", false},

		{"email ok", "email", "john@example.com", true},
		{"email no tld", "email", "john@example", false},

		{"phone 10 digits", "phone_number", "9876543210", true},
		{"phone bad lead", "phone_number", "5876543210", false},
		{"phone with country code", "phone_number", "919876543210", true},
		{"phone plus prefix", "phone_number", "+91-9876543210", true},
		{"phone 12 digits wrong code", "phone_number", "129876543210", false},
		{"phone 11 digits", "phone_number", "98765432100", false},

		{"ifsc ok", "ifsc_code", "HDFC0001234", true},
		{"ifsc bad fifth char", "ifsc_code", "HDFCX001234", false},

		{"pincode ok", "pincode", "560038", true},
		{"pincode leading zero", "pincode", "060038", false},

		{"account min", "account_number", "123456789", true},
		{"account too short", "account_number", "12345678", false},
		{"account too long", "account_number", "1234567890123456789", false},
		{"account non digit", "account_number", "12345678X", false},

		{"name ok", "full_name", "John Doe", true},
		{"name single char", "full_name", "J", false},

		{"unknown field passes", "nationality", "Indian", true},
		{"empty value fails", "nationality", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateField(tc.field, tc.value))
		})
	}
}

func TestValidate_DropsOnlyInvalid(t *testing.T) {
	e := NewExtractor(nil)

	in := FieldSet{
		"pan_number":   "ABCDE1234F",
		"phone_number": "1112223334",
		"nationality":  "Indian",
	}
	got := e.Validate(in)
	assert.Equal(t, FieldSet{
		"pan_number":  "ABCDE1234F",
		"nationality": "Indian",
	}, got)
}
