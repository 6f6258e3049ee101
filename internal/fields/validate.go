package fields

import (
	"regexp"
	"strings"
)

var (
	rePANValue     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	reEmailValue   = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reIFSCValue    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	rePincodeValue = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	reAllDigits    = regexp.MustCompile(`^[0-9]+$`)
)

// Validate filters a field set down to the structurally valid entries.
// Invalid fields are dropped and logged as warnings; validation never fails.
func (e *Extractor) Validate(in FieldSet) FieldSet {
	out := make(FieldSet, len(in))
	for name, value := range in {
		if ValidateField(name, value) {
			out[name] = value
		} else {
			e.log.Warn("fields.validate.dropped", "field", name, "value", value)
		}
	}
	return out
}

// ValidateField reports whether a single field value passes its structural
// check. Fields without a dedicated check pass unconditionally.
func ValidateField(name, value string) bool {
	if value == "" {
		return false
	}

	switch name {
	case "pan_number":
		return rePANValue.MatchString(value)
	case "aadhaar_number":
		return len(reNonDigit.ReplaceAllString(value, "")) == 12
	case "email":
		return reEmailValue.MatchString(value)
	case "phone_number":
		return validPhone(value)
	case "ifsc_code", "ifsc":
		return reIFSCValue.MatchString(value)
	case "pincode":
		return rePincodeValue.MatchString(value)
	case "account_number":
		return len(value) >= 9 && len(value) <= 18 && reAllDigits.MatchString(value)
	case "full_name", "bank_name":
		return len(value) >= 2 && len(value) <= 100
	}
	return true
}

// validPhone accepts Indian mobile numbers: 10 digits, or 12 with the 91
// country code, first subscriber digit 6-9.
func validPhone(value string) bool {
	digits := reNonDigit.ReplaceAllString(value, "")
	switch len(digits) {
	case 12:
		if !strings.HasPrefix(digits, "91") {
			return false
		}
		digits = digits[2:]
	case 10:
	default:
		return false
	}
	return digits[0] >= '6' && digits[0] <= '9'
}
