package constants

// FieldKind names a category of extractable data point. Predefined kinds have a
// dedicated pattern list; anything else is a dynamic field keyed by its
// normalized label.
type FieldKind string

const (
	FieldPAN            FieldKind = "pan"
	FieldAadhaar        FieldKind = "aadhaar"
	FieldEmail          FieldKind = "email"
	FieldPhone          FieldKind = "phone"
	FieldDOB            FieldKind = "dob"
	FieldIFSC           FieldKind = "ifsc"
	FieldAccountNumber  FieldKind = "account_number"
	FieldPincode        FieldKind = "pincode"
	FieldPassport       FieldKind = "passport"
	FieldDrivingLicense FieldKind = "driving_license"
	FieldEmployeeID     FieldKind = "employee_id"

	FieldFullName     FieldKind = "full_name"
	FieldAddressLine1 FieldKind = "address_line_1"
	FieldAddressLine2 FieldKind = "address_line_2"
	FieldCity         FieldKind = "city"
	FieldState        FieldKind = "state"
	FieldBankName     FieldKind = "bank_name"
)

// Source tags where a stored document field came from.
const (
	SourcePredefined = "predefined" // matched by a dedicated pattern list
	SourceDynamic    = "dynamic"    // harvested from a label/value line
)

// FieldSources holds the allowed values for the source field in DocumentField.
var FieldSources = []string{SourcePredefined, SourceDynamic}

// CanonicalFieldNames renames extraction keys to their stored field names.
// Applied uniformly as the last reconciliation step.
var CanonicalFieldNames = map[string]string{
	"dob":     "date_of_birth",
	"phone":   "phone_number",
	"aadhaar": "aadhaar_number",
	"pan":     "pan_number",
}

// CanonicalName maps an extraction key to its stored field name.
func CanonicalName(key string) string {
	if mapped, ok := CanonicalFieldNames[key]; ok {
		return mapped
	}
	return key
}
