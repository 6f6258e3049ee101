package fields

import "github.com/docuvault/field-extractor/constants"

// knownNames is the canonical name set covered by pattern lists and the
// specialized matchers. Anything outside it was discovered dynamically.
var knownNames = func() map[string]struct{} {
	kinds := []constants.FieldKind{
		constants.FieldPAN,
		constants.FieldAadhaar,
		constants.FieldEmail,
		constants.FieldPhone,
		constants.FieldDOB,
		constants.FieldIFSC,
		constants.FieldAccountNumber,
		constants.FieldPincode,
		constants.FieldPassport,
		constants.FieldDrivingLicense,
		constants.FieldEmployeeID,
		constants.FieldFullName,
		constants.FieldAddressLine1,
		constants.FieldAddressLine2,
		constants.FieldCity,
		constants.FieldState,
		constants.FieldBankName,
	}
	set := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		set[constants.CanonicalName(string(k))] = struct{}{}
	}
	return set
}()

// SourceOf classifies a canonical field name for persistence.
func SourceOf(name string) string {
	if _, ok := knownNames[name]; ok {
		return constants.SourcePredefined
	}
	return constants.SourceDynamic
}
