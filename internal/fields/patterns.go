package fields

import (
	"regexp"

	"github.com/docuvault/field-extractor/constants"
)

// PatternTable holds the ordered recognition rules per field kind. It is built
// once at process start and treated as read-only shared data; matchers never
// recompile patterns per call.
type PatternTable struct {
	predefined map[constants.FieldKind][]*regexp.Regexp
	// predefinedOrder fixes the iteration order for ExtractAll so results are
	// deterministic regardless of map ordering.
	predefinedOrder []constants.FieldKind

	name    []*regexp.Regexp
	address []*regexp.Regexp
	bank    []*regexp.Regexp

	dynamic []*regexp.Regexp
	table   []*regexp.Regexp

	education  map[string][]*regexp.Regexp
	employment map[string][]*regexp.Regexp
	// sub-extractor key order, again for determinism
	educationOrder  []string
	employmentOrder []string
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// DefaultPatternTable returns the built-in rule table for Indian identity,
// contact, bank, education and employment fields.
func DefaultPatternTable() *PatternTable {
	t := &PatternTable{
		predefined: map[constants.FieldKind][]*regexp.Regexp{
			constants.FieldPAN: compileAll(
				`(?i)[A-Z]{5}[0-9]{4}[A-Z]`,
				`(?i)PAN[:\s]*([A-Z]{5}[0-9]{4}[A-Z])`,
				`(?i)Permanent Account Number[:\s]*([A-Z]{5}[0-9]{4}[A-Z])`,
			),
			constants.FieldAadhaar: compileAll(
				`(?i)\b[0-9]{4}[\s-]?[0-9]{4}[\s-]?[0-9]{4}\b`,
				`(?i)Aadhaar[:\s]*([0-9]{4}[\s-]?[0-9]{4}[\s-]?[0-9]{4})`,
				`(?i)UID[:\s]*([0-9]{4}[\s-]?[0-9]{4}[\s-]?[0-9]{4})`,
			),
			constants.FieldEmail: compileAll(
				`(?i)\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`,
				`(?i)Email[:\s]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`,
				`(?i)E-mail[:\s]*([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`,
			),
			constants.FieldPhone: compileAll(
				`(?i)\+91[\s-]?[6-9][0-9]{9}`,
				`(?i)\b[6-9][0-9]{9}\b`,
				`(?i)Mobile[:\s]*(\+91[\s-]?[6-9][0-9]{9})`,
				`(?i)Phone[:\s]*(\+91[\s-]?[6-9][0-9]{9})`,
				`(?i)Contact[:\s]*(\+91[\s-]?[6-9][0-9]{9})`,
				`(?i)Mobile[:\s]*([6-9][0-9]{9})`,
				`(?i)Phone[:\s]*([6-9][0-9]{9})`,
			),
			constants.FieldDOB: compileAll(
				`(?i)\b([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})\b`,
				`(?i)\b([0-9]{4}[/-][0-9]{1,2}[/-][0-9]{1,2})\b`,
				`(?i)Date of Birth[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
				`(?i)DOB[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
				`(?i)Born[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
			),
			constants.FieldIFSC: compileAll(
				`(?i)\b[A-Z]{4}0[A-Z0-9]{6}\b`,
				`(?i)IFSC[:\s]*([A-Z]{4}0[A-Z0-9]{6})`,
				`(?i)IFSC Code[:\s]*([A-Z]{4}0[A-Z0-9]{6})`,
			),
			constants.FieldAccountNumber: compileAll(
				`(?i)Account[:\s]*([0-9]{9,18})`,
				`(?i)A/C[:\s]*([0-9]{9,18})`,
				`(?i)Account Number[:\s]*([0-9]{9,18})`,
			),
			constants.FieldPincode: compileAll(
				`(?i)\b[1-9][0-9]{5}\b`,
				`(?i)PIN[:\s]*([1-9][0-9]{5})`,
				`(?i)Pincode[:\s]*([1-9][0-9]{5})`,
				`(?i)Postal Code[:\s]*([1-9][0-9]{5})`,
			),
			constants.FieldPassport: compileAll(
				`(?i)[A-Z][0-9]{7}`,
				`(?i)Passport[:\s]*([A-Z][0-9]{7})`,
				`(?i)Passport Number[:\s]*([A-Z][0-9]{7})`,
			),
			constants.FieldDrivingLicense: compileAll(
				`(?i)[A-Z]{2}[0-9]{2}[0-9]{11}`,
				`(?i)DL[:\s]*([A-Z]{2}[0-9]{2}[0-9]{11})`,
				`(?i)Driving License[:\s]*([A-Z]{2}[0-9]{2}[0-9]{11})`,
			),
			constants.FieldEmployeeID: compileAll(
				`(?i)Employee ID[:\s]*([A-Z0-9]{4,15})`,
				`(?i)EMP ID[:\s]*([A-Z0-9]{4,15})`,
				`(?i)Staff ID[:\s]*([A-Z0-9]{4,15})`,
			),
		},
		predefinedOrder: []constants.FieldKind{
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
		},

		name: compileAll(
			`(?i)Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Full Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Candidate Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Employee Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Father'?s Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Mother'?s Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Spouse Name[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Guardian Name[:\s]*([A-Za-z ]{2,50})`,
		),
		address: compileAll(
			`(?is)Address[:\s]*([A-Za-z0-9\s,.-]{10,200})`,
			`(?is)Permanent Address[:\s]*([A-Za-z0-9\s,.-]{10,200})`,
			`(?is)Current Address[:\s]*([A-Za-z0-9\s,.-]{10,200})`,
			`(?is)Residential Address[:\s]*([A-Za-z0-9\s,.-]{10,200})`,
			`(?is)Correspondence Address[:\s]*([A-Za-z0-9\s,.-]{10,200})`,
		),
		bank: compileAll(
			`(?i)Bank Name[:\s]*([A-Za-z &]{2,50})`,
			`(?i)Bank[:\s]*([A-Za-z &]{2,50})`,
			`(?i)Branch[:\s]*([A-Za-z ]{2,50})`,
			`(?i)Branch Name[:\s]*([A-Za-z ]{2,50})`,
		),

		dynamic: compileAll(
			`(?i)([A-Za-z\s']{2,30})[:\s]*([A-Za-z0-9\s,.-]{1,100})`,
			`(?i)([A-Za-z\s]{2,20})\s*:\s*([^\n]{1,100})`,
			`(?i)([A-Za-z\s]{2,20})\s*-\s*([^\n]{1,100})`,
		),
		table: compileAll(
			`(?im)(\w+)\s+:\s*([^\n]+)`,
			`(?im)(\w+)\s+([A-Za-z0-9\s]{1,50})\s*\|`,
			`(?im)(\w+)\s*\|\s*([^|]+)`,
		),

		education: map[string][]*regexp.Regexp{
			"qualification": compileAll(
				`(?i)Qualification[:\s]*([A-Za-z .]{2,50})`,
				`(?i)Education[:\s]*([A-Za-z .]{2,50})`,
				`(?i)Degree[:\s]*([A-Za-z .]{2,50})`,
			),
			"university": compileAll(
				`(?i)University[:\s]*([A-Za-z ]{2,100})`,
				`(?i)College[:\s]*([A-Za-z ]{2,100})`,
				`(?i)Institute[:\s]*([A-Za-z ]{2,100})`,
			),
			"year_of_passing": compileAll(
				`(?i)Year of Passing[:\s]*([0-9]{4})`,
				`(?i)Passing Year[:\s]*([0-9]{4})`,
				`(?i)Graduation Year[:\s]*([0-9]{4})`,
			),
			"percentage": compileAll(
				`(?i)Percentage[:\s]*([0-9]{1,3}\.?[0-9]*)`,
				`(?i)Marks[:\s]*([0-9]{1,3}\.?[0-9]*)`,
				`(?i)CGPA[:\s]*([0-9]{1,2}\.?[0-9]*)`,
			),
		},
		educationOrder: []string{"qualification", "university", "year_of_passing", "percentage"},

		employment: map[string][]*regexp.Regexp{
			"designation": compileAll(
				`(?i)Designation[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Position[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Job Title[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Role[:\s]*([A-Za-z ]{2,50})`,
			),
			"department": compileAll(
				`(?i)Department[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Division[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Team[:\s]*([A-Za-z ]{2,50})`,
			),
			"joining_date": compileAll(
				`(?i)Joining Date[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
				`(?i)Date of Joining[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
				`(?i)Start Date[:\s]*([0-9]{1,2}[/-][0-9]{1,2}[/-][0-9]{4})`,
			),
			"reporting_manager": compileAll(
				`(?i)Reporting Manager[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Manager[:\s]*([A-Za-z ]{2,50})`,
				`(?i)Supervisor[:\s]*([A-Za-z ]{2,50})`,
			),
			"salary": compileAll(
				`(?i)Salary[:\s]*([0-9,]{1,15})`,
				`(?i)CTC[:\s]*([0-9,]{1,15})`,
				`(?i)Annual Package[:\s]*([0-9,]{1,15})`,
			),
		},
		employmentOrder: []string{"designation", "department", "joining_date", "reporting_manager", "salary"},
	}
	return t
}

// defaultTable is the immutable process-wide rule table.
var defaultTable = DefaultPatternTable()

// firstMatch reduces an ordered rule list: the first pattern yielding a
// non-empty capture (or whole match when the pattern has no group) wins.
func firstMatch(rules []*regexp.Regexp, text string) (string, bool) {
	for _, re := range rules {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		val := m[0]
		if len(m) > 1 {
			val = m[1]
		}
		if val != "" {
			return val, true
		}
	}
	return "", false
}
