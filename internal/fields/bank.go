package fields

import "strings"

// ExtractBankName tries the ordered bank/branch label patterns; the first
// candidate with length between 2 and 50 exclusive wins.
func (e *Extractor) ExtractBankName(text string) (string, bool) {
	lined := NormalizeLines(text)
	for _, re := range e.table.bank {
		m := re.FindStringSubmatch(lined)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > 2 && len(candidate) < 50 {
			return titleCase(strings.Join(strings.Fields(candidate), " ")), true
		}
	}
	return "", false
}
