package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDynamic_LabelValueLines(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractDynamic("Nationality: Indian\nBlood Group: O Positive")
	assert.Equal(t, "Indian", got["nationality"])
	assert.Equal(t, "O Positive", got["blood_group"])
}

func TestExtractDynamic_StopWordLabelsRejected(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractDynamic("Date: 12/05/1990\nSignature: here")
	assert.NotContains(t, got, "date")
	assert.NotContains(t, got, "signature")
}

func TestExtractDynamic_FirstWriteWinsPerLabel(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractDynamic("Remarks: Good conduct\nRemarks: Needs review")
	assert.Equal(t, "Good conduct", got["remarks"])
}

func TestExtractDynamic_SkipsShortLines(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractDynamic("AB:C")
	assert.Empty(t, got)
}

func TestExtractDynamic_EducationLabels(t *testing.T) {
	e := NewExtractor(nil)

	text := "Qualification: Bachelor of Engineering\nUniversity: Anna University\nYear of Passing: 2015\nPercentage: 85.5"
	got := e.ExtractDynamic(text)
	assert.Equal(t, "Bachelor of Engineering", got["qualification"])
	assert.Equal(t, "Anna University", got["university"])
	assert.Equal(t, "2015", got["year_of_passing"])
	assert.Equal(t, "85.5", got["percentage"])
}

func TestExtractDynamic_EmploymentLabels(t *testing.T) {
	e := NewExtractor(nil)

	text := "Designation: Senior Engineer\nDepartment: Research\nSalary: 1,200,000"
	got := e.ExtractDynamic(text)
	assert.Equal(t, "Senior Engineer", got["designation"])
	assert.Equal(t, "Research", got["department"])
	assert.Equal(t, "1,200,000", got["salary"])
}

func TestExtractDynamic_PipeTableRows(t *testing.T) {
	e := NewExtractor(nil)

	got := e.ExtractDynamic("hobby | reading books")
	assert.Equal(t, "reading books", got["hobby"])
}
