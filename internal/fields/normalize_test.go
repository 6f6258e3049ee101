package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesNoiseAndWhitespace(t *testing.T) {
	assert.Equal(t, "Name: John Doe", Normalize("Name:||John__Doe"))
	assert.Equal(t, "a b c", Normalize("a\n\tb   c"))
	assert.Equal(t, "PAN ABCDE1234F", Normalize("  PAN ___ ABCDE1234F  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"Name:||John__Doe",
		"a | b _ c",
		"  lots\t\tof\n\nspace  ",
		"already normal",
		"",
	}
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalizeLines_KeepsLineBreaks(t *testing.T) {
	assert.Equal(t, "a b\nc d", NormalizeLines("a  b\r\nc\t d"))
	assert.Equal(t, "Name: John\nPAN: X", NormalizeLines("Name:|| John\nPAN:__ X"))
}

func TestNormalizeLines_TrimsEachLine(t *testing.T) {
	assert.Equal(t, "first\nsecond", NormalizeLines("  first  \n\t second \t"))
}
