package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/field-extractor/internal/llm"
)

type stubVision struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubVision) ExtractPage(_ context.Context, _ llm.ExtractRequest) (string, error) {
	i := s.calls
	s.calls++
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	var text string
	if i < len(s.responses) {
		text = s.responses[i]
	}
	return text, err
}

func (s *stubVision) Close() error { return nil }

// stubRenderer fakes pdftoppm by writing page PNGs at the requested prefix.
type stubRenderer struct {
	pages int
}

func (s stubRenderer) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	prefix := args[len(args)-1]
	for i := 1; i <= s.pages; i++ {
		path := fmt.Sprintf("%s-%d.png", prefix, i)
		if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
			return nil, nil, err
		}
	}
	return nil, nil, nil
}

func writeTempImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o644))
	return path
}

func TestExtract_Image(t *testing.T) {
	vision := &stubVision{responses: []string{`{"name": "John", "pan": "ABCDE1234F"}`}}
	e := NewExtractor(Config{}, vision, nil)

	res, err := e.Extract(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	assert.Equal(t, "IMAGE", res.SourceType)
	assert.Equal(t, "image-vision", res.Method)
	assert.Equal(t, 1, res.Pages)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.JSON), &doc))
	assert.Equal(t, "John", doc["name"])
}

func TestExtract_ImageProseDegradesToTextWrapper(t *testing.T) {
	vision := &stubVision{responses: []string{"could not read the page"}}
	e := NewExtractor(Config{}, vision, nil)

	res, err := e.Extract(context.Background(), writeTempImage(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.JSON), &doc))
	assert.Equal(t, "could not read the page", doc["text"])
}

func TestExtract_PDFMergesPages(t *testing.T) {
	vision := &stubVision{responses: []string{
		`{"name": "John", "city": ""}`,
		`{"name": "Jane", "city": "Pune"}`,
	}}
	e := NewExtractor(Config{}, vision, nil)
	e.runner = stubRenderer{pages: 2}

	pdf := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o644))

	res, err := e.Extract(context.Background(), pdf)
	require.NoError(t, err)

	assert.Equal(t, "PDF", res.SourceType)
	assert.Equal(t, "pdf-vision", res.Method)
	assert.Equal(t, 2, res.Pages)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.JSON), &doc))
	assert.Equal(t, "John", doc["name"])
	assert.Equal(t, "Pune", doc["city"])
}

func TestExtract_PDFPageErrorRecorded(t *testing.T) {
	vision := &stubVision{
		responses: []string{`{"name": "John"}`, ""},
		errs:      []error{nil, fmt.Errorf("model unavailable")},
	}
	e := NewExtractor(Config{}, vision, nil)
	e.runner = stubRenderer{pages: 2}

	pdf := filepath.Join(t.TempDir(), "form.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0o644))

	res, err := e.Extract(context.Background(), pdf)
	require.NoError(t, err)

	var doc struct {
		Name   string `json:"name"`
		Errors []struct {
			Page  int    `json:"page"`
			Error string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.JSON), &doc))
	assert.Equal(t, "John", doc.Name)
	require.Len(t, doc.Errors, 1)
	assert.Equal(t, 2, doc.Errors[0].Page)
	assert.Equal(t, "model unavailable", doc.Errors[0].Error)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, &stubVision{}, nil)

	_, err := e.Extract(context.Background(), "/tmp/input.docx")
	assert.Error(t, err)
}

func TestContentConfidence(t *testing.T) {
	assert.Equal(t, float32(0.50), contentConfidence("{}"))
	assert.Equal(t, float32(0.75), contentConfidence(`{"name": "John"}`))

	big := `{"name": "John", "address": "12 MG Road Bangalore", "pan": "ABCDE1234F", "email": "john@example.com", "phone": "9876543210"}`
	assert.Equal(t, float32(0.90), contentConfidence(big))
}
