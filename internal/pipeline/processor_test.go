package processor

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/gen/ent"
	"github.com/docuvault/field-extractor/internal/entity"
	"github.com/docuvault/field-extractor/internal/ocr"
	"github.com/docuvault/field-extractor/internal/repository"
)

type stubDocs struct {
	doc *ent.Document
	err error
}

func (s *stubDocs) GetByID(_ context.Context, _ uuid.UUID) (*ent.Document, error) {
	return s.doc, s.err
}
func (s *stubDocs) GetByHash(_ context.Context, _ []byte) (*ent.Document, error) {
	return s.doc, s.err
}
func (s *stubDocs) Create(_ context.Context, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.Document, error) {
	return s.doc, s.err
}
func (s *stubDocs) UpsertByHash(_ context.Context, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.Document, bool, error) {
	return s.doc, false, s.err
}

type stubJobs struct {
	job *ent.ExtractJob
	doc *ent.Document

	startedFormat string
	startedStatus string
	ocrOut        *repository.OCROutcome
	parsed        json.RawMessage
	failedMsg     string
}

func (s *stubJobs) Start(_ context.Context, documentID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	s.startedFormat = format
	s.startedStatus = status
	if s.job == nil {
		s.job = &ent.ExtractJob{ID: uuid.New(), DocumentID: documentID, Format: format}
	}
	return s.job, nil
}
func (s *stubJobs) GetWithDocument(_ context.Context, _ uuid.UUID) (*ent.ExtractJob, *ent.Document, error) {
	if s.job == nil {
		return nil, nil, errors.New("not found")
	}
	return s.job, s.doc, nil
}
func (s *stubJobs) LatestForDocument(_ context.Context, _ uuid.UUID) (*ent.ExtractJob, error) {
	return s.job, nil
}
func (s *stubJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, out repository.OCROutcome) error {
	s.ocrOut = &out
	return nil
}
func (s *stubJobs) FinishParseSuccess(_ context.Context, _ uuid.UUID, extracted json.RawMessage) error {
	s.parsed = extracted
	return nil
}
func (s *stubJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	s.failedMsg = message
	return nil
}

type stubFields struct {
	stored []repository.StoredField
	err    error
}

func (s *stubFields) ReplaceForDocument(_ context.Context, _, _ uuid.UUID, fields []repository.StoredField) error {
	s.stored = fields
	return s.err
}
func (s *stubFields) ListByDocument(_ context.Context, _ uuid.UUID) ([]*entity.DocumentField, error) {
	return nil, nil
}

type stubExtractor struct {
	res ocr.ExtractionResult
	err error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (ocr.ExtractionResult, error) {
	return s.res, s.err
}

func testLogger() *slog.Logger { return slog.Default() }

func TestOCRStage_PDFHappyPath(t *testing.T) {
	docID := uuid.New()
	docs := &stubDocs{doc: &ent.Document{ID: docID, SourcePath: "/in/form.pdf", FileExt: "pdf"}}
	jobs := &stubJobs{}
	ex := &stubExtractor{res: ocr.ExtractionResult{
		JSON:       `{"pan_number":"ABCDE1234F"}`,
		Pages:      2,
		Method:     "pdf-vision",
		Confidence: 0.9,
	}}

	stage := NewOCRStage(docs, jobs, ex, "gemini-1.5-flash", testLogger())
	jobID, res, err := stage.Run(context.Background(), docID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	assert.Equal(t, 2, res.Pages)

	assert.Equal(t, constants.PDF, jobs.startedFormat)
	assert.Equal(t, string(constants.JobStatusRunning), jobs.startedStatus)
	require.NotNil(t, jobs.ocrOut)
	assert.JSONEq(t, `{"pan_number":"ABCDE1234F"}`, string(jobs.ocrOut.OCROutput))
	assert.Equal(t, 2, jobs.ocrOut.PageCount)
	assert.Equal(t, "gemini-1.5-flash", jobs.ocrOut.ModelName)
	assert.False(t, jobs.ocrOut.NeedsReview)
}

func TestOCRStage_LowConfidenceImageNeedsReview(t *testing.T) {
	docID := uuid.New()
	docs := &stubDocs{doc: &ent.Document{ID: docID, SourcePath: "/in/scan.jpg", FileExt: "jpg"}}
	jobs := &stubJobs{}
	ex := &stubExtractor{res: ocr.ExtractionResult{
		JSON:       `{"text":"blur"}`,
		Pages:      1,
		Method:     "image-vision",
		Confidence: 0.5,
	}}

	stage := NewOCRStage(docs, jobs, ex, "gemini-1.5-flash", testLogger())
	_, _, err := stage.Run(context.Background(), docID)
	require.NoError(t, err)
	require.NotNil(t, jobs.ocrOut)
	assert.True(t, jobs.ocrOut.NeedsReview)
}

func TestOCRStage_UnsupportedExtension(t *testing.T) {
	docID := uuid.New()
	docs := &stubDocs{doc: &ent.Document{ID: docID, SourcePath: "/in/notes.txt", FileExt: "txt"}}
	jobs := &stubJobs{}

	stage := NewOCRStage(docs, jobs, &stubExtractor{}, "m", testLogger())
	_, _, err := stage.Run(context.Background(), docID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Empty(t, jobs.startedStatus)
}

func TestOCRStage_ExtractorFailureMarksJobFailed(t *testing.T) {
	docID := uuid.New()
	docs := &stubDocs{doc: &ent.Document{ID: docID, SourcePath: "/in/form.pdf", FileExt: "pdf"}}
	jobs := &stubJobs{}
	ex := &stubExtractor{err: errors.New("pdftoppm exploded")}

	stage := NewOCRStage(docs, jobs, ex, "m", testLogger())
	jobID, _, err := stage.Run(context.Background(), docID)
	require.Error(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	assert.Equal(t, "pdftoppm exploded", jobs.failedMsg)
}

func TestParseStage_ExtractsAndStoresFields(t *testing.T) {
	docID := uuid.New()
	status := string(constants.JobStatusOCROK)
	job := &ent.ExtractJob{
		ID:         uuid.New(),
		DocumentID: docID,
		Status:     &status,
		OcrOutput:  json.RawMessage(`{"text":"PAN Number: ABCDE1234F\nEmail: rahul@example.com"}`),
	}
	jobs := &stubJobs{job: job, doc: &ent.Document{ID: docID, SourcePath: "/in/form.pdf"}}
	fieldsRepo := &stubFields{}

	stage := NewParseStage(testLogger(), jobs, fieldsRepo, nil)
	jobID, err := stage.Run(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, jobID)

	byName := map[string]repository.StoredField{}
	for _, f := range fieldsRepo.stored {
		byName[f.Name] = f
	}
	require.Contains(t, byName, "pan_number")
	assert.Equal(t, "ABCDE1234F", byName["pan_number"].Value)
	assert.Equal(t, constants.SourcePredefined, byName["pan_number"].Source)
	require.Contains(t, byName, "email")
	assert.Equal(t, "rahul@example.com", byName["email"].Value)

	require.NotEmpty(t, jobs.parsed)
	var extracted map[string]string
	require.NoError(t, json.Unmarshal(jobs.parsed, &extracted))
	assert.Equal(t, "ABCDE1234F", extracted["pan_number"])
}

func TestParseStage_RejectsJobNotInOCROK(t *testing.T) {
	docID := uuid.New()
	status := string(constants.JobStatusRunning)
	job := &ent.ExtractJob{ID: uuid.New(), DocumentID: docID, Status: &status}
	jobs := &stubJobs{job: job, doc: &ent.Document{ID: docID}}

	stage := NewParseStage(testLogger(), jobs, &stubFields{}, nil)
	_, err := stage.Run(context.Background(), job.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready for parse")
	assert.Empty(t, jobs.failedMsg)
}

func TestProcessor_RunsBothStages(t *testing.T) {
	docID := uuid.New()
	docs := &stubDocs{doc: &ent.Document{ID: docID, SourcePath: "/in/form.pdf", FileExt: "pdf"}}
	fieldsRepo := &stubFields{}

	status := string(constants.JobStatusOCROK)
	jobs := &stubJobs{doc: docs.doc}
	ex := &stubExtractor{res: ocr.ExtractionResult{
		JSON:       `{"text":"IFSC: SBIN0001234"}`,
		Pages:      1,
		Method:     "pdf-vision",
		Confidence: 0.9,
	}}

	ocrStage := NewOCRStage(docs, jobs, ex, "gemini-1.5-flash", testLogger())
	parseStage := NewParseStage(testLogger(), jobs, fieldsRepo, nil)
	p := NewProcessor(testLogger(), ocrStage, parseStage)

	// The stub persists OCR output on the shared job row like the real repo would.
	jobs.job = &ent.ExtractJob{ID: uuid.New(), DocumentID: docID, Status: &status,
		OcrOutput: json.RawMessage(`{"text":"IFSC: SBIN0001234"}`)}

	jobID, err := p.ProcessDocument(context.Background(), docID)
	require.NoError(t, err)
	assert.Equal(t, jobs.job.ID, jobID)
	require.NotEmpty(t, fieldsRepo.stored)
}
