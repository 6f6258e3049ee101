package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/docuvault/field-extractor/gen/ent"
	"github.com/docuvault/field-extractor/internal/entity"
	"github.com/docuvault/field-extractor/internal/repository"
)

type stubDocs struct{ doc *ent.Document }

func (s *stubDocs) GetByID(_ context.Context, _ uuid.UUID) (*ent.Document, error) {
	return s.doc, nil
}
func (s *stubDocs) GetByHash(_ context.Context, _ []byte) (*ent.Document, error) {
	return s.doc, nil
}
func (s *stubDocs) Create(_ context.Context, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.Document, error) {
	return s.doc, nil
}
func (s *stubDocs) UpsertByHash(_ context.Context, _, _, _ string, _ int, _ []byte, _ time.Time) (*ent.Document, bool, error) {
	return s.doc, false, nil
}

type stubFields struct{ rows []*entity.DocumentField }

func (s *stubFields) ReplaceForDocument(_ context.Context, _, _ uuid.UUID, _ []repository.StoredField) error {
	return nil
}
func (s *stubFields) ListByDocument(_ context.Context, _ uuid.UUID) ([]*entity.DocumentField, error) {
	return s.rows, nil
}

type stubJobs struct{ job *ent.ExtractJob }

func (s *stubJobs) Start(_ context.Context, _ uuid.UUID, _, _ string) (*ent.ExtractJob, error) {
	return s.job, nil
}
func (s *stubJobs) GetWithDocument(_ context.Context, _ uuid.UUID) (*ent.ExtractJob, *ent.Document, error) {
	return s.job, nil, nil
}
func (s *stubJobs) LatestForDocument(_ context.Context, _ uuid.UUID) (*ent.ExtractJob, error) {
	return s.job, nil
}
func (s *stubJobs) FinishOCRSuccess(_ context.Context, _ uuid.UUID, _ repository.OCROutcome) error {
	return nil
}
func (s *stubJobs) FinishParseSuccess(_ context.Context, _ uuid.UUID, _ json.RawMessage) error {
	return nil
}
func (s *stubJobs) FinishFailure(_ context.Context, _ uuid.UUID, _ string) error { return nil }

func TestExportFieldsXLSX(t *testing.T) {
	docID := uuid.New()
	conf := float32(0.9)
	svc := NewService(
		&stubDocs{doc: &ent.Document{ID: docID, Filename: "pan_card.pdf"}},
		&stubFields{rows: []*entity.DocumentField{
			{Name: "pan_number", Value: "ABCDE1234F", Source: "predefined", ExtractedAt: time.Now()},
			{Name: "hobby", Value: "reading", Source: "dynamic", ExtractedAt: time.Now()},
		}},
		&stubJobs{job: &ent.ExtractJob{ID: uuid.New(), DocumentID: docID, ExtractionConfidence: &conf}},
		nil,
	)

	b, err := svc.ExportFieldsXLSX(context.Background(), docID)
	require.NoError(t, err)
	require.NotEmpty(t, b)

	wb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Fields")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Field Name", rows[0][0])
	assert.Equal(t, "pan_number", rows[1][0])
	assert.Equal(t, "ABCDE1234F", rows[1][1])
	assert.Equal(t, "predefined", rows[1][2])
	assert.Equal(t, "pan_card.pdf", rows[1][4])
}
