package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/internal/fields"
	"github.com/docuvault/field-extractor/internal/jsonrec"
	"github.com/docuvault/field-extractor/internal/llm"
	"github.com/docuvault/field-extractor/internal/repository"
)

type ParseStage struct {
	Logger     *slog.Logger
	JobsRepo   repository.ExtractJobRepository
	FieldsRepo repository.DocumentFieldRepository
	Extractor  *fields.Extractor
}

func NewParseStage(
	logger *slog.Logger,
	jobs repository.ExtractJobRepository,
	fieldsRepo repository.DocumentFieldRepository,
	ex *fields.Extractor,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if ex == nil {
		ex = fields.NewExtractor(logger)
	}
	return &ParseStage{
		Logger:     logger,
		JobsRepo:   jobs,
		FieldsRepo: fieldsRepo,
		Extractor:  ex,
	}
}

// Run executes the field-parse stage for an existing OCR job.
// Preconditions: job is OCR_OK with a non-empty merged document.
// Effects: writes extracted_fields on the job, replaces the document's
// stored field rows, and marks the job PARSE_OK.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (uuid.UUID, error) {
	job, doc, err := p.JobsRepo.GetWithDocument(ctx, jobID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("load job: %w", err)
	}
	if job.Status == nil || *job.Status != string(constants.JobStatusOCROK) || len(job.OcrOutput) == 0 {
		status := "<nil>"
		if job.Status != nil {
			status = *job.Status
		}
		return job.ID, fmt.Errorf("job not ready for parse: status=%s ocr_empty=%t", status, len(job.OcrOutput) == 0)
	}

	// Envelope shape problems are logged, not fatal: the flattener still
	// gets useful text out of partially recovered documents.
	if err := llm.ValidateJSONAgainstSchema(llm.BuildDocumentEnvelopeSchema(), job.OcrOutput); err != nil {
		p.Logger.Warn("ocr output failed envelope validation", "job_id", job.ID, "err", err)
	}

	merged, err := jsonrec.Parse(job.OcrOutput)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, fmt.Sprintf("decode ocr output: %v", err))
		return job.ID, fmt.Errorf("decode ocr output: %w", err)
	}
	text := jsonrec.FlattenText(merged)

	p.Logger.Info("parse fields start",
		"job_id", job.ID, "document_id", doc.ID, "text_bytes", len(text))

	set := p.Extractor.ExtractValidated(text)
	if len(set) == 0 {
		p.Logger.Warn("no fields extracted", "job_id", job.ID, "document_id", doc.ID)
	}

	stored := make([]repository.StoredField, 0, len(set))
	for name, value := range set {
		stored = append(stored, repository.StoredField{
			Name:   name,
			Value:  value,
			Source: fields.SourceOf(name),
		})
	}
	if err := p.FieldsRepo.ReplaceForDocument(ctx, doc.ID, job.ID, stored); err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, fmt.Errorf("store fields: %w", err)
	}

	extracted, err := json.Marshal(set)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, err
	}
	if err := p.JobsRepo.FinishParseSuccess(ctx, job.ID, extracted); err != nil {
		return job.ID, err
	}

	p.Logger.Info("parsed fields successfully",
		"job_id", job.ID, "document_id", doc.ID, "fields", len(set))
	return job.ID, nil
}
