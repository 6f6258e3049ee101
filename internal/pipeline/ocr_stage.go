package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/internal/ocr"
	"github.com/docuvault/field-extractor/internal/repository"
)

// DocumentExtractor is the slice of the OCR layer the stage needs.
type DocumentExtractor interface {
	Extract(ctx context.Context, path string) (ocr.ExtractionResult, error)
}

type OCRStage struct {
	DocsRepo  repository.DocumentRepository
	JobsRepo  repository.ExtractJobRepository
	Extractor DocumentExtractor
	ModelName string
	Logger    *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, ex DocumentExtractor, modelName string, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{DocsRepo: docs, JobsRepo: jobs, Extractor: ex, ModelName: modelName, Logger: logger}
}

// Run starts an extract_job, runs per-page vision OCR, and persists the
// merged document JSON. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, ocr.ExtractionResult, error) {
	doc, err := p.DocsRepo.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return uuid.Nil, ocr.ExtractionResult{}, fmt.Errorf("unsupported format: %s", doc.FileExt)
	}

	// Start job in RUNNING
	job, err := p.JobsRepo.Start(ctx, doc.ID, format, string(constants.JobStatusRunning))
	if err != nil {
		return uuid.Nil, ocr.ExtractionResult{}, err
	}

	res, err := p.Extractor.Extract(ctx, doc.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	// Flag low-confidence single-image extractions for review
	needsReview := false
	if format == constants.IMAGE && res.Confidence > 0 && res.Confidence < constants.ImageConfidenceThreshold {
		p.Logger.Warn("image extraction confidence low; needs review",
			"document_id", documentID, "job_id", job.ID, "conf", res.Confidence)
		needsReview = true
	}

	out := repository.OCROutcome{
		OCROutput:   json.RawMessage(res.JSON),
		Confidence:  res.Confidence,
		NeedsReview: needsReview,
		PageCount:   res.Pages,
		ModelName:   p.ModelName,
		ModelParams: map[string]any{
			"method":      res.Method,
			"duration_ms": res.Duration.Milliseconds(),
			"warnings":    res.Warnings,
		},
	}
	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, out); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}
