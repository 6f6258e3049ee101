package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/gen/ent"
	entjob "github.com/docuvault/field-extractor/gen/ent/extractjob"
)

// OCROutcome is what the OCR stage persists when page extraction succeeds.
type OCROutcome struct {
	OCROutput   json.RawMessage
	Confidence  float32
	NeedsReview bool
	PageCount   int
	ModelName   string
	ModelParams map[string]any
}

type ExtractJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format, status string) (*ent.ExtractJob, error)
	GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error)
	LatestForDocument(ctx context.Context, documentID uuid.UUID) (*ent.ExtractJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, out OCROutcome) error
	FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, documentID uuid.UUID, format, status string) (*ent.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return job, nil
}

func (r *extractJobRepo) GetWithDocument(ctx context.Context, jobID uuid.UUID) (*ent.ExtractJob, *ent.Document, error) {
	job, err := r.ent.ExtractJob.Query().
		Where(entjob.ID(jobID)).
		WithDocument().
		Only(ctx)
	if err != nil {
		return nil, nil, err
	}
	return job, job.Edges.Document, nil
}

func (r *extractJobRepo) LatestForDocument(ctx context.Context, documentID uuid.UUID) (*ent.ExtractJob, error) {
	return r.ent.ExtractJob.Query().
		Where(entjob.DocumentID(documentID)).
		Order(ent.Desc(entjob.FieldStartedAt)).
		First(ctx)
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, out OCROutcome) error {
	var params []byte
	if out.ModelParams != nil {
		if b, err := json.Marshal(out.ModelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrOutput(out.OCROutput).
		SetExtractionConfidence(out.Confidence).
		SetNeedsReview(out.NeedsReview).
		SetPageCount(out.PageCount).
		SetModelName(out.ModelName).
		SetModelParams(params).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (OCR_OK)", "job_id", jobID, "model", out.ModelName, "pages", out.PageCount)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID uuid.UUID, extracted json.RawMessage) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetExtractedFields(extracted).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusParseOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(PARSE_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (PARSE_OK)", "job_id", jobID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
