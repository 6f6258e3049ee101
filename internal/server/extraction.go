package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docuvault/field-extractor/constants"
	v1 "github.com/docuvault/field-extractor/gen/proto/docs/v1"
	"github.com/docuvault/field-extractor/internal/common"
	"github.com/docuvault/field-extractor/internal/export"
	"github.com/docuvault/field-extractor/internal/ingest"
	processor "github.com/docuvault/field-extractor/internal/pipeline"
	"github.com/docuvault/field-extractor/internal/repository"
	"github.com/docuvault/field-extractor/internal/utils"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	ingestor   ingest.Ingestor
	processor  *processor.Processor
	docsRepo   repository.DocumentRepository
	jobsRepo   repository.ExtractJobRepository
	fieldsRepo repository.DocumentFieldRepository
	exporter   *export.Service
	logger     *slog.Logger
}

func NewExtractionService(
	ing ingest.Ingestor,
	proc *processor.Processor,
	docs repository.DocumentRepository,
	jobs repository.ExtractJobRepository,
	fields repository.DocumentFieldRepository,
	exporter *export.Service,
	logger *slog.Logger,
) *ExtractionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractionService{
		ingestor:   ing,
		processor:  proc,
		docsRepo:   docs,
		jobsRepo:   jobs,
		fieldsRepo: fields,
		exporter:   exporter,
		logger:     logger,
	}
}

func (s *ExtractionService) ProcessDocument(ctx context.Context, req *v1.ProcessDocumentRequest) (*v1.ProcessDocumentResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for process", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}
	if _, err := s.docsRepo.GetByID(ctx, documentID); err != nil {
		s.logger.Error("document not found for process", "document_id", documentID, "error", err)
		return nil, common.NotFoundError("document not found")
	}

	jobID, err := s.processor.ProcessDocument(ctx, documentID)
	resp := &v1.ProcessDocumentResponse{}
	if jobID != uuid.Nil {
		resp.JobId = jobID.String()
	}
	if err != nil {
		s.logger.Error("pipeline.failed", "document_id", documentID, "err", err)
		resp.Status = string(constants.JobStatusFailed)
		resp.Error = err.Error()
		return resp, nil
	}
	resp.Status = string(constants.JobStatusParseOK)
	return resp, nil
}

func (s *ExtractionService) GetDocumentFields(ctx context.Context, req *v1.GetDocumentFieldsRequest) (*v1.GetDocumentFieldsResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for get fields", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}

	rows, err := s.fieldsRepo.ListByDocument(ctx, documentID)
	if err != nil {
		s.logger.Error("failed to list document fields", "document_id", documentID, "error", err)
		return nil, common.InternalErrorf("list fields: %v", err)
	}

	resp := &v1.GetDocumentFieldsResponse{
		Fields: make([]*v1.DocumentFieldRow, 0, len(rows)),
	}
	for _, r := range rows {
		resp.Fields = append(resp.Fields, utils.ToPBFieldRow(r))
	}
	if job, err := s.jobsRepo.LatestForDocument(ctx, documentID); err == nil && job != nil {
		if job.ExtractionConfidence != nil {
			resp.Confidence = *job.ExtractionConfidence
		}
		resp.NeedsReview = job.NeedsReview
	}
	return resp, nil
}

func (s *ExtractionService) ExportDocumentFields(ctx context.Context, req *v1.ExportDocumentFieldsRequest) (*v1.ExportDocumentFieldsResponse, error) {
	documentID, err := parseDocumentID(req.GetDocumentId())
	if err != nil {
		s.logger.Error("invalid document_id for export", "document_id", req.GetDocumentId(), "error", err)
		return nil, err
	}

	xlsx, err := s.exporter.ExportFieldsXLSX(ctx, documentID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "document_id", documentID, "err", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &v1.ExportDocumentFieldsResponse{
		Xlsx:     xlsx,
		Filename: documentID.String() + "_fields.xlsx",
	}, nil
}

func parseDocumentID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	validator := common.NewValidator()
	validator.Field("document_id", raw, common.Required, common.UUID)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("document_id must be a UUID")
	}
	return id, nil
}
