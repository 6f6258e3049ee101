package server

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	v1 "github.com/docuvault/field-extractor/gen/proto/docs/v1"
	"github.com/docuvault/field-extractor/internal/common"
	"github.com/docuvault/field-extractor/internal/ingest"
)

// IngestDocument implements v1.ExtractionServiceServer
func (s *ExtractionService) IngestDocument(ctx context.Context, req *v1.IngestDocumentRequest) (*v1.IngestResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	validator := common.NewValidator()
	validator.Field("path", path, common.Required, common.SupportedDocumentPath)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("ingest request rejected", "path", path, "error", err)
		return nil, err
	}

	s.logger.Info("starting document ingest", "path", path)
	r, err := s.ingestor.IngestPath(ctx, path)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("ingest: %v", err)
	}
	s.logger.Info("document ingest succeeded", "document_id", r.DocumentID, "deduplicated", r.Deduplicated)

	resp := ingestResponse(r)

	if !req.GetSkipProcessing() {
		docUUID, _ := uuid.Parse(r.DocumentID)
		s.logger.Info("starting document processing", "document_id", r.DocumentID)
		if _, err := s.processor.ProcessDocument(ctx, docUUID); err != nil {
			s.logger.Error("pipeline.failed", "document_id", r.DocumentID, "err", err)
			resp.Error = err.Error()
		}
	}
	return resp, nil
}

func (s *ExtractionService) IngestDirectory(ctx context.Context, req *v1.IngestDirectoryRequest) (*v1.IngestDirectoryResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())
	validator := common.NewValidator()
	validator.Field("root_path", root, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		s.logger.Error("ingest directory request rejected", "error", err)
		return nil, err
	}
	skipHidden := req.GetSkipHidden()

	s.logger.Info("starting directory ingest", "root", root, "skip_hidden", skipHidden)
	results, stats, err := s.ingestor.IngestDirectory(ctx, root, skipHidden)
	if err != nil {
		// file errors are already logged in the ingest layer
		return nil, common.InvalidArgumentErrorf("ingest directory: %v", err)
	}
	s.logger.Info("directory ingest completed",
		"scanned", stats.Scanned, "matched", stats.Matched, "succeeded", stats.Succeeded,
		"deduplicated", stats.Deduplicated, "failed", stats.Failed)

	out := &v1.IngestDirectoryResponse{
		Scanned:      stats.Scanned,
		Matched:      stats.Matched,
		Succeeded:    stats.Succeeded,
		Deduplicated: stats.Deduplicated,
		Failed:       stats.Failed,
		Results:      make([]*v1.IngestResponse, 0, len(results)),
	}

	for _, r := range results {
		item := ingestResponse(r)

		if !req.GetSkipProcessing() && r.Err == "" && r.DocumentID != "" {
			if docUUID, err := uuid.Parse(r.DocumentID); err == nil {
				if _, pErr := s.processor.ProcessDocument(ctx, docUUID); pErr != nil {
					s.logger.Error("pipeline.failed", "document_id", r.DocumentID, "err", pErr)
					item.Error = pErr.Error()
				}
			}
		}

		out.Results = append(out.Results, item)
	}
	return out, nil
}

func ingestResponse(r ingest.IngestionResult) *v1.IngestResponse {
	return &v1.IngestResponse{
		DocumentId:     r.DocumentID,
		Deduplicated:   r.Deduplicated,
		ContentHashHex: r.HashHex,
		FileExt:        r.FileExt,
		UploadedAt:     r.UploadedAt.UTC().Format(time.RFC3339),
		SourcePath:     r.SourcePath,
		Error:          r.Err,
	}
}
