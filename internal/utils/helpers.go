package utils

import (
	"time"

	"github.com/docuvault/field-extractor/gen/ent"
	docspb "github.com/docuvault/field-extractor/gen/proto/docs/v1"
	"github.com/docuvault/field-extractor/internal/entity"
)

// StrOrEmpty dereferences an optional string column.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          e.ID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		DocumentID:           e.DocumentID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		PageCount:            e.PageCount,
		OCROutput:            e.OcrOutput,
		ExtractedFields:      e.ExtractedFields,
		ModelName:            e.ModelName,
		ModelParams:          e.ModelParams,
	}
}

func ToDocumentField(e *ent.DocumentField) *entity.DocumentField {
	return &entity.DocumentField{
		ID:          e.ID,
		DocumentID:  e.DocumentID,
		JobID:       e.JobID,
		Name:        e.Name,
		Value:       e.Value,
		Source:      e.Source,
		ExtractedAt: e.ExtractedAt,
	}
}

func ToPBFieldRow(f *entity.DocumentField) *docspb.DocumentFieldRow {
	return &docspb.DocumentFieldRow{
		Name:        f.Name,
		Value:       f.Value,
		Source:      f.Source,
		ExtractedAt: f.ExtractedAt.UTC().Format(time.RFC3339),
	}
}
