package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ExtractJob represents an extraction job for data transfer between layers.
type ExtractJob struct {
	ID                   uuid.UUID       `json:"id"`
	DocumentID           uuid.UUID       `json:"document_id"`
	Format               string          `json:"format"`
	StartedAt            time.Time       `json:"started_at"`
	FinishedAt           *time.Time      `json:"finished_at,omitempty"`
	Status               *string         `json:"status,omitempty"`
	ErrorMessage         *string         `json:"error_message,omitempty"`
	ExtractionConfidence *float32        `json:"extraction_confidence,omitempty"`
	NeedsReview          bool            `json:"needs_review"`
	PageCount            int             `json:"page_count"`
	OCROutput            json.RawMessage `json:"ocr_output,omitempty"`
	ExtractedFields      json.RawMessage `json:"extracted_fields,omitempty"`
	ModelName            *string         `json:"model_name,omitempty"`
	ModelParams          json.RawMessage `json:"model_params,omitempty"`
}
