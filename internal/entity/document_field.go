package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentField represents one extracted field for data transfer between layers.
type DocumentField struct {
	ID          uuid.UUID  `json:"id"`
	DocumentID  uuid.UUID  `json:"document_id"`
	JobID       *uuid.UUID `json:"job_id,omitempty"`
	Name        string     `json:"name"`
	Value       string     `json:"value"`
	Source      string     `json:"source"`
	ExtractedAt time.Time  `json:"extracted_at"`
}
