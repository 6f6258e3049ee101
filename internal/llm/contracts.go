package llm

import "context"

// PageImage is one rendered document page handed to the vision model.
type PageImage struct {
	MIMEType string
	Data     []byte
}

type ExtractRequest struct {
	Image      PageImage
	PageNumber int

	DocumentID string
	FileHint   string
}

// VisionExtractor is the interface the OCR stage depends on. The returned
// string is the model's raw text output, which downstream JSON recovery is
// expected to clean up.
type VisionExtractor interface {
	ExtractPage(ctx context.Context, req ExtractRequest) (string, error)
	Close() error
}
