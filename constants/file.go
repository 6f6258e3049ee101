package constants

import "strings"

// Format tags the source type of a document on its extract_job.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field in ExtractJob.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the default allowed file extensions for document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// ImageConfidenceThreshold flags image OCR below this confidence for review.
const ImageConfidenceThreshold float32 = 0.70

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a job format, or "" when unsupported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png":
		return IMAGE
	default:
		return ""
	}
}
