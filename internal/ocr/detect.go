package ocr

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DetectMIMEType sniffs a file's content type from its leading bytes, falling
// back to the extension when sniffing is inconclusive.
func DetectMIMEType(path string) string {
	if mt := sniffMIMEType(path); mt != "" {
		return mt
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "unknown"
	}
}

func sniffMIMEType(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if n == 0 || (err != nil && n <= 0) {
		return ""
	}

	mt := http.DetectContentType(buf[:n])
	// DetectContentType answers text/plain or octet-stream for anything it
	// cannot place; treat those as inconclusive so the extension decides.
	if strings.HasPrefix(mt, "text/plain") || mt == "application/octet-stream" {
		return ""
	}
	return mt
}
