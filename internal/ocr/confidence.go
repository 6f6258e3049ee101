package ocr

import "strings"

// contentConfidence estimates extraction confidence from the size of the
// recovered JSON payload. Coarse by construction: a near-empty payload means
// the model saw little or nothing it could structure.
func contentConfidence(payload string) float32 {
	trimmed := strings.TrimSpace(payload)
	switch {
	case len(trimmed) < 10:
		return 0.50
	case len(trimmed) < 100:
		return 0.75
	default:
		return 0.90
	}
}
