package llm

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// MaxVisionImageMB caps the image payload handed to the vision model.
const MaxVisionImageMB = 20

// ReadPageImage loads an image file and resolves its MIME type for the model
// request. Oversized files are rejected up front rather than letting the API
// reject them after upload.
func ReadPageImage(path string) (PageImage, error) {
	st, err := os.Stat(path)
	if err != nil {
		return PageImage{}, err
	}
	if st.Size() > int64(MaxVisionImageMB)*1024*1024 {
		return PageImage{}, fmt.Errorf("image %q exceeds %dMB vision limit", filepath.Base(path), MaxVisionImageMB)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return PageImage{}, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	mt := mime.TypeByExtension("." + ext)
	if mt == "" {
		switch ext {
		case "jpg", "jpeg":
			mt = "image/jpeg"
		case "png":
			mt = "image/png"
		default:
			mt = "application/octet-stream"
		}
	}
	return PageImage{MIMEType: mt, Data: data}, nil
}
