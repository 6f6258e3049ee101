package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// renderPDFPages rasterizes a PDF into per-page PNGs under a temp dir.
// Returns the page image paths in page order plus a cleanup func.
func (e *Extractor) renderPDFPages(ctx context.Context, path string) ([]string, func(), []string, error) {
	tmpDir, err := os.MkdirTemp("", "fx-pp-*")
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 200 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, cleanup, []string{string(errb)}, err
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, cleanup, []string{"pdftoppm produced no images"}, fmt.Errorf("no pages rendered")
	}
	return matches, cleanup, nil, nil
}
