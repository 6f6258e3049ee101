package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuvault/field-extractor/gen/ent"
)

type memDocs struct {
	byHash map[string]*ent.Document
}

func newMemDocs() *memDocs { return &memDocs{byHash: map[string]*ent.Document{}} }

func (m *memDocs) GetByID(_ context.Context, _ uuid.UUID) (*ent.Document, error) { return nil, nil }
func (m *memDocs) GetByHash(_ context.Context, hash []byte) (*ent.Document, error) {
	if d, ok := m.byHash[hex.EncodeToString(hash)]; ok {
		return d, nil
	}
	return nil, os.ErrNotExist
}
func (m *memDocs) Create(_ context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, error) {
	d := &ent.Document{
		ID:          uuid.New(),
		SourcePath:  sourcePath,
		Filename:    filename,
		FileExt:     ext,
		FileSize:    size,
		ContentHash: hash,
		UploadedAt:  uploadedAt,
	}
	m.byHash[hex.EncodeToString(hash)] = d
	return d, nil
}
func (m *memDocs) UpsertByHash(ctx context.Context, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*ent.Document, bool, error) {
	if d, err := m.GetByHash(ctx, hash); err == nil {
		return d, true, nil
	}
	d, err := m.Create(ctx, sourcePath, filename, ext, size, hash, uploadedAt)
	return d, false, err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestFSIngestor_IngestPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "form.pdf", "%PDF-1.4 fake")

	ing := NewFSIngestor(newMemDocs(), nil)
	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)

	assert.False(t, res.Deduplicated)
	assert.Equal(t, "pdf", res.FileExt)
	sum := sha256.Sum256([]byte("%PDF-1.4 fake"))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.NotEmpty(t, res.DocumentID)
}

func TestFSIngestor_DeduplicatesByContent(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", "same bytes")
	b := writeFile(t, dir, "b.pdf", "same bytes")

	ing := NewFSIngestor(newMemDocs(), nil)
	first, err := ing.IngestPath(context.Background(), a)
	require.NoError(t, err)
	second, err := ing.IngestPath(context.Background(), b)
	require.NoError(t, err)

	assert.False(t, first.Deduplicated)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
}

func TestFSIngestor_RejectsUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "plain text")

	ing := NewFSIngestor(newMemDocs(), nil)
	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
}

func TestFSIngestor_IngestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", "one")
	writeFile(t, dir, "two.jpg", "two")
	writeFile(t, dir, "skip.txt", "nope")
	writeFile(t, dir, ".hidden.pdf", "hidden")

	ing := NewFSIngestor(newMemDocs(), nil)
	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
	assert.Len(t, results, 2)
}

func TestFSIngestor_IngestDirectoryRequiresRoot(t *testing.T) {
	ing := NewFSIngestor(newMemDocs(), nil)
	_, _, err := ing.IngestDirectory(context.Background(), "  ", false)
	require.Error(t, err)
}
