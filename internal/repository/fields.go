package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuvault/field-extractor/gen/ent"
	entfield "github.com/docuvault/field-extractor/gen/ent/documentfield"
	"github.com/docuvault/field-extractor/internal/entity"
	"github.com/docuvault/field-extractor/internal/utils"
)

// StoredField is one extracted name/value pair ready for persistence.
type StoredField struct {
	Name   string
	Value  string
	Source string
}

type DocumentFieldRepository interface {
	// ReplaceForDocument swaps the full field set for a document atomically.
	// Re-running a job never leaves stale fields from an earlier run behind.
	ReplaceForDocument(ctx context.Context, documentID, jobID uuid.UUID, fields []StoredField) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.DocumentField, error)
}

type documentFieldRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentFieldRepository(entc *ent.Client, log *slog.Logger) DocumentFieldRepository {
	return &documentFieldRepo{ent: entc, log: log}
}

func (r *documentFieldRepo) ReplaceForDocument(ctx context.Context, documentID, jobID uuid.UUID, fields []StoredField) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.DocumentField.Delete().
		Where(entfield.DocumentID(documentID)).
		Exec(ctx); err != nil {
		r.log.Error("failed to clear document fields", "document_id", documentID, "err", err)
		return err
	}

	builders := make([]*ent.DocumentFieldCreate, 0, len(fields))
	for _, f := range fields {
		builders = append(builders, tx.DocumentField.Create().
			SetDocumentID(documentID).
			SetJobID(jobID).
			SetName(f.Name).
			SetValue(f.Value).
			SetSource(f.Source))
	}
	if _, err = tx.DocumentField.CreateBulk(builders...).Save(ctx); err != nil {
		r.log.Error("failed to save document fields", "document_id", documentID, "count", len(fields), "err", err)
		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	r.log.Info("document fields replaced", "document_id", documentID, "job_id", jobID, "count", len(fields))
	return nil
}

func (r *documentFieldRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.DocumentField, error) {
	rows, err := r.ent.DocumentField.Query().
		Where(entfield.DocumentID(documentID)).
		Order(ent.Asc(entfield.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.DocumentField, 0, len(rows))
	for _, row := range rows {
		out = append(out, utils.ToDocumentField(row))
	}
	return out, nil
}
