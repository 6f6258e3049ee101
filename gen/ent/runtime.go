// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docuvault/field-extractor/db/ent/schema"
	"github.com/docuvault/field-extractor/gen/ent/document"
	"github.com/docuvault/field-extractor/gen/ent/documentfield"
	"github.com/docuvault/field-extractor/gen/ent/extractjob"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSourcePath is the schema descriptor for source_path field.
	documentDescSourcePath := documentFields[1].Descriptor()
	// document.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	document.SourcePathValidator = documentDescSourcePath.Validators[0].(func(string) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[2].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[4].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[5].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	documentfieldFields := schema.DocumentField{}.Fields()
	_ = documentfieldFields
	// documentfieldDescName is the schema descriptor for name field.
	documentfieldDescName := documentfieldFields[3].Descriptor()
	// documentfield.NameValidator is a validator for the "name" field. It is called by the builders before save.
	documentfield.NameValidator = documentfieldDescName.Validators[0].(func(string) error)
	// documentfieldDescValue is the schema descriptor for value field.
	documentfieldDescValue := documentfieldFields[4].Descriptor()
	// documentfield.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	documentfield.ValueValidator = documentfieldDescValue.Validators[0].(func(string) error)
	// documentfieldDescSource is the schema descriptor for source field.
	documentfieldDescSource := documentfieldFields[5].Descriptor()
	// documentfield.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	documentfield.SourceValidator = documentfieldDescSource.Validators[0].(func(string) error)
	// documentfieldDescExtractedAt is the schema descriptor for extracted_at field.
	documentfieldDescExtractedAt := documentfieldFields[6].Descriptor()
	// documentfield.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	documentfield.DefaultExtractedAt = documentfieldDescExtractedAt.Default.(func() time.Time)
	// documentfieldDescID is the schema descriptor for id field.
	documentfieldDescID := documentfieldFields[0].Descriptor()
	// documentfield.DefaultID holds the default value on creation for the id field.
	documentfield.DefaultID = documentfieldDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[2].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[3].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[8].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescPageCount is the schema descriptor for page_count field.
	extractjobDescPageCount := extractjobFields[9].Descriptor()
	// extractjob.DefaultPageCount holds the default value on creation for the page_count field.
	extractjob.DefaultPageCount = extractjobDescPageCount.Default.(int)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
}
