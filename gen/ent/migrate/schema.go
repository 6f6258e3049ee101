// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// DocumentFieldsColumns holds the columns for the "document_fields" table.
	DocumentFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "source", Type: field.TypeString},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// DocumentFieldsTable holds the schema information for the "document_fields" table.
	DocumentFieldsTable = &schema.Table{
		Name:       "document_fields",
		Columns:    DocumentFieldsColumns,
		PrimaryKey: []*schema.Column{DocumentFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_fields_documents_fields",
				Columns:    []*schema.Column{DocumentFieldsColumns[6]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentfield_document_id_name",
				Unique:  true,
				Columns: []*schema.Column{DocumentFieldsColumns[6], DocumentFieldsColumns[2]},
			},
			{
				Name:    "documentfield_job_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentFieldsColumns[1]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "ocr_output", Type: field.TypeJSON, Nullable: true},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "model_params", Type: field.TypeJSON, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_documents_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentFieldsTable,
		ExtractJobTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentFieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentFieldsTable.Annotation = &entsql.Annotation{
		Table: "document_fields",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
}
