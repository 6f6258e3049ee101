// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/docuvault/field-extractor/gen/ent/document"
	"github.com/docuvault/field-extractor/gen/ent/documentfield"
	"github.com/google/uuid"
)

// DocumentField is the model entity for the DocumentField schema.
type DocumentField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *uuid.UUID `json:"job_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Value holds the value of the "value" field.
	Value string `json:"value,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentFieldQuery when eager-loading is set.
	Edges        DocumentFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentFieldEdges holds the relations/edges for other nodes in the graph.
type DocumentFieldEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentFieldEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentfield.FieldJobID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case documentfield.FieldName, documentfield.FieldValue, documentfield.FieldSource:
			values[i] = new(sql.NullString)
		case documentfield.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case documentfield.FieldID, documentfield.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentField fields.
func (_m *DocumentField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case documentfield.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case documentfield.FieldJobID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(uuid.UUID)
				*_m.JobID = *value.S.(*uuid.UUID)
			}
		case documentfield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case documentfield.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case documentfield.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case documentfield.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the DocumentField.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentField) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentField entity.
func (_m *DocumentField) QueryDocument() *DocumentQuery {
	return NewDocumentFieldClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentField.
// Note that you need to call DocumentField.Unwrap() before calling this method if this DocumentField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentField) Update() *DocumentFieldUpdateOne {
	return NewDocumentFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentField) Unwrap() *DocumentField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentField) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentFields is a parsable slice of DocumentField.
type DocumentFields []*DocumentField
