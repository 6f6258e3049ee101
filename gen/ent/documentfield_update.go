// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuvault/field-extractor/gen/ent/document"
	"github.com/docuvault/field-extractor/gen/ent/documentfield"
	"github.com/docuvault/field-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// DocumentFieldUpdate is the builder for updating DocumentField entities.
type DocumentFieldUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentFieldMutation
}

// Where appends a list predicates to the DocumentFieldUpdate builder.
func (_u *DocumentFieldUpdate) Where(ps ...predicate.DocumentField) *DocumentFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentFieldUpdate) SetDocumentID(v uuid.UUID) *DocumentFieldUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableDocumentID(v *uuid.UUID) *DocumentFieldUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *DocumentFieldUpdate) SetJobID(v uuid.UUID) *DocumentFieldUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableJobID(v *uuid.UUID) *DocumentFieldUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *DocumentFieldUpdate) ClearJobID() *DocumentFieldUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentFieldUpdate) SetName(v string) *DocumentFieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableName(v *string) *DocumentFieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DocumentFieldUpdate) SetValue(v string) *DocumentFieldUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableValue(v *string) *DocumentFieldUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DocumentFieldUpdate) SetSource(v string) *DocumentFieldUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableSource(v *string) *DocumentFieldUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *DocumentFieldUpdate) SetExtractedAt(v time.Time) *DocumentFieldUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *DocumentFieldUpdate) SetNillableExtractedAt(v *time.Time) *DocumentFieldUpdate {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentFieldUpdate) SetDocument(v *Document) *DocumentFieldUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentFieldMutation object of the builder.
func (_u *DocumentFieldUpdate) Mutation() *DocumentFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentFieldUpdate) ClearDocument() *DocumentFieldUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentFieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documentfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := documentfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DocumentField.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := documentfield.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentField.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentField.document"`)
	}
	return nil
}

func (_u *DocumentFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentfield.Table, documentfield.Columns, sqlgraph.NewFieldSpec(documentfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(documentfield.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(documentfield.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documentfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(documentfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documentfield.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(documentfield.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentfield.DocumentTable,
			Columns: []string{documentfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentfield.DocumentTable,
			Columns: []string{documentfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentFieldUpdateOne is the builder for updating a single DocumentField entity.
type DocumentFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentFieldMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentFieldUpdateOne) SetDocumentID(v uuid.UUID) *DocumentFieldUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableDocumentID(v *uuid.UUID) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *DocumentFieldUpdateOne) SetJobID(v uuid.UUID) *DocumentFieldUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableJobID(v *uuid.UUID) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *DocumentFieldUpdateOne) ClearJobID() *DocumentFieldUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetName sets the "name" field.
func (_u *DocumentFieldUpdateOne) SetName(v string) *DocumentFieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableName(v *string) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *DocumentFieldUpdateOne) SetValue(v string) *DocumentFieldUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableValue(v *string) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *DocumentFieldUpdateOne) SetSource(v string) *DocumentFieldUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableSource(v *string) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *DocumentFieldUpdateOne) SetExtractedAt(v time.Time) *DocumentFieldUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_u *DocumentFieldUpdateOne) SetNillableExtractedAt(v *time.Time) *DocumentFieldUpdateOne {
	if v != nil {
		_u.SetExtractedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentFieldUpdateOne) SetDocument(v *Document) *DocumentFieldUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentFieldMutation object of the builder.
func (_u *DocumentFieldUpdateOne) Mutation() *DocumentFieldMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentFieldUpdateOne) ClearDocument() *DocumentFieldUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentFieldUpdate builder.
func (_u *DocumentFieldUpdateOne) Where(ps ...predicate.DocumentField) *DocumentFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentFieldUpdateOne) Select(field string, fields ...string) *DocumentFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentField entity.
func (_u *DocumentFieldUpdateOne) Save(ctx context.Context) (*DocumentField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentFieldUpdateOne) SaveX(ctx context.Context) *DocumentField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := documentfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := documentfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DocumentField.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := documentfield.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentField.source": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentField.document"`)
	}
	return nil
}

func (_u *DocumentFieldUpdateOne) sqlSave(ctx context.Context) (_node *DocumentField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentfield.Table, documentfield.Columns, sqlgraph.NewFieldSpec(documentfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentfield.FieldID)
		for _, f := range fields {
			if !documentfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentfield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(documentfield.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(documentfield.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(documentfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(documentfield.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(documentfield.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(documentfield.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentfield.DocumentTable,
			Columns: []string{documentfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentfield.DocumentTable,
			Columns: []string{documentfield.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
