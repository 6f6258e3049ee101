// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docuvault/field-extractor/gen/ent/document"
	"github.com/docuvault/field-extractor/gen/ent/documentfield"
	"github.com/google/uuid"
)

// DocumentFieldCreate is the builder for creating a DocumentField entity.
type DocumentFieldCreate struct {
	config
	mutation *DocumentFieldMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentFieldCreate) SetDocumentID(v uuid.UUID) *DocumentFieldCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *DocumentFieldCreate) SetJobID(v uuid.UUID) *DocumentFieldCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *DocumentFieldCreate) SetNillableJobID(v *uuid.UUID) *DocumentFieldCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DocumentFieldCreate) SetName(v string) *DocumentFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *DocumentFieldCreate) SetValue(v string) *DocumentFieldCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *DocumentFieldCreate) SetSource(v string) *DocumentFieldCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *DocumentFieldCreate) SetExtractedAt(v time.Time) *DocumentFieldCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *DocumentFieldCreate) SetNillableExtractedAt(v *time.Time) *DocumentFieldCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentFieldCreate) SetID(v uuid.UUID) *DocumentFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentFieldCreate) SetNillableID(v *uuid.UUID) *DocumentFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentFieldCreate) SetDocument(v *Document) *DocumentFieldCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentFieldMutation object of the builder.
func (_c *DocumentFieldCreate) Mutation() *DocumentFieldMutation {
	return _c.mutation
}

// Save creates the DocumentField in the database.
func (_c *DocumentFieldCreate) Save(ctx context.Context) (*DocumentField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentFieldCreate) SaveX(ctx context.Context) *DocumentField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentFieldCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := documentfield.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := documentfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentFieldCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentField.document_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "DocumentField.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := documentfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "DocumentField.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "DocumentField.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := documentfield.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "DocumentField.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "DocumentField.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := documentfield.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "DocumentField.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "DocumentField.extracted_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentField.document"`)}
	}
	return nil
}

func (_c *DocumentFieldCreate) sqlSave(ctx context.Context) (*DocumentField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentFieldCreate) createSpec() (*DocumentField, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentfield.Table, sqlgraph.NewFieldSpec(documentfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(documentfield.FieldJobID, field.TypeUUID, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(documentfield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(documentfield.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(documentfield.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(documentfield.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentFieldCreateBulk is the builder for creating many DocumentField entities in bulk.
type DocumentFieldCreateBulk struct {
	config
	err      error
	builders []*DocumentFieldCreate
}

// Save creates the DocumentField entities in the database.
func (_c *DocumentFieldCreateBulk) Save(ctx context.Context) ([]*DocumentField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentFieldCreateBulk) SaveX(ctx context.Context) []*DocumentField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
