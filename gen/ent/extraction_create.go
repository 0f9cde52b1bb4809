// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nikhilbhat/docuscan/gen/ent/extraction"
)

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
}

// SetFilename sets the "filename" field.
func (_c *ExtractionCreate) SetFilename(v string) *ExtractionCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *ExtractionCreate) SetDocumentType(v string) *ExtractionCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExtractionCreate) SetName(v string) *ExtractionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableName(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ExtractionCreate) SetEmail(v string) *ExtractionCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableEmail(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ExtractionCreate) SetPhone(v string) *ExtractionCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillablePhone(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetAadhaar sets the "aadhaar" field.
func (_c *ExtractionCreate) SetAadhaar(v string) *ExtractionCreate {
	_c.mutation.SetAadhaar(v)
	return _c
}

// SetNillableAadhaar sets the "aadhaar" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableAadhaar(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetAadhaar(*v)
	}
	return _c
}

// SetPan sets the "pan" field.
func (_c *ExtractionCreate) SetPan(v string) *ExtractionCreate {
	_c.mutation.SetPan(v)
	return _c
}

// SetNillablePan sets the "pan" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillablePan(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetPan(*v)
	}
	return _c
}

// SetDob sets the "dob" field.
func (_c *ExtractionCreate) SetDob(v time.Time) *ExtractionCreate {
	_c.mutation.SetDob(v)
	return _c
}

// SetNillableDob sets the "dob" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableDob(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetDob(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ExtractionCreate) SetAddress(v string) *ExtractionCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableAddress(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ExtractionCreate) SetState(v string) *ExtractionCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableState(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ExtractionCreate) SetCountry(v string) *ExtractionCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCountry(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *ExtractionCreate) SetRawText(v string) *ExtractionCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *ExtractionCreate) SetConfidenceScore(v float32) *ExtractionCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Extraction.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocumentType(); !ok {
		return &ValidationError{Name: "document_type", err: errors.New(`ent: missing required field "Extraction.document_type"`)}
	}
	if v, ok := _c.mutation.DocumentType(); ok {
		if err := extraction.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.document_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := extraction.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Extraction.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := extraction.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Extraction.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := extraction.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Extraction.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Aadhaar(); ok {
		if err := extraction.AadhaarValidator(v); err != nil {
			return &ValidationError{Name: "aadhaar", err: fmt.Errorf(`ent: validator failed for field "Extraction.aadhaar": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Pan(); ok {
		if err := extraction.PanValidator(v); err != nil {
			return &ValidationError{Name: "pan", err: fmt.Errorf(`ent: validator failed for field "Extraction.pan": %w`, err)}
		}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := extraction.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Extraction.state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Country(); ok {
		if err := extraction.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Extraction.country": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Extraction.raw_text"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Extraction.confidence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(extraction.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extraction.FieldName, field.TypeString, value)
		_node.Name = &value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(extraction.FieldEmail, field.TypeString, value)
		_node.Email = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(extraction.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.Aadhaar(); ok {
		_spec.SetField(extraction.FieldAadhaar, field.TypeString, value)
		_node.Aadhaar = &value
	}
	if value, ok := _c.mutation.Pan(); ok {
		_spec.SetField(extraction.FieldPan, field.TypeString, value)
		_node.Pan = &value
	}
	if value, ok := _c.mutation.Dob(); ok {
		_spec.SetField(extraction.FieldDob, field.TypeTime, value)
		_node.Dob = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(extraction.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(extraction.FieldState, field.TypeString, value)
		_node.State = &value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(extraction.FieldCountry, field.TypeString, value)
		_node.Country = &value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(extraction.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(extraction.FieldConfidenceScore, field.TypeFloat32, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
