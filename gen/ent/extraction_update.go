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
	"github.com/nikhilbhat/docuscan/gen/ent/extraction"
	"github.com/nikhilbhat/docuscan/gen/ent/predicate"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdate) SetFilename(v string) *ExtractionUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFilename(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionUpdate) SetDocumentType(v string) *ExtractionUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDocumentType(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractionUpdate) SetName(v string) *ExtractionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableName(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExtractionUpdate) ClearName() *ExtractionUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExtractionUpdate) SetEmail(v string) *ExtractionUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableEmail(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExtractionUpdate) ClearEmail() *ExtractionUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ExtractionUpdate) SetPhone(v string) *ExtractionUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillablePhone(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ExtractionUpdate) ClearPhone() *ExtractionUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetAadhaar sets the "aadhaar" field.
func (_u *ExtractionUpdate) SetAadhaar(v string) *ExtractionUpdate {
	_u.mutation.SetAadhaar(v)
	return _u
}

// SetNillableAadhaar sets the "aadhaar" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableAadhaar(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetAadhaar(*v)
	}
	return _u
}

// ClearAadhaar clears the value of the "aadhaar" field.
func (_u *ExtractionUpdate) ClearAadhaar() *ExtractionUpdate {
	_u.mutation.ClearAadhaar()
	return _u
}

// SetPan sets the "pan" field.
func (_u *ExtractionUpdate) SetPan(v string) *ExtractionUpdate {
	_u.mutation.SetPan(v)
	return _u
}

// SetNillablePan sets the "pan" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillablePan(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetPan(*v)
	}
	return _u
}

// ClearPan clears the value of the "pan" field.
func (_u *ExtractionUpdate) ClearPan() *ExtractionUpdate {
	_u.mutation.ClearPan()
	return _u
}

// SetDob sets the "dob" field.
func (_u *ExtractionUpdate) SetDob(v time.Time) *ExtractionUpdate {
	_u.mutation.SetDob(v)
	return _u
}

// SetNillableDob sets the "dob" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableDob(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetDob(*v)
	}
	return _u
}

// ClearDob clears the value of the "dob" field.
func (_u *ExtractionUpdate) ClearDob() *ExtractionUpdate {
	_u.mutation.ClearDob()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ExtractionUpdate) SetAddress(v string) *ExtractionUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableAddress(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ExtractionUpdate) ClearAddress() *ExtractionUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetState sets the "state" field.
func (_u *ExtractionUpdate) SetState(v string) *ExtractionUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableState(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ExtractionUpdate) ClearState() *ExtractionUpdate {
	_u.mutation.ClearState()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ExtractionUpdate) SetCountry(v string) *ExtractionUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableCountry(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ExtractionUpdate) ClearCountry() *ExtractionUpdate {
	_u.mutation.ClearCountry()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractionUpdate) SetRawText(v string) *ExtractionUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableRawText(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionUpdate) SetConfidenceScore(v float32) *ExtractionUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableConfidenceScore(v *float32) *ExtractionUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionUpdate) AddConfidenceScore(v float32) *ExtractionUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extraction.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := extraction.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Extraction.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := extraction.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Extraction.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := extraction.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Extraction.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Aadhaar(); ok {
		if err := extraction.AadhaarValidator(v); err != nil {
			return &ValidationError{Name: "aadhaar", err: fmt.Errorf(`ent: validator failed for field "Extraction.aadhaar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pan(); ok {
		if err := extraction.PanValidator(v); err != nil {
			return &ValidationError{Name: "pan", err: fmt.Errorf(`ent: validator failed for field "Extraction.pan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := extraction.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Extraction.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := extraction.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Extraction.country": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extraction.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extraction.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(extraction.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(extraction.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(extraction.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(extraction.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(extraction.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Aadhaar(); ok {
		_spec.SetField(extraction.FieldAadhaar, field.TypeString, value)
	}
	if _u.mutation.AadhaarCleared() {
		_spec.ClearField(extraction.FieldAadhaar, field.TypeString)
	}
	if value, ok := _u.mutation.Pan(); ok {
		_spec.SetField(extraction.FieldPan, field.TypeString, value)
	}
	if _u.mutation.PanCleared() {
		_spec.ClearField(extraction.FieldPan, field.TypeString)
	}
	if value, ok := _u.mutation.Dob(); ok {
		_spec.SetField(extraction.FieldDob, field.TypeTime, value)
	}
	if _u.mutation.DobCleared() {
		_spec.ClearField(extraction.FieldDob, field.TypeTime)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(extraction.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(extraction.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(extraction.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(extraction.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(extraction.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(extraction.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extraction.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extraction.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extraction.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetFilename sets the "filename" field.
func (_u *ExtractionUpdateOne) SetFilename(v string) *ExtractionUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFilename(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *ExtractionUpdateOne) SetDocumentType(v string) *ExtractionUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDocumentType(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractionUpdateOne) SetName(v string) *ExtractionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableName(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *ExtractionUpdateOne) ClearName() *ExtractionUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ExtractionUpdateOne) SetEmail(v string) *ExtractionUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableEmail(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ExtractionUpdateOne) ClearEmail() *ExtractionUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ExtractionUpdateOne) SetPhone(v string) *ExtractionUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillablePhone(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ExtractionUpdateOne) ClearPhone() *ExtractionUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetAadhaar sets the "aadhaar" field.
func (_u *ExtractionUpdateOne) SetAadhaar(v string) *ExtractionUpdateOne {
	_u.mutation.SetAadhaar(v)
	return _u
}

// SetNillableAadhaar sets the "aadhaar" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableAadhaar(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetAadhaar(*v)
	}
	return _u
}

// ClearAadhaar clears the value of the "aadhaar" field.
func (_u *ExtractionUpdateOne) ClearAadhaar() *ExtractionUpdateOne {
	_u.mutation.ClearAadhaar()
	return _u
}

// SetPan sets the "pan" field.
func (_u *ExtractionUpdateOne) SetPan(v string) *ExtractionUpdateOne {
	_u.mutation.SetPan(v)
	return _u
}

// SetNillablePan sets the "pan" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillablePan(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetPan(*v)
	}
	return _u
}

// ClearPan clears the value of the "pan" field.
func (_u *ExtractionUpdateOne) ClearPan() *ExtractionUpdateOne {
	_u.mutation.ClearPan()
	return _u
}

// SetDob sets the "dob" field.
func (_u *ExtractionUpdateOne) SetDob(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetDob(v)
	return _u
}

// SetNillableDob sets the "dob" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableDob(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetDob(*v)
	}
	return _u
}

// ClearDob clears the value of the "dob" field.
func (_u *ExtractionUpdateOne) ClearDob() *ExtractionUpdateOne {
	_u.mutation.ClearDob()
	return _u
}

// SetAddress sets the "address" field.
func (_u *ExtractionUpdateOne) SetAddress(v string) *ExtractionUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableAddress(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ExtractionUpdateOne) ClearAddress() *ExtractionUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetState sets the "state" field.
func (_u *ExtractionUpdateOne) SetState(v string) *ExtractionUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableState(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// ClearState clears the value of the "state" field.
func (_u *ExtractionUpdateOne) ClearState() *ExtractionUpdateOne {
	_u.mutation.ClearState()
	return _u
}

// SetCountry sets the "country" field.
func (_u *ExtractionUpdateOne) SetCountry(v string) *ExtractionUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableCountry(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// ClearCountry clears the value of the "country" field.
func (_u *ExtractionUpdateOne) ClearCountry() *ExtractionUpdateOne {
	_u.mutation.ClearCountry()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *ExtractionUpdateOne) SetRawText(v string) *ExtractionUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableRawText(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *ExtractionUpdateOne) SetConfidenceScore(v float32) *ExtractionUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableConfidenceScore(v *float32) *ExtractionUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *ExtractionUpdateOne) AddConfidenceScore(v float32) *ExtractionUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := extraction.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Extraction.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DocumentType(); ok {
		if err := extraction.DocumentTypeValidator(v); err != nil {
			return &ValidationError{Name: "document_type", err: fmt.Errorf(`ent: validator failed for field "Extraction.document_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := extraction.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Extraction.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := extraction.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Extraction.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := extraction.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "Extraction.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Aadhaar(); ok {
		if err := extraction.AadhaarValidator(v); err != nil {
			return &ValidationError{Name: "aadhaar", err: fmt.Errorf(`ent: validator failed for field "Extraction.aadhaar": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pan(); ok {
		if err := extraction.PanValidator(v); err != nil {
			return &ValidationError{Name: "pan", err: fmt.Errorf(`ent: validator failed for field "Extraction.pan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := extraction.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Extraction.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Country(); ok {
		if err := extraction.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "Extraction.country": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(extraction.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(extraction.FieldDocumentType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extraction.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(extraction.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(extraction.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(extraction.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(extraction.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(extraction.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Aadhaar(); ok {
		_spec.SetField(extraction.FieldAadhaar, field.TypeString, value)
	}
	if _u.mutation.AadhaarCleared() {
		_spec.ClearField(extraction.FieldAadhaar, field.TypeString)
	}
	if value, ok := _u.mutation.Pan(); ok {
		_spec.SetField(extraction.FieldPan, field.TypeString, value)
	}
	if _u.mutation.PanCleared() {
		_spec.ClearField(extraction.FieldPan, field.TypeString)
	}
	if value, ok := _u.mutation.Dob(); ok {
		_spec.SetField(extraction.FieldDob, field.TypeTime, value)
	}
	if _u.mutation.DobCleared() {
		_spec.ClearField(extraction.FieldDob, field.TypeTime)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(extraction.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(extraction.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(extraction.FieldState, field.TypeString, value)
	}
	if _u.mutation.StateCleared() {
		_spec.ClearField(extraction.FieldState, field.TypeString)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(extraction.FieldCountry, field.TypeString, value)
	}
	if _u.mutation.CountryCleared() {
		_spec.ClearField(extraction.FieldCountry, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(extraction.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(extraction.FieldConfidenceScore, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(extraction.FieldConfidenceScore, field.TypeFloat32, value)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
