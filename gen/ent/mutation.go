// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/nikhilbhat/docuscan/gen/ent/extraction"
	"github.com/nikhilbhat/docuscan/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtraction = "Extraction"
)

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	filename            *string
	document_type       *string
	name                *string
	email               *string
	phone               *string
	aadhaar             *string
	pan                 *string
	dob                 *time.Time
	address             *string
	state               *string
	country             *string
	raw_text            *string
	confidence_score    *float32
	addconfidence_score *float32
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Extraction, error)
	predicates          []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id int) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFilename sets the "filename" field.
func (m *ExtractionMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ExtractionMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ExtractionMutation) ResetFilename() {
	m.filename = nil
}

// SetDocumentType sets the "document_type" field.
func (m *ExtractionMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *ExtractionMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *ExtractionMutation) ResetDocumentType() {
	m.document_type = nil
}

// SetName sets the "name" field.
func (m *ExtractionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *ExtractionMutation) ClearName() {
	m.name = nil
	m.clearedFields[extraction.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *ExtractionMutation) NameCleared() bool {
	_, ok := m.clearedFields[extraction.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *ExtractionMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, extraction.FieldName)
}

// SetEmail sets the "email" field.
func (m *ExtractionMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ExtractionMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldEmail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *ExtractionMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[extraction.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *ExtractionMutation) EmailCleared() bool {
	_, ok := m.clearedFields[extraction.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *ExtractionMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, extraction.FieldEmail)
}

// SetPhone sets the "phone" field.
func (m *ExtractionMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *ExtractionMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPhone(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *ExtractionMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[extraction.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *ExtractionMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[extraction.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *ExtractionMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, extraction.FieldPhone)
}

// SetAadhaar sets the "aadhaar" field.
func (m *ExtractionMutation) SetAadhaar(s string) {
	m.aadhaar = &s
}

// Aadhaar returns the value of the "aadhaar" field in the mutation.
func (m *ExtractionMutation) Aadhaar() (r string, exists bool) {
	v := m.aadhaar
	if v == nil {
		return
	}
	return *v, true
}

// OldAadhaar returns the old "aadhaar" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldAadhaar(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAadhaar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAadhaar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAadhaar: %w", err)
	}
	return oldValue.Aadhaar, nil
}

// ClearAadhaar clears the value of the "aadhaar" field.
func (m *ExtractionMutation) ClearAadhaar() {
	m.aadhaar = nil
	m.clearedFields[extraction.FieldAadhaar] = struct{}{}
}

// AadhaarCleared returns if the "aadhaar" field was cleared in this mutation.
func (m *ExtractionMutation) AadhaarCleared() bool {
	_, ok := m.clearedFields[extraction.FieldAadhaar]
	return ok
}

// ResetAadhaar resets all changes to the "aadhaar" field.
func (m *ExtractionMutation) ResetAadhaar() {
	m.aadhaar = nil
	delete(m.clearedFields, extraction.FieldAadhaar)
}

// SetPan sets the "pan" field.
func (m *ExtractionMutation) SetPan(s string) {
	m.pan = &s
}

// Pan returns the value of the "pan" field in the mutation.
func (m *ExtractionMutation) Pan() (r string, exists bool) {
	v := m.pan
	if v == nil {
		return
	}
	return *v, true
}

// OldPan returns the old "pan" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldPan(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPan: %w", err)
	}
	return oldValue.Pan, nil
}

// ClearPan clears the value of the "pan" field.
func (m *ExtractionMutation) ClearPan() {
	m.pan = nil
	m.clearedFields[extraction.FieldPan] = struct{}{}
}

// PanCleared returns if the "pan" field was cleared in this mutation.
func (m *ExtractionMutation) PanCleared() bool {
	_, ok := m.clearedFields[extraction.FieldPan]
	return ok
}

// ResetPan resets all changes to the "pan" field.
func (m *ExtractionMutation) ResetPan() {
	m.pan = nil
	delete(m.clearedFields, extraction.FieldPan)
}

// SetDob sets the "dob" field.
func (m *ExtractionMutation) SetDob(t time.Time) {
	m.dob = &t
}

// Dob returns the value of the "dob" field in the mutation.
func (m *ExtractionMutation) Dob() (r time.Time, exists bool) {
	v := m.dob
	if v == nil {
		return
	}
	return *v, true
}

// OldDob returns the old "dob" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldDob(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDob: %w", err)
	}
	return oldValue.Dob, nil
}

// ClearDob clears the value of the "dob" field.
func (m *ExtractionMutation) ClearDob() {
	m.dob = nil
	m.clearedFields[extraction.FieldDob] = struct{}{}
}

// DobCleared returns if the "dob" field was cleared in this mutation.
func (m *ExtractionMutation) DobCleared() bool {
	_, ok := m.clearedFields[extraction.FieldDob]
	return ok
}

// ResetDob resets all changes to the "dob" field.
func (m *ExtractionMutation) ResetDob() {
	m.dob = nil
	delete(m.clearedFields, extraction.FieldDob)
}

// SetAddress sets the "address" field.
func (m *ExtractionMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *ExtractionMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *ExtractionMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[extraction.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *ExtractionMutation) AddressCleared() bool {
	_, ok := m.clearedFields[extraction.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *ExtractionMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, extraction.FieldAddress)
}

// SetState sets the "state" field.
func (m *ExtractionMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ExtractionMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldState(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ClearState clears the value of the "state" field.
func (m *ExtractionMutation) ClearState() {
	m.state = nil
	m.clearedFields[extraction.FieldState] = struct{}{}
}

// StateCleared returns if the "state" field was cleared in this mutation.
func (m *ExtractionMutation) StateCleared() bool {
	_, ok := m.clearedFields[extraction.FieldState]
	return ok
}

// ResetState resets all changes to the "state" field.
func (m *ExtractionMutation) ResetState() {
	m.state = nil
	delete(m.clearedFields, extraction.FieldState)
}

// SetCountry sets the "country" field.
func (m *ExtractionMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *ExtractionMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *ExtractionMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[extraction.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *ExtractionMutation) CountryCleared() bool {
	_, ok := m.clearedFields[extraction.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *ExtractionMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, extraction.FieldCountry)
}

// SetRawText sets the "raw_text" field.
func (m *ExtractionMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractionMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractionMutation) ResetRawText() {
	m.raw_text = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *ExtractionMutation) SetConfidenceScore(f float32) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *ExtractionMutation) ConfidenceScore() (r float32, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldConfidenceScore(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *ExtractionMutation) AddConfidenceScore(f float32) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *ExtractionMutation) AddedConfidenceScore() (r float32, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *ExtractionMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.filename != nil {
		fields = append(fields, extraction.FieldFilename)
	}
	if m.document_type != nil {
		fields = append(fields, extraction.FieldDocumentType)
	}
	if m.name != nil {
		fields = append(fields, extraction.FieldName)
	}
	if m.email != nil {
		fields = append(fields, extraction.FieldEmail)
	}
	if m.phone != nil {
		fields = append(fields, extraction.FieldPhone)
	}
	if m.aadhaar != nil {
		fields = append(fields, extraction.FieldAadhaar)
	}
	if m.pan != nil {
		fields = append(fields, extraction.FieldPan)
	}
	if m.dob != nil {
		fields = append(fields, extraction.FieldDob)
	}
	if m.address != nil {
		fields = append(fields, extraction.FieldAddress)
	}
	if m.state != nil {
		fields = append(fields, extraction.FieldState)
	}
	if m.country != nil {
		fields = append(fields, extraction.FieldCountry)
	}
	if m.raw_text != nil {
		fields = append(fields, extraction.FieldRawText)
	}
	if m.confidence_score != nil {
		fields = append(fields, extraction.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, extraction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldFilename:
		return m.Filename()
	case extraction.FieldDocumentType:
		return m.DocumentType()
	case extraction.FieldName:
		return m.Name()
	case extraction.FieldEmail:
		return m.Email()
	case extraction.FieldPhone:
		return m.Phone()
	case extraction.FieldAadhaar:
		return m.Aadhaar()
	case extraction.FieldPan:
		return m.Pan()
	case extraction.FieldDob:
		return m.Dob()
	case extraction.FieldAddress:
		return m.Address()
	case extraction.FieldState:
		return m.State()
	case extraction.FieldCountry:
		return m.Country()
	case extraction.FieldRawText:
		return m.RawText()
	case extraction.FieldConfidenceScore:
		return m.ConfidenceScore()
	case extraction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldFilename:
		return m.OldFilename(ctx)
	case extraction.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case extraction.FieldName:
		return m.OldName(ctx)
	case extraction.FieldEmail:
		return m.OldEmail(ctx)
	case extraction.FieldPhone:
		return m.OldPhone(ctx)
	case extraction.FieldAadhaar:
		return m.OldAadhaar(ctx)
	case extraction.FieldPan:
		return m.OldPan(ctx)
	case extraction.FieldDob:
		return m.OldDob(ctx)
	case extraction.FieldAddress:
		return m.OldAddress(ctx)
	case extraction.FieldState:
		return m.OldState(ctx)
	case extraction.FieldCountry:
		return m.OldCountry(ctx)
	case extraction.FieldRawText:
		return m.OldRawText(ctx)
	case extraction.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case extraction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case extraction.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case extraction.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extraction.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case extraction.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case extraction.FieldAadhaar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAadhaar(v)
		return nil
	case extraction.FieldPan:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPan(v)
		return nil
	case extraction.FieldDob:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDob(v)
		return nil
	case extraction.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case extraction.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case extraction.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case extraction.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extraction.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case extraction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, extraction.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldConfidenceScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldName) {
		fields = append(fields, extraction.FieldName)
	}
	if m.FieldCleared(extraction.FieldEmail) {
		fields = append(fields, extraction.FieldEmail)
	}
	if m.FieldCleared(extraction.FieldPhone) {
		fields = append(fields, extraction.FieldPhone)
	}
	if m.FieldCleared(extraction.FieldAadhaar) {
		fields = append(fields, extraction.FieldAadhaar)
	}
	if m.FieldCleared(extraction.FieldPan) {
		fields = append(fields, extraction.FieldPan)
	}
	if m.FieldCleared(extraction.FieldDob) {
		fields = append(fields, extraction.FieldDob)
	}
	if m.FieldCleared(extraction.FieldAddress) {
		fields = append(fields, extraction.FieldAddress)
	}
	if m.FieldCleared(extraction.FieldState) {
		fields = append(fields, extraction.FieldState)
	}
	if m.FieldCleared(extraction.FieldCountry) {
		fields = append(fields, extraction.FieldCountry)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldName:
		m.ClearName()
		return nil
	case extraction.FieldEmail:
		m.ClearEmail()
		return nil
	case extraction.FieldPhone:
		m.ClearPhone()
		return nil
	case extraction.FieldAadhaar:
		m.ClearAadhaar()
		return nil
	case extraction.FieldPan:
		m.ClearPan()
		return nil
	case extraction.FieldDob:
		m.ClearDob()
		return nil
	case extraction.FieldAddress:
		m.ClearAddress()
		return nil
	case extraction.FieldState:
		m.ClearState()
		return nil
	case extraction.FieldCountry:
		m.ClearCountry()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldFilename:
		m.ResetFilename()
		return nil
	case extraction.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case extraction.FieldName:
		m.ResetName()
		return nil
	case extraction.FieldEmail:
		m.ResetEmail()
		return nil
	case extraction.FieldPhone:
		m.ResetPhone()
		return nil
	case extraction.FieldAadhaar:
		m.ResetAadhaar()
		return nil
	case extraction.FieldPan:
		m.ResetPan()
		return nil
	case extraction.FieldDob:
		m.ResetDob()
		return nil
	case extraction.FieldAddress:
		m.ResetAddress()
		return nil
	case extraction.FieldState:
		m.ResetState()
		return nil
	case extraction.FieldCountry:
		m.ResetCountry()
		return nil
	case extraction.FieldRawText:
		m.ResetRawText()
		return nil
	case extraction.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case extraction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Extraction edge %s", name)
}
