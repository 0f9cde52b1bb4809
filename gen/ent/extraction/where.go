// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/nikhilbhat/docuscan/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilename, v))
}

// DocumentType applies equality check predicate on the "document_type" field. It's identical to DocumentTypeEQ.
func DocumentType(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDocumentType, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPhone, v))
}

// Aadhaar applies equality check predicate on the "aadhaar" field. It's identical to AadhaarEQ.
func Aadhaar(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldAadhaar, v))
}

// Pan applies equality check predicate on the "pan" field. It's identical to PanEQ.
func Pan(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPan, v))
}

// Dob applies equality check predicate on the "dob" field. It's identical to DobEQ.
func Dob(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDob, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldAddress, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldState, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCountry, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldRawText, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldFilename, v))
}

// DocumentTypeEQ applies the EQ predicate on the "document_type" field.
func DocumentTypeEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDocumentType, v))
}

// DocumentTypeNEQ applies the NEQ predicate on the "document_type" field.
func DocumentTypeNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldDocumentType, v))
}

// DocumentTypeIn applies the In predicate on the "document_type" field.
func DocumentTypeIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldDocumentType, vs...))
}

// DocumentTypeNotIn applies the NotIn predicate on the "document_type" field.
func DocumentTypeNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldDocumentType, vs...))
}

// DocumentTypeGT applies the GT predicate on the "document_type" field.
func DocumentTypeGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldDocumentType, v))
}

// DocumentTypeGTE applies the GTE predicate on the "document_type" field.
func DocumentTypeGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldDocumentType, v))
}

// DocumentTypeLT applies the LT predicate on the "document_type" field.
func DocumentTypeLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldDocumentType, v))
}

// DocumentTypeLTE applies the LTE predicate on the "document_type" field.
func DocumentTypeLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldDocumentType, v))
}

// DocumentTypeContains applies the Contains predicate on the "document_type" field.
func DocumentTypeContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldDocumentType, v))
}

// DocumentTypeHasPrefix applies the HasPrefix predicate on the "document_type" field.
func DocumentTypeHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldDocumentType, v))
}

// DocumentTypeHasSuffix applies the HasSuffix predicate on the "document_type" field.
func DocumentTypeHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldDocumentType, v))
}

// DocumentTypeEqualFold applies the EqualFold predicate on the "document_type" field.
func DocumentTypeEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldDocumentType, v))
}

// DocumentTypeContainsFold applies the ContainsFold predicate on the "document_type" field.
func DocumentTypeContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldDocumentType, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldPhone, v))
}

// AadhaarEQ applies the EQ predicate on the "aadhaar" field.
func AadhaarEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldAadhaar, v))
}

// AadhaarNEQ applies the NEQ predicate on the "aadhaar" field.
func AadhaarNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldAadhaar, v))
}

// AadhaarIn applies the In predicate on the "aadhaar" field.
func AadhaarIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldAadhaar, vs...))
}

// AadhaarNotIn applies the NotIn predicate on the "aadhaar" field.
func AadhaarNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldAadhaar, vs...))
}

// AadhaarGT applies the GT predicate on the "aadhaar" field.
func AadhaarGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldAadhaar, v))
}

// AadhaarGTE applies the GTE predicate on the "aadhaar" field.
func AadhaarGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldAadhaar, v))
}

// AadhaarLT applies the LT predicate on the "aadhaar" field.
func AadhaarLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldAadhaar, v))
}

// AadhaarLTE applies the LTE predicate on the "aadhaar" field.
func AadhaarLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldAadhaar, v))
}

// AadhaarContains applies the Contains predicate on the "aadhaar" field.
func AadhaarContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldAadhaar, v))
}

// AadhaarHasPrefix applies the HasPrefix predicate on the "aadhaar" field.
func AadhaarHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldAadhaar, v))
}

// AadhaarHasSuffix applies the HasSuffix predicate on the "aadhaar" field.
func AadhaarHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldAadhaar, v))
}

// AadhaarIsNil applies the IsNil predicate on the "aadhaar" field.
func AadhaarIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldAadhaar))
}

// AadhaarNotNil applies the NotNil predicate on the "aadhaar" field.
func AadhaarNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldAadhaar))
}

// AadhaarEqualFold applies the EqualFold predicate on the "aadhaar" field.
func AadhaarEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldAadhaar, v))
}

// AadhaarContainsFold applies the ContainsFold predicate on the "aadhaar" field.
func AadhaarContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldAadhaar, v))
}

// PanEQ applies the EQ predicate on the "pan" field.
func PanEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldPan, v))
}

// PanNEQ applies the NEQ predicate on the "pan" field.
func PanNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldPan, v))
}

// PanIn applies the In predicate on the "pan" field.
func PanIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldPan, vs...))
}

// PanNotIn applies the NotIn predicate on the "pan" field.
func PanNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldPan, vs...))
}

// PanGT applies the GT predicate on the "pan" field.
func PanGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldPan, v))
}

// PanGTE applies the GTE predicate on the "pan" field.
func PanGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldPan, v))
}

// PanLT applies the LT predicate on the "pan" field.
func PanLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldPan, v))
}

// PanLTE applies the LTE predicate on the "pan" field.
func PanLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldPan, v))
}

// PanContains applies the Contains predicate on the "pan" field.
func PanContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldPan, v))
}

// PanHasPrefix applies the HasPrefix predicate on the "pan" field.
func PanHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldPan, v))
}

// PanHasSuffix applies the HasSuffix predicate on the "pan" field.
func PanHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldPan, v))
}

// PanIsNil applies the IsNil predicate on the "pan" field.
func PanIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldPan))
}

// PanNotNil applies the NotNil predicate on the "pan" field.
func PanNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldPan))
}

// PanEqualFold applies the EqualFold predicate on the "pan" field.
func PanEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldPan, v))
}

// PanContainsFold applies the ContainsFold predicate on the "pan" field.
func PanContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldPan, v))
}

// DobEQ applies the EQ predicate on the "dob" field.
func DobEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldDob, v))
}

// DobNEQ applies the NEQ predicate on the "dob" field.
func DobNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldDob, v))
}

// DobIn applies the In predicate on the "dob" field.
func DobIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldDob, vs...))
}

// DobNotIn applies the NotIn predicate on the "dob" field.
func DobNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldDob, vs...))
}

// DobGT applies the GT predicate on the "dob" field.
func DobGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldDob, v))
}

// DobGTE applies the GTE predicate on the "dob" field.
func DobGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldDob, v))
}

// DobLT applies the LT predicate on the "dob" field.
func DobLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldDob, v))
}

// DobLTE applies the LTE predicate on the "dob" field.
func DobLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldDob, v))
}

// DobIsNil applies the IsNil predicate on the "dob" field.
func DobIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldDob))
}

// DobNotNil applies the NotNil predicate on the "dob" field.
func DobNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldDob))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldAddress, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldState, v))
}

// StateIsNil applies the IsNil predicate on the "state" field.
func StateIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldState))
}

// StateNotNil applies the NotNil predicate on the "state" field.
func StateNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldState))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldState, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryIsNil applies the IsNil predicate on the "country" field.
func CountryIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldCountry))
}

// CountryNotNil applies the NotNil predicate on the "country" field.
func CountryNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldCountry))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldCountry, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldRawText, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float32) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldConfidenceScore, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.NotPredicates(p))
}
