// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nikhilbhat/docuscan/db/ent/schema"
	"github.com/nikhilbhat/docuscan/gen/ent/extraction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractionFields := schema.Extraction{}.Fields()
	_ = extractionFields
	// extractionDescFilename is the schema descriptor for filename field.
	extractionDescFilename := extractionFields[0].Descriptor()
	// extraction.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	extraction.FilenameValidator = func() func(string) error {
		validators := extractionDescFilename.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(filename string) error {
			for _, fn := range fns {
				if err := fn(filename); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescDocumentType is the schema descriptor for document_type field.
	extractionDescDocumentType := extractionFields[1].Descriptor()
	// extraction.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	extraction.DocumentTypeValidator = func() func(string) error {
		validators := extractionDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractionDescName is the schema descriptor for name field.
	extractionDescName := extractionFields[2].Descriptor()
	// extraction.NameValidator is a validator for the "name" field. It is called by the builders before save.
	extraction.NameValidator = extractionDescName.Validators[0].(func(string) error)
	// extractionDescEmail is the schema descriptor for email field.
	extractionDescEmail := extractionFields[3].Descriptor()
	// extraction.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	extraction.EmailValidator = extractionDescEmail.Validators[0].(func(string) error)
	// extractionDescPhone is the schema descriptor for phone field.
	extractionDescPhone := extractionFields[4].Descriptor()
	// extraction.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	extraction.PhoneValidator = extractionDescPhone.Validators[0].(func(string) error)
	// extractionDescAadhaar is the schema descriptor for aadhaar field.
	extractionDescAadhaar := extractionFields[5].Descriptor()
	// extraction.AadhaarValidator is a validator for the "aadhaar" field. It is called by the builders before save.
	extraction.AadhaarValidator = extractionDescAadhaar.Validators[0].(func(string) error)
	// extractionDescPan is the schema descriptor for pan field.
	extractionDescPan := extractionFields[6].Descriptor()
	// extraction.PanValidator is a validator for the "pan" field. It is called by the builders before save.
	extraction.PanValidator = extractionDescPan.Validators[0].(func(string) error)
	// extractionDescState is the schema descriptor for state field.
	extractionDescState := extractionFields[9].Descriptor()
	// extraction.StateValidator is a validator for the "state" field. It is called by the builders before save.
	extraction.StateValidator = extractionDescState.Validators[0].(func(string) error)
	// extractionDescCountry is the schema descriptor for country field.
	extractionDescCountry := extractionFields[10].Descriptor()
	// extraction.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	extraction.CountryValidator = extractionDescCountry.Validators[0].(func(string) error)
	// extractionDescCreatedAt is the schema descriptor for created_at field.
	extractionDescCreatedAt := extractionFields[13].Descriptor()
	// extraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraction.DefaultCreatedAt = extractionDescCreatedAt.Default.(func() time.Time)
}
