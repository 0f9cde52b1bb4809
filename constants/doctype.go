package constants

import "strings"

// DocumentType is the canonical category assigned to a processed document.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	Aadhaar        DocumentType = "AADHAAR"
	PAN            DocumentType = "PAN"
	VoterID        DocumentType = "VOTER_ID"
	DrivingLicence DocumentType = "DRIVING_LICENCE"
	BusinessCard   DocumentType = "BUSINESS_CARD"
	GreetingCard   DocumentType = "GREETING_CARD"
	EducationalID  DocumentType = "EDUCATIONAL_ID"

	// GenericDocument is the residual category for documents that match
	// no stronger signal.
	GenericDocument DocumentType = "GENERIC_DOCUMENT"
)

var allDocumentTypes = []DocumentType{
	Aadhaar,
	PAN,
	VoterID,
	DrivingLicence,
	BusinessCard,
	GreetingCard,
	EducationalID,
	GenericDocument,
}

// DocumentTypeStrings returns the enumeration as plain strings, e.g. for
// schema constraints.
func DocumentTypeStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// ParseDocumentType canonicalizes input to a known DocumentType.
// Unknown input maps to GenericDocument with ok=false.
func ParseDocumentType(input string) (DocumentType, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}
	return GenericDocument, false
}
