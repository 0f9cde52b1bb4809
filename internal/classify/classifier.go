// Package classify assigns a document-type category from extracted fields
// and raw OCR text.
package classify

import (
	"strings"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/extract"
)

// Classify picks exactly one DocumentType. It is an ordered if-else chain:
// the first matching rule wins, so the order encodes priority rather than
// independent scoring. Structured ID numbers (aadhaar, pan) are
// near-unambiguous and checked first; free-text keyword signals are weaker
// and only consulted once numeric evidence is absent. The business-card
// rule sits below the ID rules because a card can carry digit strings that
// merely resemble ID numbers.
func Classify(fields extract.Fields, text string) constants.DocumentType {
	t := strings.ToLower(text)

	switch {
	case fields.Aadhaar != "":
		return constants.Aadhaar
	case fields.PAN != "":
		return constants.PAN
	case strings.Contains(t, "voter"):
		return constants.VoterID
	case strings.Contains(t, "driving") || strings.Contains(t, "dl no"):
		return constants.DrivingLicence
	case fields.Email != "" && fields.Phone != "":
		return constants.BusinessCard
	case strings.Contains(t, "happy birthday") || strings.Contains(t, "congratulations"):
		return constants.GreetingCard
	case strings.Contains(t, "school") || strings.Contains(t, "college"):
		return constants.EducationalID
	default:
		return constants.GenericDocument
	}
}
