package utils

import (
	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/gen/ent"
	"github.com/nikhilbhat/docuscan/internal/entity"
	"github.com/nikhilbhat/docuscan/internal/extract"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToExtraction converts an ent row into the transfer entity. Nillable
// columns map back to the empty-string "unset" convention of
// extract.Fields.
func ToExtraction(e *ent.Extraction) *entity.Extraction {
	docType, _ := constants.ParseDocumentType(e.DocumentType)

	fields := extract.Fields{
		Name:    strOrEmpty(e.Name),
		Email:   strOrEmpty(e.Email),
		Phone:   strOrEmpty(e.Phone),
		Aadhaar: strOrEmpty(e.Aadhaar),
		PAN:     strOrEmpty(e.Pan),
		Address: strOrEmpty(e.Address),
		State:   strOrEmpty(e.State),
		Country: strOrEmpty(e.Country),
	}
	if e.Dob != nil {
		fields.DOB = e.Dob.Format("2006-01-02")
	}

	return &entity.Extraction{
		ID:              e.ID,
		Filename:        e.Filename,
		DocumentType:    docType,
		Fields:          fields,
		RawText:         e.RawText,
		ConfidenceScore: e.ConfidenceScore,
		CreatedAt:       e.CreatedAt,
	}
}
