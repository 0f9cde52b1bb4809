package classify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikhilbhat/docuscan/constants"
	"github.com/nikhilbhat/docuscan/internal/extract"
)

func TestClassifyAadhaarBeatsPAN(t *testing.T) {
	// Numeric ID evidence resolves to aadhaar first even when both are set.
	fields := extract.Fields{Aadhaar: "123456789012", PAN: "ABCDE1234F"}
	require.Equal(t, constants.Aadhaar, Classify(fields, "some text"))
}

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name   string
		fields extract.Fields
		text   string
		want   constants.DocumentType
	}{
		{"aadhaar", extract.Fields{Aadhaar: "123456789012"}, "", constants.Aadhaar},
		{"pan", extract.Fields{PAN: "ABCDE1234F"}, "", constants.PAN},
		{"voter id", extract.Fields{}, "ELECTION COMMISSION Voter ID Card", constants.VoterID},
		{"driving keyword", extract.Fields{}, "DRIVING LICENCE", constants.DrivingLicence},
		{"dl no keyword", extract.Fields{}, "DL No: KA01 20200012345", constants.DrivingLicence},
		{"business card", extract.Fields{Email: "a@b.com", Phone: "9876543210"}, "Acme Corp", constants.BusinessCard},
		{"email alone is not a card", extract.Fields{Email: "a@b.com"}, "Acme Corp", constants.GenericDocument},
		{"greeting birthday", extract.Fields{}, "Happy Birthday dear friend", constants.GreetingCard},
		{"greeting congratulations", extract.Fields{}, "CONGRATULATIONS on your wedding", constants.GreetingCard},
		{"educational school", extract.Fields{}, "Springfield Public School ID", constants.EducationalID},
		{"educational college", extract.Fields{}, "St. Xavier's College", constants.EducationalID},
		{"fallback", extract.Fields{}, "nothing recognizable here", constants.GenericDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Classify(tt.fields, tt.text))
		})
	}
}

func TestClassifyIDEvidenceBeatsKeywords(t *testing.T) {
	// A PAN number on a document mentioning "college" is still a PAN card.
	fields := extract.Fields{PAN: "ABCDE1234F"}
	require.Equal(t, constants.PAN, Classify(fields, "issued by the college office"))
}
