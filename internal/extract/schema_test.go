package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFieldsAcceptsExtractorOutput(t *testing.T) {
	text := "GOVERNMENT OF INDIA\nRAHUL KUMAR\nDOB: 12/05/1998\n1234 5678 9012\n" +
		"rahul@example.com\n+91 9876543210\nS/O Ramesh Kumar\n123 MG Road\nKarnataka"
	f := Extract(text)

	require.NoError(t, ValidateFields(f))
}

func TestValidateFieldsAcceptsEmpty(t *testing.T) {
	require.NoError(t, ValidateFields(Fields{}))
}

func TestValidateFieldsRejectsDenormalizedValues(t *testing.T) {
	tests := []struct {
		name   string
		fields Fields
	}{
		{"aadhaar with separators", Fields{Aadhaar: "1234 5678 9012"}},
		{"short aadhaar", Fields{Aadhaar: "1234"}},
		{"lowercase pan", Fields{PAN: "abcde1234f"}},
		{"non-iso dob", Fields{DOB: "12/05/1998"}},
		{"phone with prefix", Fields{Phone: "+919876543210"}},
		{"malformed email", Fields{Email: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, ValidateFields(tt.fields))
		})
	}
}
