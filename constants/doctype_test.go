package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDocumentType(t *testing.T) {
	dt, ok := ParseDocumentType("aadhaar")
	require.True(t, ok)
	require.Equal(t, Aadhaar, dt)

	dt, ok = ParseDocumentType(" DRIVING_LICENCE ")
	require.True(t, ok)
	require.Equal(t, DrivingLicence, dt)

	dt, ok = ParseDocumentType("something else")
	require.False(t, ok)
	require.Equal(t, GenericDocument, dt)
}

func TestDocumentTypeStringsCoversEnum(t *testing.T) {
	values := DocumentTypeStrings()
	require.Len(t, values, 8)
	require.Contains(t, values, "GENERIC_DOCUMENT")
}
