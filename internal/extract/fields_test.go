package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractDeterministic(t *testing.T) {
	text := "GOVERNMENT OF INDIA\nRAHUL KUMAR\nDOB: 12/05/1998\n1234 5678 9012\nrahul@example.com"

	first := Extract(text)
	second := Extract(text)
	require.Equal(t, first, second)
}

func TestExtractAadhaarNormalization(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"spaces", "Aadhaar No 1234 5678 9012"},
		{"hyphens", "Aadhaar No 1234-5678-9012"},
		{"bare", "Aadhaar No 123456789012"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text)
			require.Equal(t, "123456789012", f.Aadhaar)
		})
	}
}

func TestExtractPAN(t *testing.T) {
	f := Extract("Permanent Account Number\nABCDE1234F")
	require.Equal(t, "ABCDE1234F", f.PAN)

	// lowercase must not match
	f = Extract("abcde1234f")
	require.Empty(t, f.PAN)
}

func TestExtractDOBLabeledLinePreferred(t *testing.T) {
	// An earlier unlabeled date must lose to the labeled one.
	text := "Issued 01/01/2020\nDOB: 12/05/1998"
	f := Extract(text)
	require.Equal(t, "1998-05-12", f.DOB)
}

func TestExtractDOBFallbackToFirstDate(t *testing.T) {
	f := Extract("ABCDE1234F\n12/05/1998")
	require.Equal(t, "1998-05-12", f.DOB)
}

func TestExtractDOBFormats(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"slash", "Date of Birth: 12/05/1998"},
		{"iso", "d.o.b 1998-05-12"},
		{"dotted", "birth 12.05.1998"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text)
			require.Equal(t, "1998-05-12", f.DOB)
		})
	}
}

func TestExtractDOBUnparseableStaysUnset(t *testing.T) {
	// Date-shaped but not a real calendar date.
	f := Extract("DOB: 99/99/9999")
	require.Empty(t, f.DOB)
}

func TestNormalizeDOBSameDateAcrossFormats(t *testing.T) {
	want := time.Date(1998, time.May, 12, 0, 0, 0, 0, time.UTC)
	for _, input := range []string{"12/05/1998", "1998-05-12", "12.05.1998", "12-05-1998", "1998/05/12"} {
		got, ok := normalizeDOB(input)
		require.True(t, ok, "input %q", input)
		require.Equal(t, want, got, "input %q", input)
	}

	_, ok := normalizeDOB("not a date")
	require.False(t, ok)
}

func TestExtractEmail(t *testing.T) {
	f := Extract("Contact: rohan.mehta+work@acme.co.in or backup@example.com")
	require.Equal(t, "rohan.mehta+work@acme.co.in", f.Email)
}

func TestExtractPhone(t *testing.T) {
	t.Run("bare", func(t *testing.T) {
		f := Extract("Mobile: 9876543210")
		require.Equal(t, "9876543210", f.Phone)
	})
	t.Run("with country code", func(t *testing.T) {
		f := Extract("Mobile: +91 9876543210")
		require.Equal(t, "9876543210", f.Phone)
	})
	t.Run("invalid leading digit", func(t *testing.T) {
		f := Extract("Mobile: 5876543210")
		require.Empty(t, f.Phone)
	})
}

func TestExtractName(t *testing.T) {
	f := Extract("GOVERNMENT OF INDIA\nRAHUL KUMAR\nDOB: 12/05/1998")
	require.Equal(t, "Rahul Kumar", f.Name)
}

func TestExtractNameRejectsInstitutionalLines(t *testing.T) {
	// Blocklisted boilerplate must never be picked even when no other
	// candidate exists.
	f := Extract("GOVERNMENT OF INDIA\nINCOME TAX DEPARTMENT")
	require.Empty(t, f.Name)
}

func TestExtractNameRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"lowercase line skipped", "Rahul Kumar\nsome text", ""},
		{"digits skipped", "RAHUL KUMAR 42", ""},
		{"single token skipped", "RAHUL", ""},
		{"four tokens skipped", "RAHUL KUMAR SINGH YADAV", ""},
		{"three tokens ok", "RAHUL KUMAR SINGH", "Rahul Kumar Singh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Extract(tt.text).Name)
		})
	}
}

func TestExtractAddress(t *testing.T) {
	text := "RAHUL KUMAR\nS/O Ramesh Kumar\n123 MG Road\nBengaluru 560001\nKarnataka"
	f := Extract(text)
	require.Equal(t, "S/O Ramesh Kumar 123 MG Road Bengaluru 560001", f.Address)
}

func TestExtractAddressNearEndOfText(t *testing.T) {
	// Marker on the last line: nothing to append, no panic.
	f := Extract("some text\nAddress: 42 Park Street")
	require.Equal(t, "Address: 42 Park Street", f.Address)
}

func TestExtractStateAndCountry(t *testing.T) {
	t.Run("state forces country", func(t *testing.T) {
		f := Extract("Resident of Tamil Nadu")
		require.Equal(t, "Tamil Nadu", f.State)
		require.Equal(t, "India", f.Country)
	})
	t.Run("country only", func(t *testing.T) {
		f := Extract("REPUBLIC OF INDIA")
		require.Empty(t, f.State)
		require.Equal(t, "India", f.Country)
	})
	t.Run("neither", func(t *testing.T) {
		f := Extract("plain note")
		require.Empty(t, f.State)
		require.Empty(t, f.Country)
	})
}

func TestExtractEmptyText(t *testing.T) {
	require.Equal(t, Fields{}, Extract(""))
	require.Equal(t, Fields{}, Extract("   \n  \n"))
}
