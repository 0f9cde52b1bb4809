package extract

import "regexp"

// Compiled once at init; all rules match over the raw text or its
// line-split form.
var (
	// 4-4-4 digit groups with optional space or hyphen separators.
	reAadhaar = regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`)

	// 5 letters + 4 digits + 1 letter, uppercase only.
	rePAN = regexp.MustCompile(`\b[A-Z]{5}[0-9]{4}[A-Z]\b`)

	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// 10-digit Indian mobile, optionally prefixed with +91. Only the bare
	// number is captured.
	rePhone = regexp.MustCompile(`(?:\+91[-\s]?)?\b([6-9]\d{9})\b`)

	// Date shapes tried in order: DD/MM/YYYY or DD-MM-YYYY,
	// YYYY-MM-DD or YYYY/MM/DD, DD.MM.YYYY.
	reDates = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{2}[/-]\d{2}[/-]\d{4}\b`),
		regexp.MustCompile(`\b\d{4}[/-]\d{2}[/-]\d{2}\b`),
		regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4}\b`),
	}
)
