// Package extract pulls a fixed set of semantic fields out of OCR text
// using pattern heuristics. Extraction is a pure function of the text:
// no rule ever fails the request, a non-match simply leaves the field
// unset.
package extract

import (
	"strings"
	"time"
	"unicode"
)

// Fields is the structured record extracted from one document. The empty
// string means "not found"; a set field always holds a non-empty,
// already-normalized value (aadhaar digits stripped of separators, name
// title-cased, dob in ISO form).
type Fields struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Aadhaar string `json:"aadhaar,omitempty"`
	PAN     string `json:"pan,omitempty"`
	DOB     string `json:"dob,omitempty"`
	Address string `json:"address,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// document is the preprocessed view of the input text shared by all rules.
type document struct {
	text  string
	lower string
	lines []string
}

// fieldRule binds a field family to its extraction function. The slice
// order below is the evaluation priority and is load-bearing: aadhaar must
// run before pan so overlapping numeric patterns resolve to aadhaar first,
// and state runs last because it may force country.
type fieldRule struct {
	name  string
	apply func(doc *document, f *Fields)
}

var fieldRules = []fieldRule{
	{"aadhaar", extractAadhaar},
	{"pan", extractPAN},
	{"dob", extractDOB},
	{"email", extractEmail},
	{"phone", extractPhone},
	{"name", extractName},
	{"address", extractAddress},
	{"state_country", extractStateCountry},
}

// Extract applies the rule table to text. Deterministic and side-effect
// free: the same text always yields the same Fields.
func Extract(text string) Fields {
	doc := &document{
		text:  text,
		lower: strings.ToLower(text),
		lines: splitLines(text),
	}
	var f Fields
	for _, rule := range fieldRules {
		rule.apply(doc, &f)
	}
	return f
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func extractAadhaar(doc *document, f *Fields) {
	m := reAadhaar.FindString(doc.text)
	if m == "" {
		return
	}
	f.Aadhaar = strings.NewReplacer(" ", "", "-", "").Replace(m)
}

func extractPAN(doc *document, f *Fields) {
	f.PAN = rePAN.FindString(doc.text)
}

var dobKeywords = []string{"dob", "date of birth", "d.o.b", "birth"}

func extractDOB(doc *document, f *Fields) {
	// Prefer a date on a line labeled with a DOB keyword.
	for _, line := range doc.lines {
		if !containsAny(strings.ToLower(line), dobKeywords) {
			continue
		}
		if dob, ok := firstDate(line); ok {
			f.DOB = dob
			return
		}
	}
	// Fall back to the first date-shaped match anywhere (PAN cards print
	// the date of birth without a label).
	if dob, ok := firstDate(doc.text); ok {
		f.DOB = dob
	}
}

func firstDate(s string) (string, bool) {
	for _, re := range reDates {
		if m := re.FindString(s); m != "" {
			if t, ok := normalizeDOB(m); ok {
				return t.Format("2006-01-02"), true
			}
		}
	}
	return "", false
}

var dobLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02", "2006/01/02", "02.01.2006"}

// normalizeDOB parses a date-shaped string by trying each supported layout
// in turn. An unparseable string reports ok=false; it never errors.
func normalizeDOB(s string) (time.Time, bool) {
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func extractEmail(doc *document, f *Fields) {
	f.Email = reEmail.FindString(doc.text)
}

func extractPhone(doc *document, f *Fields) {
	if m := rePhone.FindStringSubmatch(doc.text); m != nil {
		f.Phone = m[1]
	}
}

// nameBlocklist holds institutional terms that disqualify an uppercase line
// from being the holder's name. ID cards print boilerplate like
// "GOVERNMENT OF INDIA" in the same style as the name itself.
var nameBlocklist = []string{
	"GOVERNMENT", "INDIA", "DEPARTMENT", "AUTHORITY", "REPUBLIC",
	"UNIQUE", "IDENTIFICATION", "INCOME", "TAX",
}

func extractName(doc *document, f *Fields) {
	for _, line := range doc.lines {
		if !isUpperLine(line) {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 || len(tokens) > 3 {
			continue
		}
		if strings.ContainsFunc(line, unicode.IsDigit) {
			continue
		}
		if containsAny(line, nameBlocklist) {
			continue
		}
		f.Name = titleCase(line)
		return
	}
}

var addressKeywords = []string{"address", "resident", "s/o", "c/o", "w/o"}

// extractAddress takes the first line carrying an address marker plus the
// following two lines; printed addresses span multiple physical lines
// starting at a labeled or relational marker.
func extractAddress(doc *document, f *Fields) {
	for i, line := range doc.lines {
		if !containsAny(strings.ToLower(line), addressKeywords) {
			continue
		}
		end := i + 3
		if end > len(doc.lines) {
			end = len(doc.lines)
		}
		f.Address = strings.Join(doc.lines[i:end], " ")
		return
	}
}

var indianStates = []string{
	"delhi", "maharashtra", "karnataka", "tamil nadu",
	"uttar pradesh", "gujarat", "rajasthan",
}

func extractStateCountry(doc *document, f *Fields) {
	if strings.Contains(doc.lower, "india") {
		f.Country = "India"
	}
	for _, state := range indianStates {
		if strings.Contains(doc.lower, state) {
			f.State = titleCase(state)
			if f.Country == "" {
				f.Country = "India"
			}
			return
		}
	}
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// isUpperLine reports whether the line contains letters and none of them
// are lowercase.
func isUpperLine(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
