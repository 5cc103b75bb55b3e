package extract

import (
	"regexp"
	"strings"
)

// fieldPatterns is an ordered list of pattern rules for one logical
// field. Rules are tried in order; the first match wins. Each pattern
// must have exactly one significant capture group holding the field
// value.
type fieldPatterns []*regexp.Regexp

func compilePatterns(exprs ...string) fieldPatterns {
	patterns := make(fieldPatterns, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// first returns the trimmed first capture group of the first pattern
// that matches, or false when none do.
func (p fieldPatterns) first(text string) (string, bool) {
	for _, re := range p {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// all returns the trimmed first capture group of every match of every
// pattern, preserving order of appearance in the text.
func (p fieldPatterns) all(text string) []string {
	var values []string
	for _, re := range p {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			values = append(values, strings.TrimSpace(m[1]))
		}
	}
	return values
}

// dateToken matches a single date in numeric, month-name-first, or
// day-then-month-name form. Month-name groups are non-capturing so the
// enclosing capture group always holds the whole date.
const dateToken = `\d{1,2}[\/\-]\d{1,2}[\/\-]\d{2,4}` +
	`|\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{2,4}` +
	`|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{1,2},?\s+\d{2,4}`

// companySuffix restricts company captures to names ending in an
// insurance-type suffix, to avoid capturing arbitrary capitalized runs.
const companySuffix = `(?:insurance|ins|assurance|mutual|company)`

var (
	policyNumberPatterns = compilePatterns(
		`(?i)policy\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`,
		`(?i)pol\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`,
		`(?i)certificate\s*(?:no|number|#)?\s*:?\s*([A-Z0-9\-]+)`,
	)

	effectiveDatePatterns = compilePatterns(
		`(?i)effective\s*(?:date)?\s*:?\s*(`+dateToken+`)`,
		`(?i)policy\s*period\s*:?\s*(`+dateToken+`)`,
	)

	expirationDatePatterns = compilePatterns(
		`(?i)expir(?:ation|es?)\s*(?:date)?\s*:?\s*(`+dateToken+`)`,
		`(?i)expires?\s*:?\s*(`+dateToken+`)`,
	)

	insuranceCompanyPatterns = compilePatterns(
		`(?i)company\s*:?\s*([A-Z][A-Za-z\s&.,]+`+companySuffix+`)`,
		`(?i)insurer\s*:?\s*([A-Z][A-Za-z\s&.,]+`+companySuffix+`)`,
		`(?i)carrier\s*:?\s*([A-Z][A-Za-z\s&.,]+`+companySuffix+`)`,
	)

	insuredNamePatterns = compilePatterns(
		`(?i)insured\s*:?\s*([A-Z][A-Za-z\s&.,\-]+)`,
		`(?i)named\s*insured\s*:?\s*([A-Z][A-Za-z\s&.,\-]+)`,
	)

	certificateHolderPatterns = compilePatterns(
		`(?i)certificate\s*holder\s*:?\s*([A-Z][A-Za-z\s&.,\-]+)`,
		`(?i)holder\s*:?\s*([A-Z][A-Za-z\s&.,\-]+)`,
	)

	additionalInsuredPatterns = compilePatterns(
		`(?i)additional\s*insured\s*:?\s*([A-Z][A-Za-z\s&.,\-]+)`,
	)

	// The clause may span lines, so the dot matches newlines here.
	cancellationClausePatterns = compilePatterns(
		`(?is)cancellation.*?(\d+\s*days?\s*written\s*notice)`,
	)

	// Coverage categories are searched independently: the label keyword
	// lazily matches through to the nearest dollar amount, supporting a
	// "$X / $Y" split-limit notation. Categories not found are simply
	// absent from the result, not zero.
	coveragePatterns = []struct {
		name     string
		patterns fieldPatterns
	}{
		{"general_liability", compilePatterns(
			`(?is)general\s*liability.*?(\$[\d,]+(?:\s*\/\s*\$[\d,]+)*)`)},
		{"professional_liability", compilePatterns(
			`(?is)professional\s*liability.*?(\$[\d,]+(?:\s*\/\s*\$[\d,]+)*)`)},
		{"workers_compensation", compilePatterns(
			`(?is)workers?\s*comp(?:ensation)?.*?(\$[\d,]+(?:\s*\/\s*\$[\d,]+)*)`)},
	}
)
