package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// numericRun matches the first contiguous run of digits and commas in a
// currency-like string, e.g. "1,000,000" in "$1,000,000 / $2,000,000".
var numericRun = regexp.MustCompile(`[\d,]+`)

// ExtractNumeric extracts an integer amount from a currency-like string
// such as "$1,000,000". It takes the first contiguous digit-and-comma
// run, strips the commas, and parses the result. The second return value
// is false when the string contains no parseable amount.
func ExtractNumeric(value string) (int64, bool) {
	if value == "" {
		return 0, false
	}
	run := numericRun.FindString(value)
	if run == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(run, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// dateLayouts is the fixed ordered list of accepted date formats:
// numeric month/day/year with "/" or "-" separators in four- and
// two-digit year variants, then long-form month-name variants.
var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate parses a date string against the fixed format list, returning
// the first format that succeeds. The second return value is false when
// the input is empty or no format matches.
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
