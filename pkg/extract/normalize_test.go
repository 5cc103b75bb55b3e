package extract

import (
	"testing"
	"time"
)

func TestExtractNumeric(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantOK  bool
	}{
		{name: "plain currency", value: "$1,000,000", want: 1000000, wantOK: true},
		{name: "no currency symbol", value: "2,500,000", want: 2500000, wantOK: true},
		{name: "split limit takes first amount", value: "$1,000,000 / $2,000,000", want: 1000000, wantOK: true},
		{name: "digits without commas", value: "$500000", want: 500000, wantOK: true},
		{name: "surrounding text", value: "limit of $750,000 per occurrence", want: 750000, wantOK: true},
		{name: "empty string", value: "", wantOK: false},
		{name: "no digits", value: "not applicable", wantOK: false},
		{name: "bare comma run", value: "$,,", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractNumeric(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ExtractNumeric(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ExtractNumeric(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   time.Time
		wantOK bool
	}{
		{name: "slash four digit year", text: "01/15/2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "slash unpadded", text: "1/5/2026", want: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "dash separator", text: "01-15-2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "two digit year", text: "01/15/26", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "full month name", text: "January 15, 2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "abbreviated month name", text: "Jan 15, 2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "day first full month", text: "15 January 2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "day first abbreviated", text: "15 Jan 2026", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "surrounding whitespace", text: "  01/15/2026  ", want: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "empty", text: "", wantOK: false},
		{name: "garbage", text: "next Tuesday", wantOK: false},
		{name: "impossible date", text: "13/45/2026", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
