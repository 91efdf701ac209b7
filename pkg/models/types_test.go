package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want string
	}{
		{"instant", Instant(day("2024-12-31")), "I|2024-12-31"},
		{"duration", Duration(day("2024-01-01"), day("2024-12-31")), "D|2024-01-01|2024-12-31"},
	}
	for _, tt := range tests {
		if got := tt.p.Key(); got != tt.want {
			t.Errorf("%s: Key() = %q, want %q", tt.name, got, tt.want)
		}
	}

	// Same (start, end) pair means the same column regardless of how the
	// period was constructed.
	a := Duration(day("2024-01-01"), day("2024-12-31"))
	b := Period{Start: day("2024-01-01"), End: day("2024-12-31")}
	if a.Key() != b.Key() {
		t.Error("equal periods produced different keys")
	}
}

func TestPeriodAnnual(t *testing.T) {
	tests := []struct {
		name string
		p    Period
		want bool
	}{
		{"full fiscal year", Duration(day("2024-01-01"), day("2024-12-31")), true},
		{"52-week retail year", Duration(day("2023-10-01"), day("2024-09-28")), true},
		{"quarter", Duration(day("2024-07-01"), day("2024-09-30")), false},
		{"nine months", Duration(day("2024-01-01"), day("2024-09-30")), false},
		{"instant snapshot", Instant(day("2024-12-31")), true},
	}
	for _, tt := range tests {
		if got := tt.p.Annual(); got != tt.want {
			t.Errorf("%s: Annual() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFactDimensional(t *testing.T) {
	face := Fact{Tag: "us-gaap:Revenues"}
	if face.Dimensional() {
		t.Error("face fact reported dimensional")
	}
	seg := Fact{
		Tag:        "us-gaap:Revenues",
		Dimensions: []Dimension{{Axis: "srt:ProductOrServiceAxis", Member: "us-gaap:ProductMember"}},
	}
	if !seg.Dimensional() {
		t.Error("segment fact not reported dimensional")
	}
}
