package render

import (
	"strings"
	"testing"
	"time"

	"xbrl_fundamentals/pkg/core/stitch"
	"xbrl_fundamentals/pkg/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func sampleStatement() *stitch.Statement {
	p2023 := models.Instant(day("2023-12-31"))
	p2024 := models.Instant(day("2024-12-31"))
	return &stitch.Statement{
		Role:    models.RoleBalanceSheet,
		CIK:     "0000320193",
		Company: "Test Corp",
		Periods: []models.Period{p2024, p2023},
		Rows: []*stitch.Row{
			{Tag: "us-gaap:AssetsAbstract", Label: "Assets", Abstract: true},
			{
				Tag: "us-gaap:CashAndCashEquivalentsAtCarryingValue", Concept: "CashAndEquivalents",
				Label: "Cash and cash equivalents", Depth: 1,
				Cells: map[string]*stitch.Cell{
					p2024.Key(): {Value: 29943000000, Numeric: true, Unit: "USD"},
					// 2023 intentionally absent.
				},
			},
			{
				Tag: "us-gaap:Assets", Concept: "TotalAssets", Label: "Total assets", Total: true,
				Cells: map[string]*stitch.Cell{
					p2024.Key(): {Value: 364980000000, Numeric: true, Unit: "USD"},
					p2023.Key(): {Value: -352583000000, Numeric: true, Unit: "USD"},
				},
			},
		},
	}
}

func TestMarkdownTable(t *testing.T) {
	md := Markdown(sampleStatement())

	checks := []string{
		"## Test Corp",
		"| Line item |",
		"2024-12-31",
		"2023-12-31",
		"**Assets**",
		"29,943,000,000",
		"(352,583,000,000)", // negatives parenthesized
		"—",                 // absent cell, distinct from zero
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("rendered markdown missing %q\n%s", want, md)
		}
	}
	if strings.Contains(md, " 0 |") {
		t.Error("absent cell rendered as zero")
	}
	if !Validate(md) {
		t.Error("output does not parse as markdown")
	}
}

func TestMarkdownFallsBackToCIK(t *testing.T) {
	st := sampleStatement()
	st.Company = ""
	if md := Markdown(st); !strings.Contains(md, "0000320193") {
		t.Error("title missing CIK fallback")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234567, "(1,234,567)"},
		{12.5, "12.50"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
