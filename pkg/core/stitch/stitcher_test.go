package stitch

import (
	"testing"
	"time"

	"xbrl_fundamentals/pkg/core/concepts"
	"xbrl_fundamentals/pkg/core/facts"
	"xbrl_fundamentals/pkg/core/filing"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// annualFiling builds a one-statement 10-K instance: revenue under the
// given tag for the fiscal year ending end, filed on filed.
func annualFiling(t *testing.T, accession, tag, label string, start, end, filed string, value float64) *filing.Instance {
	t.Helper()
	period := models.Duration(day(start), day(end))
	input := filing.Input{
		Meta: models.FilingMetadata{
			CIK:             "0000789019",
			CompanyName:     "Stitch Corp",
			AccessionNumber: accession,
			Form:            "10-K",
			FilingDate:      day(filed),
			PeriodEnd:       day(end),
		},
		Facts: []models.Fact{
			{Tag: models.Tag(tag), Role: models.RoleIncomeStatement, Period: period, Value: value, Numeric: true, Unit: "USD"},
		},
		Presentation: map[string][]presentation.Relation{
			models.RoleIncomeStatement: {
				{Parent: "us-gaap:IncomeStatementLines", Child: models.Tag(tag), Order: 1, Label: label},
			},
		},
	}
	inst, err := filing.Build(input, concepts.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}
	return inst
}

func TestBuildStatementRowsAndCells(t *testing.T) {
	inst := annualFiling(t, "acc-1", "us-gaap:Revenues", "Net revenues", "2023-01-01", "2023-12-31", "2024-02-01", 1000)
	st := BuildStatement(inst, models.RoleIncomeStatement, Options{})

	if len(st.Periods) != 1 {
		t.Fatalf("periods = %d, want 1", len(st.Periods))
	}
	var row *Row
	for _, r := range st.Rows {
		if r.Tag == "us-gaap:Revenues" {
			row = r
		}
	}
	if row == nil {
		t.Fatal("revenue row missing")
	}
	if row.Concept != "Revenue" {
		t.Errorf("row concept = %s", row.Concept)
	}
	cell := row.Cell(st.Periods[0])
	if cell == nil || cell.Value != 1000 || cell.Unit != "USD" {
		t.Errorf("cell = %+v", cell)
	}
}

func TestStitchAlignsRetaggedRows(t *testing.T) {
	// The filer switched revenue tags between years; both resolve to the
	// Revenue concept, so they land in one row.
	older := annualFiling(t, "acc-22", "us-gaap:SalesRevenueNet", "Revenue", "2022-01-01", "2022-12-31", "2023-02-01", 800)
	newer := annualFiling(t, "acc-23", "us-gaap:RevenueFromContractWithCustomerExcludingAssessedTax", "Total revenue", "2023-01-01", "2023-12-31", "2024-02-01", 1000)

	st, err := NewStitcher(Options{}).Stitch([]*filing.Instance{older, newer}, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}

	var revenueRows []*Row
	for _, r := range st.Rows {
		if r.Concept == "Revenue" {
			revenueRows = append(revenueRows, r)
		}
	}
	if len(revenueRows) != 1 {
		t.Fatalf("revenue rows = %d, want 1 concept-aligned row", len(revenueRows))
	}
	row := revenueRows[0]
	if len(st.Periods) != 2 {
		t.Fatalf("periods = %d, want 2", len(st.Periods))
	}
	// Columns descend by period end: 2023 first.
	if got := row.Cell(st.Periods[0]); got == nil || got.Value != 1000 {
		t.Errorf("2023 cell = %+v", got)
	}
	if got := row.Cell(st.Periods[1]); got == nil || got.Value != 800 {
		t.Errorf("2022 cell = %+v", got)
	}
}

func TestStitchLabelComesFromNewestFiling(t *testing.T) {
	// Raw-tag rows (unmapped concept) keep per-tag identity; label policy
	// is checked with a tag both filings share but label differently.
	older := annualFiling(t, "acc-31", "acme:SubscriptionRevenue", "Subscriptions", "2022-01-01", "2022-12-31", "2023-02-01", 10)
	newer := annualFiling(t, "acc-32", "acme:SubscriptionRevenue", "Subscription revenue", "2023-01-01", "2023-12-31", "2024-02-01", 20)

	st, err := NewStitcher(Options{}).Stitch([]*filing.Instance{older, newer}, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	var row *Row
	for _, r := range st.Rows {
		if r.Tag == "acme:SubscriptionRevenue" {
			row = r
		}
	}
	if row == nil {
		t.Fatal("row missing")
	}
	if row.Label != "Subscription revenue" {
		t.Errorf("label = %q, want the most recent filing's label", row.Label)
	}
	if len(row.Cells) != 2 {
		t.Errorf("cells = %d, want both periods", len(row.Cells))
	}
}

func TestStitchAnnualBeatsInterim(t *testing.T) {
	// A Q4 10-Q duration and the 10-K annual duration end on the same date:
	// the interim column disappears in favor of the annual one.
	interim := annualFiling(t, "acc-41", "us-gaap:Revenues", "Revenue", "2023-10-01", "2023-12-31", "2024-01-15", 300)
	annual := annualFiling(t, "acc-42", "us-gaap:Revenues", "Revenue", "2023-01-01", "2023-12-31", "2024-02-01", 1200)

	st, err := NewStitcher(Options{}).Stitch([]*filing.Instance{interim, annual}, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Periods) != 1 {
		t.Fatalf("periods = %v, want only the annual column", st.Periods)
	}
	if !st.Periods[0].Start.Equal(day("2023-01-01")) {
		t.Errorf("surviving column = %s, want the annual duration", st.Periods[0])
	}
}

func TestStitchAmendmentWins(t *testing.T) {
	// Same period from two filings: the later filing date supersedes.
	original := annualFiling(t, "acc-51", "us-gaap:Revenues", "Revenue", "2023-01-01", "2023-12-31", "2024-02-01", 1000)
	amendment := annualFiling(t, "acc-52", "us-gaap:Revenues", "Revenue", "2023-01-01", "2023-12-31", "2024-05-01", 990)

	st, err := NewStitcher(Options{}).Stitch([]*filing.Instance{original, amendment}, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Periods) != 1 {
		t.Fatalf("periods = %d, want 1", len(st.Periods))
	}
	var row *Row
	for _, r := range st.Rows {
		if r.Concept == "Revenue" {
			row = r
		}
	}
	cell := row.Cell(st.Periods[0])
	if cell == nil || cell.Value != 990 {
		t.Errorf("cell = %+v, want the amended value 990", cell)
	}
}

func TestStitchAbsentCellsStayAbsent(t *testing.T) {
	// A line reported only in the newer filing leaves the older column
	// explicitly empty, never zero.
	older := annualFiling(t, "acc-61", "us-gaap:Revenues", "Revenue", "2022-01-01", "2022-12-31", "2023-02-01", 800)
	newer := annualFiling(t, "acc-62", "us-gaap:ResearchAndDevelopmentExpense", "R&D", "2023-01-01", "2023-12-31", "2024-02-01", 150)

	st, err := NewStitcher(Options{}).Stitch([]*filing.Instance{older, newer}, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	var rnd *Row
	for _, r := range st.Rows {
		if r.Concept == "ResearchAndDevelopment" {
			rnd = r
		}
	}
	if rnd == nil {
		t.Fatal("R&D row missing")
	}
	if cell := rnd.Cell(st.Periods[1]); cell != nil {
		t.Errorf("2022 R&D cell = %+v, want explicitly absent", cell)
	}
	if cell := rnd.Cell(st.Periods[0]); cell == nil || cell.Value != 150 {
		t.Errorf("2023 R&D cell = %+v", cell)
	}
}

func TestStitchRejectsMixedEntities(t *testing.T) {
	a := annualFiling(t, "acc-71", "us-gaap:Revenues", "Revenue", "2023-01-01", "2023-12-31", "2024-02-01", 1)
	b := annualFiling(t, "acc-72", "us-gaap:Revenues", "Revenue", "2023-01-01", "2023-12-31", "2024-02-01", 2)
	b.Meta.CIK = "0000000042"

	if _, err := NewStitcher(Options{}).Stitch([]*filing.Instance{a, b}, models.RoleIncomeStatement); err == nil {
		t.Error("mixed entities must be rejected")
	}
}

func TestStitchPeriodCap(t *testing.T) {
	var instances []*filing.Instance
	years := []struct{ start, end, filed string }{
		{"2021-01-01", "2021-12-31", "2022-02-01"},
		{"2022-01-01", "2022-12-31", "2023-02-01"},
		{"2023-01-01", "2023-12-31", "2024-02-01"},
	}
	for i, y := range years {
		instances = append(instances,
			annualFiling(t, "acc-8"+y.end, "us-gaap:Revenues", "Revenue", y.start, y.end, y.filed, float64(100*(i+1))))
	}

	st, err := NewStitcher(Options{MaxPeriods: 2}).Stitch(instances, models.RoleIncomeStatement)
	if err != nil {
		t.Fatal(err)
	}
	if len(st.Periods) != 2 {
		t.Fatalf("periods = %d, want cap of 2", len(st.Periods))
	}
	if !st.Periods[0].End.Equal(day("2023-12-31")) || !st.Periods[1].End.Equal(day("2022-12-31")) {
		t.Errorf("kept columns = %v, want the two newest", st.Periods)
	}
	// Cells for the cut column are gone too.
	for _, r := range st.Rows {
		for key := range r.Cells {
			if key == models.Duration(day("2021-01-01"), day("2021-12-31")).Key() {
				t.Error("cell for capped column survived")
			}
		}
	}
}

func TestStatementValueModes(t *testing.T) {
	end := models.Instant(day("2023-12-31"))
	input := filing.Input{
		Meta: models.FilingMetadata{
			CIK: "0000789019", AccessionNumber: "acc-91", Form: "10-K",
			FilingDate: day("2024-02-01"), PeriodEnd: day("2023-12-31"),
		},
		Facts: []models.Fact{
			{Tag: "us-gaap:TreasuryStockCommonValue", Role: models.RoleBalanceSheet, Period: end, Value: 700, Numeric: true},
		},
		Presentation: map[string][]presentation.Relation{
			models.RoleBalanceSheet: {
				{Parent: "acme:EquityLinesAbstract", Child: "us-gaap:TreasuryStockCommonValue", Order: 1, Label: "Treasury stock", PreferredLabel: "http://www.xbrl.org/2009/role/negatedLabel"},
			},
		},
	}
	inst, err := filing.Build(input, concepts.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}

	raw := BuildStatement(inst, models.RoleBalanceSheet, Options{Mode: facts.ModeRaw})
	pres := BuildStatement(inst, models.RoleBalanceSheet, Options{Mode: facts.ModePresentation})

	find := func(st *Statement) *Cell {
		for _, r := range st.Rows {
			if r.Tag == "us-gaap:TreasuryStockCommonValue" {
				return r.Cell(st.Periods[0])
			}
		}
		return nil
	}
	rawCell, presCell := find(raw), find(pres)
	if rawCell == nil || presCell == nil {
		t.Fatal("treasury row missing")
	}
	if rawCell.Value != 700 {
		t.Errorf("raw = %v, want 700 as reported", rawCell.Value)
	}
	if presCell.Value != -700 {
		t.Errorf("presentation = %v, want -700 via negated label", presCell.Value)
	}
	// Sign metadata rides along in both modes.
	if rawCell.PreferredSign != -1 || presCell.PreferredSign != -1 {
		t.Error("preferred sign metadata lost")
	}
}
