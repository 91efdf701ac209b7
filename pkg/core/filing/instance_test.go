package filing

import (
	"errors"
	"testing"
	"time"

	"xbrl_fundamentals/pkg/core/concepts"
	"xbrl_fundamentals/pkg/core/presentation"
	"xbrl_fundamentals/pkg/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func meta(accession string) models.FilingMetadata {
	return models.FilingMetadata{
		CIK:             "0000320193",
		CompanyName:     "Test Corp",
		AccessionNumber: accession,
		Form:            "10-K",
		FilingDate:      day("2024-11-01"),
		PeriodEnd:       day("2024-09-28"),
	}
}

// liabilityInput builds a balance-sheet input whose combined payables tag
// needs context to resolve.
func liabilityInput() Input {
	end := models.Instant(day("2024-09-28"))
	return Input{
		Meta: meta("0000320193-24-000123"),
		Facts: []models.Fact{
			{Tag: "us-gaap:AccountsPayableCurrentAndNoncurrent", Role: models.RoleBalanceSheet, Period: end, Value: 500, Numeric: true, Balance: models.BalanceCredit},
			{Tag: "us-gaap:LiabilitiesCurrent", Role: models.RoleBalanceSheet, Period: end, Value: 800, Numeric: true, Balance: models.BalanceCredit},
			{Tag: "acme:HouseBrandMetric", Role: models.RoleBalanceSheet, Period: end, Value: 3, Numeric: true, Label: "House metric"},
			{Tag: "dei:EntityRegistrantName", Role: models.RoleBalanceSheet, Period: end, TextValue: "Test Corp"},
		},
		Presentation: map[string][]presentation.Relation{
			models.RoleBalanceSheet: {
				{Parent: "us-gaap:LiabilitiesCurrentAbstract", Child: "us-gaap:AccountsPayableCurrentAndNoncurrent", Order: 1, Label: "Accounts payable"},
				{Parent: "us-gaap:LiabilitiesCurrentAbstract", Child: "acme:HouseBrandMetric", Order: 2, Label: "House metric"},
				{Parent: "us-gaap:LiabilitiesCurrentAbstract", Child: "us-gaap:LiabilitiesCurrent", Order: 3, Label: "Total current liabilities", PreferredLabel: "http://www.xbrl.org/2003/role/totalLabel"},
			},
		},
		Calculation: map[string][]models.CalcRelation{
			models.RoleBalanceSheet: {
				{Parent: "us-gaap:LiabilitiesCurrent", Child: "us-gaap:AccountsPayableCurrentAndNoncurrent", Weight: 1},
			},
		},
	}
}

func TestBuildStandardizesFacts(t *testing.T) {
	inst, err := Build(liabilityInput(), concepts.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}

	// Ambiguous payables resolve to the current-liability concept via the
	// calculation parent.
	f, ok := inst.Facts().Query().Tag("us-gaap:AccountsPayableCurrentAndNoncurrent").First()
	if !ok {
		t.Fatal("payables fact lost")
	}
	if f.Resolution != models.ResolutionResolved || f.Concept != "TradePayables" {
		t.Errorf("payables = %s/%s, want resolved/TradePayables", f.Resolution, f.Concept)
	}

	// Direct mapping.
	f, _ = inst.Facts().Query().Tag("us-gaap:LiabilitiesCurrent").First()
	if f.Concept != "TotalCurrentLiabilities" {
		t.Errorf("total concept = %s", f.Concept)
	}

	// Unknown extension tag survives, flagged unmapped, value intact.
	f, ok = inst.Facts().Query().Tag("acme:HouseBrandMetric").First()
	if !ok {
		t.Fatal("unmapped fact dropped; reported values must never be lost")
	}
	if f.Resolution != models.ResolutionUnmapped || f.Value != 3 {
		t.Errorf("unmapped fact = %s value %v", f.Resolution, f.Value)
	}
}

func TestBuildExclusionInvariant(t *testing.T) {
	input := liabilityInput()
	input.Presentation[models.RoleBalanceSheet] = append(input.Presentation[models.RoleBalanceSheet],
		presentation.Relation{Parent: "us-gaap:LiabilitiesCurrentAbstract", Child: "dei:EntityRegistrantName", Order: 9},
	)
	store := concepts.DefaultStore()
	inst, err := Build(input, store)
	if err != nil {
		t.Fatal(err)
	}

	// Excluded tags appear in no output surface: not in facts, not in trees.
	if _, ok := inst.Facts().Query().Tag("dei:EntityRegistrantName").First(); ok {
		t.Error("excluded tag surfaced in fact set")
	}
	if inst.Tree(models.RoleBalanceSheet).Find("dei:EntityRegistrantName") >= 0 {
		t.Error("excluded tag surfaced in presentation tree")
	}
	if inst.ExcludedFacts() != 1 {
		t.Errorf("excluded count = %d, want 1", inst.ExcludedFacts())
	}
}

func TestBuildHardErrors(t *testing.T) {
	store := concepts.DefaultStore()

	tests := []struct {
		name  string
		input Input
	}{
		{"missing identity", Input{Facts: []models.Fact{{Tag: "t:X"}}}},
		{"no facts no structure", Input{Meta: meta("acc-1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.input, store)
			var perr *DocumentParseError
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *DocumentParseError", err)
			}
		})
	}
}

func TestBuildCycleDegradesNotFails(t *testing.T) {
	input := liabilityInput()
	input.Presentation[models.RoleBalanceSheet] = append(input.Presentation[models.RoleBalanceSheet],
		presentation.Relation{Parent: "us-gaap:AccountsPayableCurrentAndNoncurrent", Child: "us-gaap:LiabilitiesCurrentAbstract", Order: 1},
	)
	inst, err := Build(input, concepts.DefaultStore())
	if err != nil {
		t.Fatalf("cyclic arc must degrade, not fail: %v", err)
	}
	tree := inst.Tree(models.RoleBalanceSheet)
	if err := tree.CheckAcyclic(); err != nil {
		t.Fatalf("tree still cyclic: %v", err)
	}
	found := false
	for _, d := range tree.Dropped() {
		if d.Reason == presentation.DropCycle {
			found = true
		}
	}
	if !found {
		t.Error("cycle drop not recorded in diagnostics")
	}
}

func TestBuildLabelBackfillAndSigns(t *testing.T) {
	end := models.Instant(day("2024-09-28"))
	input := Input{
		Meta: meta("acc-2"),
		Facts: []models.Fact{
			{Tag: "us-gaap:TreasuryStockCommonValue", Role: models.RoleBalanceSheet, Period: end, Value: 700, Numeric: true},
		},
		Presentation: map[string][]presentation.Relation{
			models.RoleBalanceSheet: {
				{Parent: "acme:EquityLinesAbstract", Child: "us-gaap:TreasuryStockCommonValue", Order: 1, Label: "Treasury stock", PreferredLabel: "http://www.xbrl.org/2009/role/negatedLabel"},
			},
		},
		Calculation: map[string][]models.CalcRelation{
			models.RoleBalanceSheet: {
				{Parent: "us-gaap:StockholdersEquity", Child: "us-gaap:TreasuryStockCommonValue", Weight: -1},
			},
		},
	}
	inst, err := Build(input, concepts.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}
	f, ok := inst.Facts().Query().Tag("us-gaap:TreasuryStockCommonValue").First()
	if !ok {
		t.Fatal("fact lost")
	}
	if f.Label != "Treasury stock" {
		t.Errorf("label not backfilled from tree: %q", f.Label)
	}
	if f.Weight != -1 {
		t.Errorf("weight = %v, want -1 from calc arc", f.Weight)
	}
	if f.PreferredSign != -1 {
		t.Errorf("preferred sign = %v, want -1 from negated label", f.PreferredSign)
	}
}

func TestInstanceLabelPreference(t *testing.T) {
	inst, err := Build(liabilityInput(), concepts.DefaultStore())
	if err != nil {
		t.Fatal(err)
	}

	resolved, _ := inst.Facts().Query().Tag("us-gaap:LiabilitiesCurrent").First()
	if got := inst.Label(&resolved); got != "Total current liabilities" {
		t.Errorf("resolved label = %q, want registry label", got)
	}
	unmapped, _ := inst.Facts().Query().Tag("acme:HouseBrandMetric").First()
	if got := inst.Label(&unmapped); got != "House metric" {
		t.Errorf("unmapped label = %q, want filer label", got)
	}
}

func TestBuildAllIsolatesFailures(t *testing.T) {
	good := liabilityInput()
	bad := Input{Meta: meta("acc-bad")} // no facts, no structure
	good2 := liabilityInput()
	good2.Meta.AccessionNumber = "acc-3"

	results := BuildAll([]Input{good, bad, good2}, concepts.DefaultStore())
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("good inputs failed: %v %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Error("bad input did not fail")
	}
	// Input order preserved.
	if results[2].Accession != "acc-3" {
		t.Errorf("result order broken: %s", results[2].Accession)
	}
}

func TestDocumentParseErrorUnwraps(t *testing.T) {
	inner := errors.New("root cause")
	err := &DocumentParseError{Accession: "acc-9", Reason: "bad xml", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("Unwrap does not expose the cause")
	}
	if err.Error() == "" {
		t.Error("empty error text")
	}
}
