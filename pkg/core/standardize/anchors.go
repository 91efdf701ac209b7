package standardize

import (
	"strings"

	"xbrl_fundamentals/pkg/core/concepts"
	"xbrl_fundamentals/pkg/models"
)

// anchorSections maps known "section anchor" concepts — the subtotals a
// calculation parent resolves to — onto the statement section their
// contributors belong to. Static reference data, not derived per document.
var anchorSections = map[models.Concept]concepts.Section{
	"TotalCurrentAssets":         concepts.SectionCurrentAssets,
	"TotalNoncurrentAssets":      concepts.SectionNoncurrentAssets,
	"TotalAssets":                concepts.SectionAssets,
	"TotalCurrentLiabilities":    concepts.SectionCurrentLiabilities,
	"TotalNoncurrentLiabilities": concepts.SectionNoncurrentLiabilities,
	"TotalLiabilities":           concepts.SectionLiabilities,
	"TotalEquity":                concepts.SectionEquity,
	"TotalLiabilitiesAndEquity":  concepts.SectionEquity,

	"GrossProfit":            concepts.SectionGrossProfit,
	"TotalOperatingExpenses": concepts.SectionOperating,
	"OperatingIncome":        concepts.SectionOperating,
	"PretaxIncome":           concepts.SectionNonoperating,
	"NetIncome":              concepts.SectionTax,
	"NetIncomeToCommon":      concepts.SectionNetIncome,

	"OtherComprehensiveIncome": concepts.SectionOCI,
	"ComprehensiveIncome":      concepts.SectionOCI,

	"NetCashOperating": concepts.SectionCFOperating,
	"NetCashInvesting": concepts.SectionCFInvesting,
	"NetCashFinancing": concepts.SectionCFFinancing,
	"NetChangeInCash":  concepts.SectionCFSummary,
}

// labelSections matches subtotal label text when a total row's own tag is
// not in the mapping tables. Most specific phrases first; matching is
// case-insensitive substring.
var labelSections = []struct {
	phrase  string
	section concepts.Section
}{
	{"total current assets", concepts.SectionCurrentAssets},
	{"total non-current assets", concepts.SectionNoncurrentAssets},
	{"total noncurrent assets", concepts.SectionNoncurrentAssets},
	{"total current liabilities", concepts.SectionCurrentLiabilities},
	{"total non-current liabilities", concepts.SectionNoncurrentLiabilities},
	{"total noncurrent liabilities", concepts.SectionNoncurrentLiabilities},
	{"total liabilities and", concepts.SectionEquity},
	{"total stockholders", concepts.SectionEquity},
	{"total shareholders", concepts.SectionEquity},
	{"total equity", concepts.SectionEquity},
	{"total liabilities", concepts.SectionLiabilities},
	{"total assets", concepts.SectionAssets},
	{"gross profit", concepts.SectionGrossProfit},
	{"total operating expenses", concepts.SectionOperating},
	{"operating income", concepts.SectionOperating},
	{"income before", concepts.SectionNonoperating},
	{"net income", concepts.SectionNetIncome},
	{"comprehensive income", concepts.SectionOCI},
	{"operating activities", concepts.SectionCFOperating},
	{"investing activities", concepts.SectionCFInvesting},
	{"financing activities", concepts.SectionCFFinancing},
	{"change in cash", concepts.SectionCFSummary},
}

// sectionForLabel derives a section from a subtotal row's label text.
func sectionForLabel(label string) concepts.Section {
	lower := strings.ToLower(label)
	for _, ls := range labelSections {
		if strings.Contains(lower, ls.phrase) {
			return ls.section
		}
	}
	return concepts.SectionNone
}
