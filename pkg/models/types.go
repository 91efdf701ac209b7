// Package models defines the shared data model for parsed filings:
// taxonomy tags, standard concepts, reporting periods and facts.
package models

import (
	"fmt"
	"time"
)

// Tag is a namespaced taxonomy identifier exactly as it appears in a filing,
// e.g. "us-gaap:AccountsPayableCurrent". Opaque to the engine.
type Tag string

// Concept is the stable key of one of the ~95 standard line items all tags
// are normalized toward, e.g. "TradePayables". Keys never change across
// taxonomy versions; display labels may.
type Concept string

// Statement roles. One presentation tree is built per role.
const (
	RoleBalanceSheet    = "balance_sheet"
	RoleIncomeStatement = "income_statement"
	RoleCashFlow        = "cash_flow"
	RoleEquity          = "equity"
	RoleComprehensive   = "comprehensive_income"
)

// Balance is the debit/credit balance attribute of a numeric fact.
type Balance string

const (
	BalanceNone   Balance = ""
	BalanceDebit  Balance = "debit"
	BalanceCredit Balance = "credit"
)

// Period is a reporting period: either an instant (balance sheet date) or a
// start/end duration (income statement, cash flow).
type Period struct {
	Start   time.Time `json:"start,omitempty"`
	End     time.Time `json:"end"`
	Instant bool      `json:"instant,omitempty"`
}

// Instant builds an instant period.
func Instant(end time.Time) Period {
	return Period{End: end, Instant: true}
}

// Duration builds a start/end duration period.
func Duration(start, end time.Time) Period {
	return Period{Start: start, End: end}
}

// Key returns a stable identity string. Two periods with the same
// (start, end) pair are the same column in a stitched statement.
func (p Period) Key() string {
	if p.Instant {
		return fmt.Sprintf("I|%s", p.End.Format("2006-01-02"))
	}
	return fmt.Sprintf("D|%s|%s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// IsZero reports whether the period is unset.
func (p Period) IsZero() bool {
	return p.End.IsZero() && p.Start.IsZero()
}

// Annual reports whether a duration period covers roughly a full fiscal year.
// Instant periods are considered annual carriers (a year-end snapshot).
func (p Period) Annual() bool {
	if p.Instant {
		return true
	}
	days := p.End.Sub(p.Start).Hours() / 24
	return days >= 300
}

func (p Period) String() string {
	if p.Instant {
		return p.End.Format("2006-01-02")
	}
	return p.Start.Format("2006-01-02") + " to " + p.End.Format("2006-01-02")
}

// Dimension qualifies a fact with a segment/member breakdown,
// e.g. axis "srt:ProductOrServiceAxis", member "us-gaap:ProductMember".
type Dimension struct {
	Axis   Tag `json:"axis"`
	Member Tag `json:"member"`
}

// Resolution records how (and whether) a fact's tag was standardized.
type Resolution string

const (
	// ResolutionResolved means the tag mapped to exactly one concept,
	// either directly or via context disambiguation.
	ResolutionResolved Resolution = "resolved"
	// ResolutionAmbiguous means candidates remained after every
	// disambiguation strategy; the fact keeps its original tag.
	ResolutionAmbiguous Resolution = "ambiguous"
	// ResolutionUnmapped means the tag is unknown to the mapping tables;
	// the filer's own label is used, flagged low-confidence.
	ResolutionUnmapped Resolution = "unmapped"
)

// Fact is one reported value from a filing. Facts are immutable once
// attached to a filing instance.
type Fact struct {
	Tag        Tag        `json:"tag"`
	Concept    Concept    `json:"concept,omitempty"` // empty unless Resolution is resolved
	Resolution Resolution `json:"resolution,omitempty"`
	Label      string     `json:"label,omitempty"` // filer's own label for the line item
	Role       string     `json:"role,omitempty"`  // statement role the fact appears under

	Period     Period      `json:"period"`
	Dimensions []Dimension `json:"dimensions,omitempty"`

	Value     float64 `json:"value"`
	Numeric   bool    `json:"numeric"`
	TextValue string  `json:"text_value,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	Decimals  string  `json:"decimals,omitempty"`

	// Sign metadata, carried independently of the reported magnitude.
	Balance       Balance `json:"balance,omitempty"`
	Weight        float64 `json:"weight,omitempty"`         // calculation contribution sign, +1/-1
	PreferredSign float64 `json:"preferred_sign,omitempty"` // presentation hint, +1/-1
}

// Dimensional reports whether the fact carries any segment/member qualifier.
func (f *Fact) Dimensional() bool {
	return len(f.Dimensions) > 0
}

// CalcRelation is one raw calculation arc: child contributes to parent's
// arithmetic roll-up with the given sign weight. Used for disambiguation,
// not display order.
type CalcRelation struct {
	Parent Tag     `json:"parent"`
	Child  Tag     `json:"child"`
	Weight float64 `json:"weight"` // +1 or -1
}

// FilingMetadata identifies the document a filing instance was parsed from.
type FilingMetadata struct {
	CIK             string    `json:"cik"`
	CompanyName     string    `json:"company_name"`
	Tickers         []string  `json:"tickers,omitempty"`
	AccessionNumber string    `json:"accession_number"`
	Form            string    `json:"form"` // "10-K", "10-Q"
	IsAmended       bool      `json:"is_amended"`
	FiscalYear      int       `json:"fiscal_year"`
	FiscalPeriod    string    `json:"fiscal_period"` // "FY", "Q1", "Q2", "Q3"
	FilingDate      time.Time `json:"filing_date"`
	PeriodEnd       time.Time `json:"period_end"`
}
