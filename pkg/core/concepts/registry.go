// Package concepts holds the standard concept registry and the reverse
// mapping store that normalizes raw taxonomy tags onto it.
//
// The registry is the fixed set of canonical line items every filing is
// standardized toward. Concept keys are stable across taxonomy and library
// versions; display labels are data and may be updated independently.
package concepts

import "xbrl_fundamentals/pkg/models"

// Section classifies a concept within its statement. Sections drive
// context disambiguation: an ambiguous tag is resolved by matching its
// candidates' sections against the section derived from document context.
type Section string

const (
	SectionNone Section = ""

	SectionCurrentAssets         Section = "current_assets"
	SectionNoncurrentAssets      Section = "noncurrent_assets"
	SectionCurrentLiabilities    Section = "current_liabilities"
	SectionNoncurrentLiabilities Section = "noncurrent_liabilities"
	SectionEquity                Section = "equity"

	SectionGrossProfit  Section = "gross_profit"
	SectionOperating    Section = "operating_costs"
	SectionNonoperating Section = "nonoperating"
	SectionTax          Section = "tax"
	SectionNetIncome    Section = "net_income"
	SectionOCI          Section = "oci"

	SectionCFOperating Section = "cf_operating"
	SectionCFInvesting Section = "cf_investing"
	SectionCFFinancing Section = "cf_financing"
	SectionCFSummary   Section = "cf_summary"
)

// Broad section groups used when an anchor names a whole statement side
// rather than a current/noncurrent split.
const (
	SectionAssets      Section = "assets"
	SectionLiabilities Section = "liabilities"
)

// Covers reports whether s, possibly a broad group, includes other.
func (s Section) Covers(other Section) bool {
	if s == other {
		return true
	}
	switch s {
	case SectionAssets:
		return other == SectionCurrentAssets || other == SectionNoncurrentAssets
	case SectionLiabilities:
		return other == SectionCurrentLiabilities || other == SectionNoncurrentLiabilities
	}
	return false
}

// Info describes one standard concept.
type Info struct {
	Key     models.Concept `json:"key" yaml:"key"`
	Label   string         `json:"label" yaml:"label"`
	Role    string         `json:"role" yaml:"role"`
	Section Section        `json:"section" yaml:"section"`
	Balance models.Balance `json:"balance" yaml:"balance"`
	// Total marks roll-up concepts (subtotals and statement totals).
	Total bool `json:"total,omitempty" yaml:"total,omitempty"`
}

// builtinConcepts is the versioned registry. Keys are stable; labels follow
// conventional statement wording and may be overridden from the label table.
var builtinConcepts = []Info{
	// Balance sheet: current assets
	{Key: "CashAndEquivalents", Label: "Cash and cash equivalents", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "ShortTermInvestments", Label: "Short-term investments", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "TradeReceivables", Label: "Accounts receivable, net", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "Inventories", Label: "Inventories", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "PrepaidExpenses", Label: "Prepaid expenses", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "OtherCurrentAssets", Label: "Other current assets", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit},
	{Key: "TotalCurrentAssets", Label: "Total current assets", Role: models.RoleBalanceSheet, Section: SectionCurrentAssets, Balance: models.BalanceDebit, Total: true},

	// Balance sheet: noncurrent assets
	{Key: "LongTermInvestments", Label: "Long-term investments", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "PropertyPlantEquipmentGross", Label: "Property, plant and equipment, gross", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "AccumulatedDepreciation", Label: "Accumulated depreciation", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceCredit},
	{Key: "PropertyPlantEquipmentNet", Label: "Property, plant and equipment, net", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "Goodwill", Label: "Goodwill", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "IntangibleAssets", Label: "Intangible assets, net", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "OperatingLeaseAssets", Label: "Operating lease right-of-use assets", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "DeferredTaxAssets", Label: "Deferred tax assets", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "RestrictedCash", Label: "Restricted cash", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "OtherNoncurrentAssets", Label: "Other non-current assets", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit},
	{Key: "TotalNoncurrentAssets", Label: "Total non-current assets", Role: models.RoleBalanceSheet, Section: SectionNoncurrentAssets, Balance: models.BalanceDebit, Total: true},
	{Key: "TotalAssets", Label: "Total assets", Role: models.RoleBalanceSheet, Section: SectionAssets, Balance: models.BalanceDebit, Total: true},

	// Balance sheet: current liabilities
	{Key: "TradePayables", Label: "Accounts payable", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "AccruedLiabilities", Label: "Accrued liabilities", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "ShortTermDebt", Label: "Short-term borrowings", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "CurrentLongTermDebt", Label: "Current portion of long-term debt", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "CurrentOperatingLeaseLiabilities", Label: "Operating lease liabilities, current", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "DeferredRevenueCurrent", Label: "Deferred revenue, current", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "IncomeTaxesPayable", Label: "Income taxes payable", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "OtherCurrentLiabilities", Label: "Other current liabilities", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "TotalCurrentLiabilities", Label: "Total current liabilities", Role: models.RoleBalanceSheet, Section: SectionCurrentLiabilities, Balance: models.BalanceCredit, Total: true},

	// Balance sheet: noncurrent liabilities
	{Key: "LongTermDebt", Label: "Long-term debt", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "NoncurrentOperatingLeaseLiabilities", Label: "Operating lease liabilities, non-current", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "DeferredTaxLiabilities", Label: "Deferred tax liabilities", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "PensionObligations", Label: "Pension and post-retirement obligations", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "DeferredRevenueNoncurrent", Label: "Deferred revenue, non-current", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "OtherNoncurrentLiabilities", Label: "Other non-current liabilities", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit},
	{Key: "TotalNoncurrentLiabilities", Label: "Total non-current liabilities", Role: models.RoleBalanceSheet, Section: SectionNoncurrentLiabilities, Balance: models.BalanceCredit, Total: true},
	{Key: "TotalLiabilities", Label: "Total liabilities", Role: models.RoleBalanceSheet, Section: SectionLiabilities, Balance: models.BalanceCredit, Total: true},

	// Balance sheet: equity
	{Key: "PreferredStock", Label: "Preferred stock", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "CommonStock", Label: "Common stock", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "AdditionalPaidInCapital", Label: "Additional paid-in capital", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "RetainedEarnings", Label: "Retained earnings (accumulated deficit)", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "TreasuryStock", Label: "Treasury stock", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceDebit},
	{Key: "AccumulatedOCI", Label: "Accumulated other comprehensive income (loss)", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "NoncontrollingInterests", Label: "Noncontrolling interests", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit},
	{Key: "TotalEquity", Label: "Total stockholders' equity", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit, Total: true},
	{Key: "TotalLiabilitiesAndEquity", Label: "Total liabilities and stockholders' equity", Role: models.RoleBalanceSheet, Section: SectionEquity, Balance: models.BalanceCredit, Total: true},

	// Income statement
	{Key: "Revenue", Label: "Revenue", Role: models.RoleIncomeStatement, Section: SectionGrossProfit, Balance: models.BalanceCredit},
	{Key: "CostOfRevenue", Label: "Cost of revenue", Role: models.RoleIncomeStatement, Section: SectionGrossProfit, Balance: models.BalanceDebit},
	{Key: "GrossProfit", Label: "Gross profit", Role: models.RoleIncomeStatement, Section: SectionGrossProfit, Balance: models.BalanceCredit, Total: true},
	{Key: "SellingGeneralAdmin", Label: "Selling, general and administrative", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "SellingAndMarketing", Label: "Selling and marketing", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "GeneralAndAdministrative", Label: "General and administrative", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "ResearchAndDevelopment", Label: "Research and development", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "DepreciationAmortizationExpense", Label: "Depreciation and amortization", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "RestructuringCharges", Label: "Restructuring charges", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "ImpairmentCharges", Label: "Impairment charges", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "OtherOperatingExpenses", Label: "Other operating expenses", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit},
	{Key: "TotalOperatingExpenses", Label: "Total operating expenses", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceDebit, Total: true},
	{Key: "OperatingIncome", Label: "Operating income", Role: models.RoleIncomeStatement, Section: SectionOperating, Balance: models.BalanceCredit, Total: true},
	{Key: "InterestExpense", Label: "Interest expense", Role: models.RoleIncomeStatement, Section: SectionNonoperating, Balance: models.BalanceDebit},
	{Key: "InterestIncome", Label: "Interest income", Role: models.RoleIncomeStatement, Section: SectionNonoperating, Balance: models.BalanceCredit},
	{Key: "OtherNonoperatingIncome", Label: "Other income (expense), net", Role: models.RoleIncomeStatement, Section: SectionNonoperating, Balance: models.BalanceCredit},
	{Key: "EquityMethodIncome", Label: "Income from equity method investments", Role: models.RoleIncomeStatement, Section: SectionNonoperating, Balance: models.BalanceCredit},
	{Key: "PretaxIncome", Label: "Income before income taxes", Role: models.RoleIncomeStatement, Section: SectionNonoperating, Balance: models.BalanceCredit, Total: true},
	{Key: "IncomeTaxExpense", Label: "Provision for income taxes", Role: models.RoleIncomeStatement, Section: SectionTax, Balance: models.BalanceDebit},
	{Key: "DiscontinuedOperations", Label: "Income from discontinued operations", Role: models.RoleIncomeStatement, Section: SectionTax, Balance: models.BalanceCredit},
	{Key: "NetIncome", Label: "Net income", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceCredit, Total: true},
	{Key: "NetIncomeNoncontrolling", Label: "Net income attributable to noncontrolling interests", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceCredit},
	{Key: "NetIncomeToCommon", Label: "Net income attributable to common stockholders", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceCredit, Total: true},
	{Key: "PreferredDividends", Label: "Preferred stock dividends", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceDebit},
	{Key: "EPSBasic", Label: "Earnings per share, basic", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceNone},
	{Key: "EPSDiluted", Label: "Earnings per share, diluted", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceNone},
	{Key: "SharesBasic", Label: "Weighted-average shares, basic", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceNone},
	{Key: "SharesDiluted", Label: "Weighted-average shares, diluted", Role: models.RoleIncomeStatement, Section: SectionNetIncome, Balance: models.BalanceNone},

	// Comprehensive income
	{Key: "OCIForeignCurrency", Label: "Foreign currency translation adjustments", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit},
	{Key: "OCISecurities", Label: "Unrealized gains (losses) on securities", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit},
	{Key: "OCIPension", Label: "Pension and post-retirement adjustments", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit},
	{Key: "OCIHedges", Label: "Gains (losses) on cash flow hedges", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit},
	{Key: "OtherComprehensiveIncome", Label: "Other comprehensive income (loss)", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit, Total: true},
	{Key: "ComprehensiveIncome", Label: "Comprehensive income", Role: models.RoleComprehensive, Section: SectionOCI, Balance: models.BalanceCredit, Total: true},

	// Cash flow: operating
	{Key: "NetIncomeStart", Label: "Net income", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceCredit},
	{Key: "DepreciationAmortizationCF", Label: "Depreciation and amortization", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceDebit},
	{Key: "StockBasedCompensation", Label: "Stock-based compensation", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceDebit},
	{Key: "DeferredIncomeTaxes", Label: "Deferred income taxes", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "ChangeReceivables", Label: "Changes in accounts receivable", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "ChangeInventories", Label: "Changes in inventories", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "ChangePayables", Label: "Changes in accounts payable", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "ChangeOtherWorkingCapital", Label: "Changes in other working capital", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "OtherNoncashItems", Label: "Other non-cash items", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone},
	{Key: "NetCashOperating", Label: "Net cash provided by operating activities", Role: models.RoleCashFlow, Section: SectionCFOperating, Balance: models.BalanceNone, Total: true},

	// Cash flow: investing
	{Key: "CapitalExpenditures", Label: "Purchases of property, plant and equipment", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceCredit},
	{Key: "AcquisitionsNet", Label: "Acquisitions, net of cash acquired", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceCredit},
	{Key: "PurchasesOfInvestments", Label: "Purchases of investments", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceCredit},
	{Key: "SalesMaturitiesOfInvestments", Label: "Sales and maturities of investments", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceDebit},
	{Key: "OtherInvesting", Label: "Other investing activities", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceNone},
	{Key: "NetCashInvesting", Label: "Net cash used in investing activities", Role: models.RoleCashFlow, Section: SectionCFInvesting, Balance: models.BalanceNone, Total: true},

	// Cash flow: financing
	{Key: "DebtIssuance", Label: "Proceeds from issuance of debt", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceDebit},
	{Key: "DebtRepayment", Label: "Repayments of debt", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceCredit},
	{Key: "StockIssuance", Label: "Proceeds from issuance of common stock", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceDebit},
	{Key: "StockRepurchases", Label: "Repurchases of common stock", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceCredit},
	{Key: "DividendsPaid", Label: "Dividends paid", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceCredit},
	{Key: "OtherFinancing", Label: "Other financing activities", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceNone},
	{Key: "NetCashFinancing", Label: "Net cash used in financing activities", Role: models.RoleCashFlow, Section: SectionCFFinancing, Balance: models.BalanceNone, Total: true},

	// Cash flow: summary
	{Key: "ExchangeRateEffect", Label: "Effect of exchange rate changes on cash", Role: models.RoleCashFlow, Section: SectionCFSummary, Balance: models.BalanceNone},
	{Key: "NetChangeInCash", Label: "Net increase (decrease) in cash", Role: models.RoleCashFlow, Section: SectionCFSummary, Balance: models.BalanceNone, Total: true},
	{Key: "CashBeginning", Label: "Cash and equivalents, beginning of period", Role: models.RoleCashFlow, Section: SectionCFSummary, Balance: models.BalanceDebit},
	{Key: "CashEnding", Label: "Cash and equivalents, end of period", Role: models.RoleCashFlow, Section: SectionCFSummary, Balance: models.BalanceDebit},
}
