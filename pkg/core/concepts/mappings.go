package concepts

import "xbrl_fundamentals/pkg/models"

// builtinMappings is the built-in reverse mapping table covering the common
// us-gaap tags. The full table ships as versioned reference data (see
// configs/) and is merged over these defaults at load time.
var builtinMappings = []Mapping{
	// Current assets
	{Tag: "us-gaap:CashAndCashEquivalentsAtCarryingValue", Concepts: []models.Concept{"CashAndEquivalents"}},
	{Tag: "us-gaap:CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents", Concepts: []models.Concept{"CashAndEquivalents"}},
	{Tag: "us-gaap:ShortTermInvestments", Concepts: []models.Concept{"ShortTermInvestments"}},
	{Tag: "us-gaap:AvailableForSaleSecuritiesCurrent", Concepts: []models.Concept{"ShortTermInvestments"}, DeprecatedSince: 2018},
	{Tag: "us-gaap:MarketableSecuritiesCurrent", Concepts: []models.Concept{"ShortTermInvestments"}},
	{Tag: "us-gaap:AccountsReceivableNetCurrent", Concepts: []models.Concept{"TradeReceivables"}},
	{Tag: "us-gaap:ReceivablesNetCurrent", Concepts: []models.Concept{"TradeReceivables"}},
	{Tag: "us-gaap:InventoryNet", Concepts: []models.Concept{"Inventories"}},
	{Tag: "us-gaap:InventoryFinishedGoodsNetOfReserves", Concepts: []models.Concept{"Inventories"}},
	{Tag: "us-gaap:PrepaidExpenseCurrent", Concepts: []models.Concept{"PrepaidExpenses"}},
	{Tag: "us-gaap:PrepaidExpenseAndOtherAssetsCurrent", Concepts: []models.Concept{"PrepaidExpenses", "OtherCurrentAssets"}},
	{Tag: "us-gaap:OtherAssetsCurrent", Concepts: []models.Concept{"OtherCurrentAssets"}},
	{Tag: "us-gaap:AssetsCurrent", Concepts: []models.Concept{"TotalCurrentAssets"}},

	// Noncurrent assets
	{Tag: "us-gaap:LongTermInvestments", Concepts: []models.Concept{"LongTermInvestments"}},
	{Tag: "us-gaap:MarketableSecuritiesNoncurrent", Concepts: []models.Concept{"LongTermInvestments"}},
	{Tag: "us-gaap:PropertyPlantAndEquipmentGross", Concepts: []models.Concept{"PropertyPlantEquipmentGross"}},
	{Tag: "us-gaap:AccumulatedDepreciationDepletionAndAmortizationPropertyPlantAndEquipment", Concepts: []models.Concept{"AccumulatedDepreciation"}},
	{Tag: "us-gaap:PropertyPlantAndEquipmentNet", Concepts: []models.Concept{"PropertyPlantEquipmentNet"}},
	{Tag: "us-gaap:Goodwill", Concepts: []models.Concept{"Goodwill"}},
	{Tag: "us-gaap:FiniteLivedIntangibleAssetsNet", Concepts: []models.Concept{"IntangibleAssets"}},
	{Tag: "us-gaap:IntangibleAssetsNetExcludingGoodwill", Concepts: []models.Concept{"IntangibleAssets"}},
	{Tag: "us-gaap:OperatingLeaseRightOfUseAsset", Concepts: []models.Concept{"OperatingLeaseAssets"}},
	{Tag: "us-gaap:DeferredIncomeTaxAssetsNet", Concepts: []models.Concept{"DeferredTaxAssets"}},
	{Tag: "us-gaap:RestrictedCashNoncurrent", Concepts: []models.Concept{"RestrictedCash"}},
	{Tag: "us-gaap:OtherAssetsNoncurrent", Concepts: []models.Concept{"OtherNoncurrentAssets"}},
	{Tag: "us-gaap:AssetsNoncurrent", Concepts: []models.Concept{"TotalNoncurrentAssets"}},
	{Tag: "us-gaap:Assets", Concepts: []models.Concept{"TotalAssets"}},
	// Ambiguous: same tag covers current-only and combined presentations.
	{Tag: "us-gaap:OtherAssets", Concepts: []models.Concept{"OtherCurrentAssets", "OtherNoncurrentAssets"}},

	// Current liabilities
	{Tag: "us-gaap:AccountsPayableCurrent", Concepts: []models.Concept{"TradePayables"}},
	{Tag: "us-gaap:AccountsPayableTradeCurrent", Concepts: []models.Concept{"TradePayables"}},
	{Tag: "us-gaap:AccountsPayableCurrentAndNoncurrent", Concepts: []models.Concept{"TradePayables", "OtherNoncurrentLiabilities"}},
	{Tag: "us-gaap:AccruedLiabilitiesCurrent", Concepts: []models.Concept{"AccruedLiabilities"}},
	{Tag: "us-gaap:AccountsPayableAndAccruedLiabilitiesCurrent", Concepts: []models.Concept{"AccruedLiabilities", "TradePayables"}},
	{Tag: "us-gaap:ShortTermBorrowings", Concepts: []models.Concept{"ShortTermDebt"}},
	{Tag: "us-gaap:CommercialPaper", Concepts: []models.Concept{"ShortTermDebt"}},
	{Tag: "us-gaap:LongTermDebtCurrent", Concepts: []models.Concept{"CurrentLongTermDebt"}},
	{Tag: "us-gaap:OperatingLeaseLiabilityCurrent", Concepts: []models.Concept{"CurrentOperatingLeaseLiabilities"}},
	{Tag: "us-gaap:ContractWithCustomerLiabilityCurrent", Concepts: []models.Concept{"DeferredRevenueCurrent"}},
	{Tag: "us-gaap:DeferredRevenueCurrent", Concepts: []models.Concept{"DeferredRevenueCurrent"}, DeprecatedSince: 2019},
	{Tag: "us-gaap:AccruedIncomeTaxesCurrent", Concepts: []models.Concept{"IncomeTaxesPayable"}},
	{Tag: "us-gaap:OtherLiabilitiesCurrent", Concepts: []models.Concept{"OtherCurrentLiabilities"}},
	{Tag: "us-gaap:LiabilitiesCurrent", Concepts: []models.Concept{"TotalCurrentLiabilities"}},

	// Noncurrent liabilities
	{Tag: "us-gaap:LongTermDebtNoncurrent", Concepts: []models.Concept{"LongTermDebt"}},
	{Tag: "us-gaap:LongTermDebt", Concepts: []models.Concept{"CurrentLongTermDebt", "LongTermDebt"}},
	{Tag: "us-gaap:OperatingLeaseLiabilityNoncurrent", Concepts: []models.Concept{"NoncurrentOperatingLeaseLiabilities"}},
	{Tag: "us-gaap:DeferredIncomeTaxLiabilitiesNet", Concepts: []models.Concept{"DeferredTaxLiabilities"}},
	{Tag: "us-gaap:PensionAndOtherPostretirementDefinedBenefitPlansLiabilitiesNoncurrent", Concepts: []models.Concept{"PensionObligations"}},
	{Tag: "us-gaap:ContractWithCustomerLiabilityNoncurrent", Concepts: []models.Concept{"DeferredRevenueNoncurrent"}},
	{Tag: "us-gaap:OtherLiabilitiesNoncurrent", Concepts: []models.Concept{"OtherNoncurrentLiabilities"}},
	{Tag: "us-gaap:LiabilitiesNoncurrent", Concepts: []models.Concept{"TotalNoncurrentLiabilities"}},
	{Tag: "us-gaap:Liabilities", Concepts: []models.Concept{"TotalLiabilities"}},
	{Tag: "us-gaap:DeferredRevenue", Concepts: []models.Concept{"DeferredRevenueCurrent", "DeferredRevenueNoncurrent"}},

	// Equity
	{Tag: "us-gaap:PreferredStockValue", Concepts: []models.Concept{"PreferredStock"}},
	{Tag: "us-gaap:CommonStockValue", Concepts: []models.Concept{"CommonStock"}},
	{Tag: "us-gaap:CommonStocksIncludingAdditionalPaidInCapital", Concepts: []models.Concept{"AdditionalPaidInCapital", "CommonStock"}},
	{Tag: "us-gaap:AdditionalPaidInCapital", Concepts: []models.Concept{"AdditionalPaidInCapital"}},
	{Tag: "us-gaap:RetainedEarningsAccumulatedDeficit", Concepts: []models.Concept{"RetainedEarnings"}},
	{Tag: "us-gaap:TreasuryStockValue", Concepts: []models.Concept{"TreasuryStock"}},
	{Tag: "us-gaap:TreasuryStockCommonValue", Concepts: []models.Concept{"TreasuryStock"}},
	{Tag: "us-gaap:AccumulatedOtherComprehensiveIncomeLossNetOfTax", Concepts: []models.Concept{"AccumulatedOCI"}},
	{Tag: "us-gaap:MinorityInterest", Concepts: []models.Concept{"NoncontrollingInterests"}},
	{Tag: "us-gaap:StockholdersEquity", Concepts: []models.Concept{"TotalEquity"}},
	{Tag: "us-gaap:StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest", Concepts: []models.Concept{"TotalEquity"}},
	{Tag: "us-gaap:LiabilitiesAndStockholdersEquity", Concepts: []models.Concept{"TotalLiabilitiesAndEquity"}},

	// Income statement
	{Tag: "us-gaap:RevenueFromContractWithCustomerExcludingAssessedTax", Concepts: []models.Concept{"Revenue"}},
	{Tag: "us-gaap:Revenues", Concepts: []models.Concept{"Revenue"}},
	{Tag: "us-gaap:SalesRevenueNet", Concepts: []models.Concept{"Revenue"}, DeprecatedSince: 2018},
	{Tag: "us-gaap:CostOfRevenue", Concepts: []models.Concept{"CostOfRevenue"}},
	{Tag: "us-gaap:CostOfGoodsAndServicesSold", Concepts: []models.Concept{"CostOfRevenue"}},
	{Tag: "us-gaap:GrossProfit", Concepts: []models.Concept{"GrossProfit"}},
	{Tag: "us-gaap:SellingGeneralAndAdministrativeExpense", Concepts: []models.Concept{"SellingGeneralAdmin"}},
	{Tag: "us-gaap:SellingAndMarketingExpense", Concepts: []models.Concept{"SellingAndMarketing"}},
	{Tag: "us-gaap:GeneralAndAdministrativeExpense", Concepts: []models.Concept{"GeneralAndAdministrative"}},
	{Tag: "us-gaap:ResearchAndDevelopmentExpense", Concepts: []models.Concept{"ResearchAndDevelopment"}},
	{Tag: "us-gaap:RestructuringCharges", Concepts: []models.Concept{"RestructuringCharges"}},
	{Tag: "us-gaap:GoodwillImpairmentLoss", Concepts: []models.Concept{"ImpairmentCharges"}},
	{Tag: "us-gaap:OtherOperatingIncomeExpenseNet", Concepts: []models.Concept{"OtherOperatingExpenses"}},
	{Tag: "us-gaap:OperatingExpenses", Concepts: []models.Concept{"TotalOperatingExpenses"}},
	{Tag: "us-gaap:CostsAndExpenses", Concepts: []models.Concept{"TotalOperatingExpenses"}},
	{Tag: "us-gaap:OperatingIncomeLoss", Concepts: []models.Concept{"OperatingIncome"}},
	{Tag: "us-gaap:InterestExpense", Concepts: []models.Concept{"InterestExpense"}},
	{Tag: "us-gaap:InterestExpenseNonoperating", Concepts: []models.Concept{"InterestExpense"}},
	{Tag: "us-gaap:InvestmentIncomeInterest", Concepts: []models.Concept{"InterestIncome"}},
	{Tag: "us-gaap:OtherNonoperatingIncomeExpense", Concepts: []models.Concept{"OtherNonoperatingIncome"}},
	{Tag: "us-gaap:IncomeLossFromEquityMethodInvestments", Concepts: []models.Concept{"EquityMethodIncome"}},
	{Tag: "us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesExtraordinaryItemsNoncontrollingInterest", Concepts: []models.Concept{"PretaxIncome"}},
	{Tag: "us-gaap:IncomeLossFromContinuingOperationsBeforeIncomeTaxesMinorityInterestAndIncomeLossFromEquityMethodInvestments", Concepts: []models.Concept{"PretaxIncome"}},
	{Tag: "us-gaap:IncomeTaxExpenseBenefit", Concepts: []models.Concept{"IncomeTaxExpense"}},
	{Tag: "us-gaap:IncomeLossFromDiscontinuedOperationsNetOfTax", Concepts: []models.Concept{"DiscontinuedOperations"}},
	{Tag: "us-gaap:NetIncomeLoss", Concepts: []models.Concept{"NetIncome"}},
	{Tag: "us-gaap:ProfitLoss", Concepts: []models.Concept{"NetIncome"}},
	{Tag: "us-gaap:NetIncomeLossAttributableToNoncontrollingInterest", Concepts: []models.Concept{"NetIncomeNoncontrolling"}},
	{Tag: "us-gaap:NetIncomeLossAvailableToCommonStockholdersBasic", Concepts: []models.Concept{"NetIncomeToCommon"}},
	{Tag: "us-gaap:PreferredStockDividendsIncomeStatementImpact", Concepts: []models.Concept{"PreferredDividends"}},
	{Tag: "us-gaap:EarningsPerShareBasic", Concepts: []models.Concept{"EPSBasic"}},
	{Tag: "us-gaap:EarningsPerShareDiluted", Concepts: []models.Concept{"EPSDiluted"}},
	{Tag: "us-gaap:WeightedAverageNumberOfSharesOutstandingBasic", Concepts: []models.Concept{"SharesBasic"}},
	{Tag: "us-gaap:WeightedAverageNumberOfDilutedSharesOutstanding", Concepts: []models.Concept{"SharesDiluted"}},
	// Ambiguous: filers use the same tag for D&A on the income statement
	// and the cash flow add-back.
	{Tag: "us-gaap:DepreciationDepletionAndAmortization", Concepts: []models.Concept{"DepreciationAmortizationCF", "DepreciationAmortizationExpense"}},
	{Tag: "us-gaap:DepreciationAndAmortization", Concepts: []models.Concept{"DepreciationAmortizationCF", "DepreciationAmortizationExpense"}},

	// Comprehensive income
	{Tag: "us-gaap:OtherComprehensiveIncomeLossForeignCurrencyTransactionAndTranslationAdjustmentNetOfTax", Concepts: []models.Concept{"OCIForeignCurrency"}},
	{Tag: "us-gaap:OtherComprehensiveIncomeLossAvailableForSaleSecuritiesAdjustmentNetOfTax", Concepts: []models.Concept{"OCISecurities"}},
	{Tag: "us-gaap:OtherComprehensiveIncomeLossPensionAndOtherPostretirementBenefitPlansAdjustmentNetOfTax", Concepts: []models.Concept{"OCIPension"}},
	{Tag: "us-gaap:OtherComprehensiveIncomeLossDerivativesQualifyingAsHedgesNetOfTax", Concepts: []models.Concept{"OCIHedges"}},
	{Tag: "us-gaap:OtherComprehensiveIncomeLossNetOfTax", Concepts: []models.Concept{"OtherComprehensiveIncome"}},
	{Tag: "us-gaap:ComprehensiveIncomeNetOfTax", Concepts: []models.Concept{"ComprehensiveIncome"}},

	// Cash flow
	{Tag: "us-gaap:ShareBasedCompensation", Concepts: []models.Concept{"StockBasedCompensation"}},
	{Tag: "us-gaap:DeferredIncomeTaxExpenseBenefit", Concepts: []models.Concept{"DeferredIncomeTaxes"}},
	{Tag: "us-gaap:IncreaseDecreaseInAccountsReceivable", Concepts: []models.Concept{"ChangeReceivables"}},
	{Tag: "us-gaap:IncreaseDecreaseInInventories", Concepts: []models.Concept{"ChangeInventories"}},
	{Tag: "us-gaap:IncreaseDecreaseInAccountsPayable", Concepts: []models.Concept{"ChangePayables"}},
	{Tag: "us-gaap:IncreaseDecreaseInOtherOperatingCapitalNet", Concepts: []models.Concept{"ChangeOtherWorkingCapital"}},
	{Tag: "us-gaap:OtherNoncashIncomeExpense", Concepts: []models.Concept{"OtherNoncashItems"}},
	{Tag: "us-gaap:NetCashProvidedByUsedInOperatingActivities", Concepts: []models.Concept{"NetCashOperating"}},
	{Tag: "us-gaap:PaymentsToAcquirePropertyPlantAndEquipment", Concepts: []models.Concept{"CapitalExpenditures"}},
	{Tag: "us-gaap:PaymentsToAcquireProductiveAssets", Concepts: []models.Concept{"CapitalExpenditures"}},
	{Tag: "us-gaap:PaymentsToAcquireBusinessesNetOfCashAcquired", Concepts: []models.Concept{"AcquisitionsNet"}},
	{Tag: "us-gaap:PaymentsToAcquireInvestments", Concepts: []models.Concept{"PurchasesOfInvestments"}},
	{Tag: "us-gaap:ProceedsFromSaleMaturityAndCollectionsOfInvestments", Concepts: []models.Concept{"SalesMaturitiesOfInvestments"}},
	{Tag: "us-gaap:PaymentsForProceedsFromOtherInvestingActivities", Concepts: []models.Concept{"OtherInvesting"}},
	{Tag: "us-gaap:NetCashProvidedByUsedInInvestingActivities", Concepts: []models.Concept{"NetCashInvesting"}},
	{Tag: "us-gaap:ProceedsFromIssuanceOfLongTermDebt", Concepts: []models.Concept{"DebtIssuance"}},
	{Tag: "us-gaap:RepaymentsOfLongTermDebt", Concepts: []models.Concept{"DebtRepayment"}},
	{Tag: "us-gaap:ProceedsFromIssuanceOfCommonStock", Concepts: []models.Concept{"StockIssuance"}},
	{Tag: "us-gaap:PaymentsForRepurchaseOfCommonStock", Concepts: []models.Concept{"StockRepurchases"}},
	{Tag: "us-gaap:PaymentsOfDividends", Concepts: []models.Concept{"DividendsPaid"}},
	{Tag: "us-gaap:PaymentsOfDividendsCommonStock", Concepts: []models.Concept{"DividendsPaid"}},
	{Tag: "us-gaap:ProceedsFromPaymentsForOtherFinancingActivities", Concepts: []models.Concept{"OtherFinancing"}},
	{Tag: "us-gaap:NetCashProvidedByUsedInFinancingActivities", Concepts: []models.Concept{"NetCashFinancing"}},
	{Tag: "us-gaap:EffectOfExchangeRateOnCashCashEquivalentsRestrictedCashAndRestrictedCashEquivalents", Concepts: []models.Concept{"ExchangeRateEffect"}},
	{Tag: "us-gaap:CashCashEquivalentsRestrictedCashAndRestrictedCashEquivalentsPeriodIncreaseDecreaseIncludingExchangeRateEffect", Concepts: []models.Concept{"NetChangeInCash"}},
	{Tag: "us-gaap:CashAndCashEquivalentsPeriodIncreaseDecrease", Concepts: []models.Concept{"NetChangeInCash"}, DeprecatedSince: 2017},
}

// builtinExcluded lists tags that must never be standardized or surfaced:
// structural taxonomy machinery and duplicative document metadata.
var builtinExcluded = []models.Tag{
	"us-gaap:StatementOfFinancialPositionAbstract",
	"us-gaap:IncomeStatementAbstract",
	"us-gaap:StatementOfCashFlowsAbstract",
	"us-gaap:StatementOfStockholdersEquityAbstract",
	"us-gaap:AssetsAbstract",
	"us-gaap:AssetsCurrentAbstract",
	"us-gaap:LiabilitiesAndStockholdersEquityAbstract",
	"us-gaap:LiabilitiesCurrentAbstract",
	"us-gaap:StockholdersEquityAbstract",
	"us-gaap:CommonStockSharesAuthorized",
	"us-gaap:CommonStockSharesIssued",
	"us-gaap:CommonStockParOrStatedValuePerShare",
	"us-gaap:PreferredStockSharesAuthorized",
	"us-gaap:PreferredStockParOrStatedValuePerShare",
	"dei:EntityRegistrantName",
	"dei:EntityCentralIndexKey",
	"dei:DocumentType",
	"dei:DocumentPeriodEndDate",
	"dei:AmendmentFlag",
}
