package strategy

// NewPrivateEquityStrategy builds the private equity domain: fund and
// portfolio data across the investment lifecycle.
func NewPrivateEquityStrategy() DatasetStrategy {
	return &baseStrategy{
		domain:      "Private Equity",
		description: "Fund information, portfolio companies, deal metrics, capital calls, and valuations",
		slug:        "private_equity",
		prompts: map[string]promptBuilder{
			"Fund Information":    buildFundInformationPrompt,
			"Portfolio Companies": buildPortfolioCompaniesPrompt,
			"Deal Metrics":        buildDealMetricsPrompt,
			"Capital Calls":       buildCapitalCallsPrompt,
			"Valuations":          buildValuationsPrompt,
		},
	}
}
