package strategy

// NewCapitalMarketsStrategy builds the capital markets domain: exchange-traded
// instrument data such as prices, volumes, and corporate actions.
func NewCapitalMarketsStrategy() DatasetStrategy {
	return &baseStrategy{
		domain:      "Capital Markets",
		description: "Stock prices, securities master data, trading volumes, corporate actions, and market indices",
		slug:        "capital_markets",
		prompts: map[string]promptBuilder{
			"Stock Prices":      buildStockPricesPrompt,
			"Securities Master": buildSecuritiesMasterPrompt,
			"Trading Volumes":   buildTradingVolumesPrompt,
			"Corporate Actions": buildCorporateActionsPrompt,
			"Market Indices":    buildMarketIndicesPrompt,
		},
	}
}
