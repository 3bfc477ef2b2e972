package strategy

// NewVentureCapitalStrategy builds the venture capital domain: startup and
// funding ecosystem data.
func NewVentureCapitalStrategy() DatasetStrategy {
	return &baseStrategy{
		domain:      "Venture Capital",
		description: "Startup profiles, funding rounds, cap tables, investor syndicates, and exit scenarios",
		slug:        "venture_capital",
		prompts: map[string]promptBuilder{
			"Startup Profiles":    buildStartupProfilesPrompt,
			"Funding Rounds":      buildFundingRoundsPrompt,
			"Cap Tables":          buildCapTablesPrompt,
			"Investor Syndicates": buildInvestorSyndicatesPrompt,
			"Exit Scenarios":      buildExitScenariosPrompt,
		},
	}
}
