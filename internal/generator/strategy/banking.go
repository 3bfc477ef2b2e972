package strategy

// NewBankingStrategy builds the retail banking domain: accounts, lending,
// transactions, and credit data.
func NewBankingStrategy() DatasetStrategy {
	return &bankingStrategy{
		baseStrategy: baseStrategy{
			domain:      "Banking",
			description: "Customer profiles, CASA accounts, loan products, transactions, and credit scores",
			slug:        "banking",
			prompts: map[string]promptBuilder{
				"Customer Profiles": buildCustomerProfilesPrompt,
				"CASA Accounts":     buildCasaAccountsPrompt,
				"Loan Products":     buildLoanProductsPrompt,
				"Transactions":      buildTransactionsPrompt,
				"Credit Scores":     buildCreditScoresPrompt,
			},
		},
	}
}

type bankingStrategy struct {
	baseStrategy
}

// MetadataTags marks customer profile datasets as PII-free on top of the
// standard provenance tags.
func (s *bankingStrategy) MetadataTags(datasetType string) map[string]any {
	tags := s.baseStrategy.MetadataTags(datasetType)
	if datasetType == "Customer Profiles" {
		tags["pii_removed"] = true
	}
	return tags
}
