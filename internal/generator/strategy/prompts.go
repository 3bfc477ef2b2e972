package strategy

import "fmt"

// systemPreamble is prepended to every generation prompt.
const systemPreamble = `You are an expert financial data engineer specializing in generating realistic,
compliant synthetic datasets. Your generated data must follow industry standards,
maintain statistical validity and realistic distributions, include appropriate
correlations between fields, be completely synthetic (no real customer data),
follow the specified schema exactly, and be returned as valid JSON.`

func buildStockPricesPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d realistic stock price records (OHLCV data):

Required fields:
- ticker: Stock ticker symbol (e.g., AAPL, GOOGL, MSFT)
- date: Trading date in YYYY-MM-DD format between %s and %s
- open: Opening price
- high: Highest price (must be >= open and close)
- low: Lowest price (must be <= open and close)
- close: Closing price
- volume: Trading volume (realistic for stock size)
- adj_close: Adjusted closing price

Constraints:
- Prices should show realistic market movements (not random)
- Volume should correlate with price volatility
- Include some uptrends, downtrends, and consolidation periods

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildSecuritiesMasterPrompt(numRecords int, _, _ string) string {
	return fmt.Sprintf(`Generate %d securities master data records:

Required fields:
- ticker: Unique ticker symbol (1-5 uppercase letters)
- isin: International Securities Identification Number (valid format)
- company_name: Realistic company name
- sector: Industry sector (Technology, Healthcare, Finance, Energy, Consumer, Industrial)
- market_cap: Market capitalization in billions
- country: Country of incorporation
- currency: Trading currency (USD, EUR, GBP, etc.)
- exchange: Stock exchange (NYSE, NASDAQ, LSE, etc.)
- listing_date: Date listed on exchange

Constraints:
- Market cap distribution: many small-cap, fewer mid-cap, rare large-cap
- Sector distribution should be realistic

Return as JSON array of objects.`, numRecords)
}

func buildTradingVolumesPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d daily trading volume records:

Required fields:
- ticker: Stock ticker symbol
- trade_date: Date in YYYY-MM-DD format between %s and %s
- total_volume: Total shares traded
- block_trades: Number of block trades
- avg_trade_size: Average trade size in shares
- vwap: Volume-weighted average price
- turnover_usd: Total turnover in USD

Constraints:
- Volume spikes should be rare and plausible
- turnover_usd should roughly equal total_volume * vwap

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildCorporateActionsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d corporate action records:

Required fields:
- ticker: Stock ticker
- action_type: Type (Dividend, Stock Split, Merger, Acquisition, Spin-off)
- announcement_date: When announced, between %s and %s
- effective_date: When effective
- value: Relevant value (dividend amount, split ratio, acquisition price)
- status: Status (Announced, Completed, Cancelled)

Constraints:
- Effective date should be after announcement date
- Dividend values typically 0.10 to 5.00 per share
- Split ratios like 2:1, 3:1, 3:2

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildMarketIndicesPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d market index level records:

Required fields:
- index_name: Index name (e.g., S&P 500, FTSE 100, Nikkei 225)
- date: Date in YYYY-MM-DD format between %s and %s
- open_level: Opening level
- close_level: Closing level
- daily_return_pct: Daily return percentage
- constituents: Number of constituent securities
- total_market_cap_bn: Combined market cap in billions

Constraints:
- Daily returns mostly between -3%% and +3%%
- Level changes must be consistent with daily_return_pct

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildFundInformationPrompt(numRecords int, _, _ string) string {
	return fmt.Sprintf(`Generate %d private equity fund records:

Required fields:
- fund_name: Fund name (e.g., "ABC Capital Fund III")
- vintage_year: Year fund was established (2010-2024)
- fund_size_mm: Fund size in millions USD
- strategy: Strategy (Buyout, Growth, Distressed, Secondary)
- geography: Geographic focus (North America, Europe, Asia, Global)
- target_irr: Target IRR percentage (typically 15-30)
- management_fee: Management fee percentage (typically 1.5-2.5)
- carried_interest: Carried interest percentage (typically 20)
- gp_name: General Partner name
- fund_term_years: Fund term in years (typically 10-12)

Constraints:
- Fund size realistic for strategy (Buyout largest)
- Larger funds typically have lower fee percentages

Return as JSON array of objects.`, numRecords)
}

func buildPortfolioCompaniesPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d portfolio company investment records:

Required fields:
- company_name: Portfolio company name
- fund_name: Investing fund
- sector: Industry sector
- investment_date: Date of investment between %s and %s
- entry_valuation_mm: Entry valuation in millions
- ownership_pct: Ownership percentage acquired (20-100)
- investment_amount_mm: Investment amount in millions
- ebitda_at_entry_mm: EBITDA at entry in millions
- entry_multiple: Entry EV/EBITDA multiple (typically 6-15)
- status: Investment status (Active, Exited, Written-off)

Constraints:
- Investment amount should approximate ownership_pct * entry_valuation_mm

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildDealMetricsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d private equity deal performance records:

Required fields:
- deal_id: Unique deal identifier
- company_name: Company name
- entry_date: Investment date between %s and %s
- exit_date: Exit date (null if still active)
- hold_period_years: Years held (typically 3-7)
- entry_ev_mm: Entry enterprise value in millions
- exit_ev_mm: Exit enterprise value in millions (null if active)
- moic: Multiple on Invested Capital (typically 1.5-5.0)
- irr_pct: Internal Rate of Return percentage (15-40 for successful deals)
- exit_type: Exit type (IPO, Strategic Sale, Secondary Sale, Still Held)

Constraints:
- Exit date after entry date if exited
- MOIC and IRR should be mathematically consistent

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildCapitalCallsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d capital call and distribution records:

Required fields:
- fund_name: Fund name
- event_type: Type (Capital Call, Distribution)
- event_date: Date between %s and %s
- amount_mm: Amount in millions USD
- pct_of_commitment: Percentage of total commitment
- purpose: Purpose (New Investment, Follow-on, Fees, Exit Proceeds)
- cumulative_called_pct: Cumulative percentage called to date

Constraints:
- Capital calls typically 5-20%% of commitment each
- cumulative_called_pct never exceeds 100

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildValuationsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d quarterly portfolio valuation records:

Required fields:
- company_name: Portfolio company name
- valuation_date: Quarter-end date between %s and %s
- fair_value_mm: Fair value in millions
- cost_basis_mm: Original cost basis in millions
- valuation_method: Method (Market Comps, DCF, Recent Transaction)
- ebitda_multiple: Applied EV/EBITDA multiple
- unrealized_gain_pct: Unrealized gain percentage

Constraints:
- Fair values should drift plausibly quarter to quarter
- unrealized_gain_pct consistent with fair value vs cost basis

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildStartupProfilesPrompt(numRecords int, _, _ string) string {
	return fmt.Sprintf(`Generate %d startup profile records:

Required fields:
- startup_name: Company name
- founded_year: Year founded (2015-2024)
- sector: Sector (SaaS, FinTech, HealthTech, E-commerce, AI/ML)
- stage: Current stage (Pre-seed, Seed, Series A, B, C, D, E)
- geography: Location (Silicon Valley, NYC, London, Berlin, Singapore)
- employee_count: Number of employees
- total_funding_mm: Total funding raised in millions
- valuation_mm: Current valuation in millions
- revenue_mm: Annual revenue in millions (null if pre-revenue)
- growth_rate_pct: YoY revenue growth percentage

Constraints:
- Employee count should correlate with stage and funding
- Later stages have higher valuations and funding
- Growth rates typically 50-300 for early stage

Return as JSON array of objects.`, numRecords)
}

func buildFundingRoundsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d funding round records:

Required fields:
- startup_name: Company receiving funding
- round_type: Round type (Pre-seed, Seed, Series A, B, C, D, E)
- round_date: Date of funding round between %s and %s
- amount_mm: Amount raised in millions
- valuation_mm: Post-money valuation in millions
- lead_investor: Lead investor name
- investor_count: Number of participating investors
- equity_sold_pct: Percentage of equity sold (typically 15-25)
- use_of_funds: Primary use (Product Development, Sales & Marketing, Hiring, Expansion)

Constraints:
- Seed: 0.5-3M, Series A: 2-15M, B: 10-50M, C+: 25M+
- Amount should approximate equity_sold_pct * valuation_mm

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildCapTablesPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d cap table snapshot records:

Required fields:
- startup_name: Company name
- as_of_date: Snapshot date between %s and %s
- investor_name: Investor or founder name
- share_class: Share class (Common, Preferred A, Preferred B, Options)
- shares_held: Number of shares held
- ownership_pct: Fully diluted ownership percentage
- investment_mm: Amount invested in millions (null for founders)

Constraints:
- Ownership percentages across a company should be plausible
- Founders hold common, investors hold preferred

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildInvestorSyndicatesPrompt(numRecords int, _, _ string) string {
	return fmt.Sprintf(`Generate %d investor syndicate records:

Required fields:
- syndicate_id: Unique syndicate identifier
- lead_investor: Lead investor name
- co_investors: Comma-separated co-investor names
- startup_name: Target company
- round_type: Round type (Seed, Series A, B, C)
- total_amount_mm: Total syndicate amount in millions
- lead_share_pct: Lead investor's share of the round

Constraints:
- Lead typically takes 30-60%% of the round
- 2-6 co-investors per syndicate

Return as JSON array of objects.`, numRecords)
}

func buildExitScenariosPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d startup exit scenario records:

Required fields:
- startup_name: Company name
- exit_type: Exit type (IPO, Acquisition, Acqui-hire, Shutdown)
- exit_date: Date between %s and %s
- exit_value_mm: Exit value in millions (null for shutdowns)
- total_raised_mm: Total capital raised before exit
- investor_return_multiple: Aggregate investor return multiple
- acquirer: Acquiring company (null for IPO and shutdown)

Constraints:
- IPO and large acquisitions are rare; small acquisitions common
- Return multiples consistent with exit value vs raised capital

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildCustomerProfilesPrompt(numRecords int, _, _ string) string {
	return fmt.Sprintf(`Generate %d synthetic retail banking customer profiles:

Required fields:
- customer_id: Unique customer identifier (e.g., CUST000123)
- age_band: Age band (18-25, 26-35, 36-45, 46-55, 56-65, 65+)
- occupation_category: Occupation category (Salaried, Self-employed, Retired, Student)
- income_band: Annual income band (e.g., "25k-50k", "50k-100k")
- segment: Customer segment (Mass, Affluent, Private)
- tenure_years: Years as customer
- product_count: Number of products held
- digital_active: Whether digitally active (true/false)
- home_region: Broad region, never an address

Constraints:
- No names, addresses, or other personally identifying details
- Segment distribution: mostly Mass, few Private

Return as JSON array of objects.`, numRecords)
}

func buildCasaAccountsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d CASA (current and savings) account records:

Required fields:
- account_id: Unique account identifier
- customer_id: Owning customer identifier
- account_type: Type (Current, Savings)
- open_date: Account opening date between %s and %s
- balance: Current balance
- currency: Account currency
- interest_rate_pct: Interest rate percentage (0 for current accounts)
- status: Status (Active, Dormant, Closed)

Constraints:
- Savings rates typically 0.5-4.5%%
- Balance distribution heavily right-skewed

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildLoanProductsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d loan product records:

Required fields:
- loan_id: Unique loan identifier
- customer_id: Borrower identifier
- product_type: Type (Mortgage, Personal Loan, Auto Loan, Credit Line)
- origination_date: Date between %s and %s
- principal: Original principal amount
- outstanding_balance: Current outstanding balance
- interest_rate_pct: Annual interest rate percentage
- term_months: Loan term in months
- status: Status (Current, Delinquent, Paid Off, Default)

Constraints:
- Mortgages largest and longest; personal loans smallest
- Outstanding balance never exceeds principal for amortizing loans
- Default rate should be low single digits

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildTransactionsPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d banking transaction records:

Required fields:
- transaction_id: Unique transaction identifier
- account_id: Account identifier
- transaction_date: Date between %s and %s
- amount: Transaction amount (negative for debits)
- transaction_type: Type (POS, ATM, Transfer, Direct Debit, Salary)
- merchant_category: Merchant category (Groceries, Fuel, Dining, Utilities, Other)
- channel: Channel (Card, Online, Branch, Mobile)
- balance_after: Balance after transaction

Constraints:
- Most transactions are small debits; salary credits monthly
- Amounts and balances should be internally consistent

Return as JSON array of objects.`, numRecords, startDate, endDate)
}

func buildCreditScoresPrompt(numRecords int, startDate, endDate string) string {
	return fmt.Sprintf(`Generate %d credit score records:

Required fields:
- customer_id: Customer identifier
- score_date: Date of score calculation between %s and %s
- credit_score: Score (300-850)
- score_model: Model used (FICO, VantageScore, Custom)
- payment_history: Payment history score (0-100)
- credit_utilization_pct: Credit utilization percentage (0-100)
- credit_age_months: Age of oldest account in months (1-360)
- total_accounts: Total number of accounts
- recent_inquiries: Hard inquiries in last 12 months
- derogatory_marks: Number of derogatory marks
- risk_category: Category (Excellent, Good, Fair, Poor)

Constraints:
- Excellent: 750-850, Good: 700-749, Fair: 650-699, Poor: 300-649
- risk_category must match credit_score

Return as JSON array of objects.`, numRecords, startDate, endDate)
}
