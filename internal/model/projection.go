package model

// ProjectionInput holds the personal financial parameters a projection
// is computed from. Ages are whole years; return and inflation are
// percentages (7 means 7%); monetary fields are currency units.
// The caller is responsible for the age ordering current <= retirement
// <= life expectancy; the engine accepts any finite values.
type ProjectionInput struct {
	CurrentAge          int     `json:"current_age"`
	RetirementAge       int     `json:"retirement_age"`
	LifeExpectancy      int     `json:"life_expectancy"`
	CurrentSavings      float64 `json:"current_savings"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	ExpectedReturn      float64 `json:"expected_return"`
	InflationRate       float64 `json:"inflation_rate"`
	DesiredIncome       float64 `json:"desired_income"`
	IncludeStatePension bool    `json:"include_state_pension"`
}

// ProjectionResult is the derived outcome. Monetary fields are rounded
// to the nearest whole currency unit. Gap is the absolute difference
// between desired and projected income; IsShortfall carries the sign.
type ProjectionResult struct {
	TotalSavings float64 `json:"total_savings"`
	AnnualIncome float64 `json:"annual_income"`
	Gap          float64 `json:"gap"`
	IsShortfall  bool    `json:"is_shortfall"`
}

// ProjectionBreakdown reports the intermediate figures of a projection.
// YearsInRetirement is informational only; the payout uses a fixed
// withdrawal rate rather than annuitizing over the retirement span.
type ProjectionBreakdown struct {
	YearsToInvest            int     `json:"years_to_invest"`
	YearsInRetirement        int     `json:"years_in_retirement"`
	RealRate                 float64 `json:"real_rate"`
	MonthlyRate              float64 `json:"monthly_rate"`
	FutureValueSavings       float64 `json:"future_value_savings"`
	FutureValueContributions float64 `json:"future_value_contributions"`
	AnnualWithdrawal         float64 `json:"annual_withdrawal"`
	StatePensionAmount       float64 `json:"state_pension_amount"`
}
