package model

type ProjectionResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   ProjectionOutcome   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type ProjectionOutcome struct {
	Messages  []CalculationMessage `json:"messages"`
	Result    ProjectionResult     `json:"result"`
	Breakdown ProjectionBreakdown  `json:"breakdown"`
	Display   *ProjectionDisplay   `json:"display,omitempty"`
}

// ProjectionDisplay holds locale-formatted currency strings for the
// monetary result fields. Present only when the request asked for them.
type ProjectionDisplay struct {
	TotalSavings string `json:"total_savings"`
	AnnualIncome string `json:"annual_income"`
	Gap          string `json:"gap"`
}

type CompareResponse struct {
	CalculationMetadata CalculationMetadata      `json:"calculation_metadata"`
	Messages            []CalculationMessage     `json:"messages"`
	Baseline            ProjectionResult         `json:"baseline"`
	Adjusted            ProjectionResult         `json:"adjusted"`
	ResultPatch         []map[string]interface{} `json:"result_patch"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
