package model

type ProjectionRequest struct {
	TenantID string          `json:"tenant_id"`
	Locale   string          `json:"locale,omitempty"`
	Currency string          `json:"currency,omitempty"`
	Input    ProjectionInput `json:"input"`
}

type CompareRequest struct {
	TenantID string          `json:"tenant_id"`
	Baseline ProjectionInput `json:"baseline"`
	Adjusted ProjectionInput `json:"adjusted"`
}
