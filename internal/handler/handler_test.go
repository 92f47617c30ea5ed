package handler

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"retirement-engine/internal/model"
)

func serve(method, path string, body []byte) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("http://engine" + path)
	if body != nil {
		req.SetBody(body)
	}

	var ctx fasthttp.RequestCtx
	ctx.Init(&req, nil, nil)
	Route(&ctx)
	return &ctx
}

const projectionBody = `{
	"tenant_id": "test-tenant",
	"input": {
		"current_age": 30,
		"retirement_age": 65,
		"life_expectancy": 85,
		"current_savings": 50000,
		"monthly_contribution": 500,
		"expected_return": 7,
		"inflation_rate": 2,
		"desired_income": 40000,
		"include_state_pension": true
	}
}`

func TestProjection(t *testing.T) {
	ctx := serve("POST", "/v1/projection", []byte(projectionBody))

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var resp model.ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Result.TotalSavings <= 0 {
		t.Fatalf("expected positive total savings, got %v", resp.CalculationResult.Result.TotalSavings)
	}
	if resp.CalculationResult.Display != nil {
		t.Fatal("expected no display strings without a locale")
	}
}

func TestProjectionWithDisplay(t *testing.T) {
	body := `{
		"tenant_id": "test-tenant",
		"locale": "en-GB",
		"currency": "GBP",
		"input": {
			"current_age": 30,
			"retirement_age": 65,
			"life_expectancy": 85,
			"current_savings": 50000,
			"monthly_contribution": 500,
			"expected_return": 7,
			"inflation_rate": 2,
			"desired_income": 40000,
			"include_state_pension": true
		}
	}`

	ctx := serve("POST", "/v1/projection", []byte(body))

	var resp model.ProjectionResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.CalculationResult.Display == nil {
		t.Fatal("expected display strings for en-GB/GBP")
	}
	if resp.CalculationResult.Display.TotalSavings == "" {
		t.Fatal("expected a formatted total savings string")
	}
}

func TestProjectionWrongMethod(t *testing.T) {
	ctx := serve("GET", "/v1/projection", nil)

	if ctx.Response.StatusCode() != fasthttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", ctx.Response.StatusCode())
	}
}

func TestProjectionBadBody(t *testing.T) {
	ctx := serve("POST", "/v1/projection", []byte("{not json"))

	if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
	}

	var errResp model.ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Status != fasthttp.StatusBadRequest {
		t.Fatalf("expected error status 400, got %d", errResp.Status)
	}
}

func TestUnknownPath(t *testing.T) {
	ctx := serve("POST", "/v1/nope", nil)

	if ctx.Response.StatusCode() != fasthttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
	}
}

func TestCompare(t *testing.T) {
	body := `{
		"tenant_id": "test-tenant",
		"baseline": {
			"current_age": 30,
			"retirement_age": 65,
			"life_expectancy": 85,
			"current_savings": 50000,
			"monthly_contribution": 500,
			"expected_return": 7,
			"inflation_rate": 2,
			"desired_income": 40000,
			"include_state_pension": true
		},
		"adjusted": {
			"current_age": 30,
			"retirement_age": 65,
			"life_expectancy": 85,
			"current_savings": 50000,
			"monthly_contribution": 800,
			"expected_return": 7,
			"inflation_rate": 2,
			"desired_income": 40000,
			"include_state_pension": true
		}
	}`

	ctx := serve("POST", "/v1/projection/compare", []byte(body))

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	var resp model.CompareResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(resp.ResultPatch) == 0 {
		t.Fatal("expected a non-empty result patch")
	}
	if resp.Adjusted.TotalSavings <= resp.Baseline.TotalSavings {
		t.Fatal("expected higher savings in the adjusted scenario")
	}
}
