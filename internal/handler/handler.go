package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"retirement-engine/internal/engine"
	"retirement-engine/internal/format"
	"retirement-engine/internal/model"
	"retirement-engine/internal/penrates"
)

// Route dispatches calculation requests by path.
func Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/projection":
		handleProjection(ctx)
	case "/v1/projection/compare":
		handleCompare(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := engine.Process(&req, penrates.AnnualAmount())

	if req.Locale != "" && req.Currency != "" && resp.CalculationMetadata.CalculationOutcome == model.OutcomeSuccess {
		resp.CalculationResult.Display = display(req.Locale, req.Currency, resp.CalculationResult.Result)
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Compare(&req, penrates.AnnualAmount()))
}

// display formats the monetary result fields for the requested locale.
// A bad locale or currency code is not worth failing the calculation
// over; the numeric result stands on its own.
func display(locale, code string, r model.ProjectionResult) *model.ProjectionDisplay {
	total, err := format.Amount(locale, code, r.TotalSavings)
	if err != nil {
		return nil
	}
	income, err := format.Amount(locale, code, r.AnnualIncome)
	if err != nil {
		return nil
	}
	gap, err := format.Amount(locale, code, r.Gap)
	if err != nil {
		return nil
	}
	return &model.ProjectionDisplay{
		TotalSavings: total,
		AnnualIncome: income,
		Gap:          gap,
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, body interface{}) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	json.NewEncoder(ctx).Encode(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
