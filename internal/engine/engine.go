package engine

import (
	"fmt"
	"math"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"retirement-engine/internal/jsonpatch"
	"retirement-engine/internal/model"
)

const (
	// WithdrawalRate is the fixed fraction of retirement savings assumed
	// safely withdrawable each year. The payout deliberately does not
	// annuitize over the retirement span.
	WithdrawalRate = 0.04

	StatePensionWeekly = 203.85
	StatePensionAnnual = StatePensionWeekly * 52
)

// Project computes a retirement projection from the given inputs using
// the built-in state pension amount. It is a pure function: no side
// effects, no errors, and non-finite intermediate values propagate into
// the result.
func Project(in model.ProjectionInput) model.ProjectionResult {
	return ProjectWith(in, StatePensionAnnual)
}

// ProjectWith is Project with a caller-supplied annual state pension
// amount, used when a live rate lookup overrides the built-in constant.
func ProjectWith(in model.ProjectionInput, statePensionAnnual float64) model.ProjectionResult {
	result, _ := compute(in, statePensionAnnual)
	return result
}

// Breakdown exposes the intermediate figures of the same computation.
func Breakdown(in model.ProjectionInput, statePensionAnnual float64) model.ProjectionBreakdown {
	_, breakdown := compute(in, statePensionAnnual)
	return breakdown
}

func compute(in model.ProjectionInput, statePensionAnnual float64) (model.ProjectionResult, model.ProjectionBreakdown) {
	yearsToInvest := in.RetirementAge - in.CurrentAge
	yearsInRetirement := in.LifeExpectancy - in.RetirementAge

	// Real rate compounds the nominal return against inflation rather
	// than subtracting the percentages.
	realRate := (1+in.ExpectedReturn/100)/(1+in.InflationRate/100) - 1

	fvSavings := in.CurrentSavings * math.Pow(1+realRate, float64(yearsToInvest))

	monthlyRate := realRate / 12
	months := yearsToInvest * 12

	var fvContributions float64
	if monthlyRate == 0 {
		// Annuity formula divides by the rate; a zero real rate means no
		// growth, so the contributions simply sum.
		fvContributions = in.MonthlyContribution * float64(months)
	} else {
		fvContributions = in.MonthlyContribution * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	}

	totalSavings := fvSavings + fvContributions
	withdrawal := totalSavings * WithdrawalRate

	income := withdrawal
	var pension float64
	if in.IncludeStatePension {
		pension = statePensionAnnual
		income += pension
	}

	gap := in.DesiredIncome - income

	result := model.ProjectionResult{
		TotalSavings: math.Round(totalSavings),
		AnnualIncome: math.Round(income),
		Gap:          math.Round(math.Abs(gap)),
		IsShortfall:  gap > 0,
	}

	breakdown := model.ProjectionBreakdown{
		YearsToInvest:            yearsToInvest,
		YearsInRetirement:        yearsInRetirement,
		RealRate:                 realRate,
		MonthlyRate:              monthlyRate,
		FutureValueSavings:       fvSavings,
		FutureValueContributions: fvContributions,
		AnnualWithdrawal:         withdrawal,
		StatePensionAmount:       pension,
	}

	return result, breakdown
}

// Process runs a projection and wraps it in the calculation envelope:
// metadata with id and timing, warnings for degenerate inputs, and a
// FAILURE outcome when the arithmetic produced non-finite values (the
// envelope must stay JSON-encodable, so such results are zeroed here
// rather than serialized).
func Process(req *model.ProjectionRequest, statePensionAnnual float64) *model.ProjectionResponse {
	start := time.Now()

	result, breakdown := compute(req.Input, statePensionAnnual)

	allMessages := spanWarnings(req.Input, "")
	outcome := model.OutcomeSuccess

	if !finiteResult(result) {
		allMessages = append(allMessages, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "NON_FINITE_RESULT",
			Message: "Projection produced a non-finite value",
		})
		outcome = model.OutcomeFailure
		result = model.ProjectionResult{}
		breakdown = model.ProjectionBreakdown{}
	}

	for i := range allMessages {
		allMessages[i].ID = i
	}
	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.ProjectionResponse{
		CalculationMetadata: metadata(req.TenantID, now, elapsed, outcome),
		CalculationResult: model.ProjectionOutcome{
			Messages:  allMessages,
			Result:    result,
			Breakdown: breakdown,
		},
	}
}

// Compare projects a baseline and an adjusted scenario with the same
// state pension amount and reports the RFC 6902 patch between the two
// result records.
func Compare(req *model.CompareRequest, statePensionAnnual float64) *model.CompareResponse {
	start := time.Now()

	baseline := ProjectWith(req.Baseline, statePensionAnnual)
	adjusted := ProjectWith(req.Adjusted, statePensionAnnual)

	allMessages := spanWarnings(req.Baseline, "baseline")
	allMessages = append(allMessages, spanWarnings(req.Adjusted, "adjusted")...)
	outcome := model.OutcomeSuccess

	var patch []map[string]interface{}
	if !finiteResult(baseline) || !finiteResult(adjusted) {
		allMessages = append(allMessages, model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    "NON_FINITE_RESULT",
			Message: "One of the scenarios produced a non-finite value",
		})
		outcome = model.OutcomeFailure
		baseline = model.ProjectionResult{}
		adjusted = model.ProjectionResult{}
		patch = []map[string]interface{}{}
	} else {
		patch = jsonpatch.Diff(resultDocument(baseline), resultDocument(adjusted), "")
		if patch == nil {
			patch = []map[string]interface{}{}
		}
	}

	for i := range allMessages {
		allMessages[i].ID = i
	}
	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CompareResponse{
		CalculationMetadata: metadata(req.TenantID, now, elapsed, outcome),
		Messages:            allMessages,
		Baseline:            baseline,
		Adjusted:            adjusted,
		ResultPatch:         patch,
	}
}

func metadata(tenantID string, now time.Time, elapsed time.Duration, outcome string) model.CalculationMetadata {
	return model.CalculationMetadata{
		CalculationID:          uuid.New().String(),
		TenantID:               tenantID,
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     outcome,
	}
}

// spanWarnings flags inverted age spans. They are allowed through the
// math, which stays defined but meaningless for them.
func spanWarnings(in model.ProjectionInput, scenario string) []model.CalculationMessage {
	prefix := ""
	if scenario != "" {
		prefix = scenario + ": "
	}

	var msgs []model.CalculationMessage
	if in.RetirementAge < in.CurrentAge {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_INVESTMENT_SPAN",
			Message: fmt.Sprintf("%sRetirement age %d is before current age %d", prefix, in.RetirementAge, in.CurrentAge),
		})
	}
	if in.LifeExpectancy < in.RetirementAge {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_RETIREMENT_SPAN",
			Message: fmt.Sprintf("%sLife expectancy %d is before retirement age %d", prefix, in.LifeExpectancy, in.RetirementAge),
		})
	}
	return msgs
}

func finiteResult(r model.ProjectionResult) bool {
	return finite(r.TotalSavings) && finite(r.AnnualIncome) && finite(r.Gap)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func resultDocument(r model.ProjectionResult) interface{} {
	b, _ := json.Marshal(r)
	var doc interface{}
	json.Unmarshal(b, &doc)
	return doc
}
