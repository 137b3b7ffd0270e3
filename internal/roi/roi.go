// Package roi assembles the full result set for one plan snapshot: the
// comparison metrics, the amortization schedule and its yearly rollup,
// the monthly ledger, and the savings projection.
package roi

import (
	"go.uber.org/zap"

	"github.com/collegeroi/collegeroi/internal/scenario"
	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/cashflow"
	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/loans"
	"github.com/collegeroi/collegeroi/pkg/numeric"
	"github.com/collegeroi/collegeroi/pkg/tax"
)

// Result holds everything derived from one snapshot.
type Result struct {
	CollegeName          string               `json:"collegeName"`
	Metrics              scenario.Metrics     `json:"metrics"`
	EffectiveFederalRate string               `json:"effectiveFederalRate"`
	Schedule             []loans.Payment      `json:"schedule"`
	Rollup               []loans.YearSummary  `json:"rollup"`
	Ledger               []cashflow.LedgerRow `json:"ledger"`
	Projection           cashflow.Projection  `json:"projection"`
	FieldErrors          []state.FieldError   `json:"fieldErrors,omitempty"`
}

// Compute derives the full result set from a snapshot. Validation
// problems are reported alongside best-effort numbers, never instead of
// them.
func Compute(logger *zap.Logger, snapshot state.Snapshot) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics := scenario.ComputeMetrics(snapshot)

	years := numeric.CoerceInt(snapshot.Inputs.LoanTerm)
	ratePercent := numeric.Coerce(snapshot.Inputs.LoanInterest)
	schedule := loans.BuildSchedule(metrics.LoanAmount, ratePercent, years)

	annualSalary := numeric.Coerce(snapshot.Inputs.Salary)
	monthlySalary := annualSalary / constants.MonthsPerYear
	rates := snapshot.TaxRates
	if numeric.IsBlank(rates.Federal) {
		rates.Federal = tax.EffectiveFederalRate(annualSalary)
	}
	monthlyTax := tax.MonthlyTax(monthlySalary, rates)

	monthlyExpenses := numeric.Coerce(snapshot.Inputs.Expenses)
	if !snapshot.Expenses.Empty() {
		monthlyExpenses = snapshot.Expenses.MonthlyTotal()
	}

	result := Result{
		CollegeName:          snapshot.Inputs.CollegeName,
		Metrics:              metrics,
		EffectiveFederalRate: tax.EffectiveFederalRate(annualSalary),
		Schedule:             schedule,
		Rollup:               loans.YearlyRollup(schedule),
		Ledger:               cashflow.Ledger(monthlySalary, monthlyTax, metrics.MonthlyPayment, monthlyExpenses),
		Projection:           cashflow.TenYearProjection(numeric.Coerce(snapshot.Expenses.Retirement), metrics.NetMonthlyCashFlow),
		FieldErrors:          state.Validate(snapshot),
	}

	logger.Debug("plan computed",
		zap.String("op", "roi.Compute"),
		zap.String("college", result.CollegeName),
		zap.Int("scheduleMonths", len(result.Schedule)),
		zap.Int("fieldErrors", len(result.FieldErrors)),
	)

	return result
}
