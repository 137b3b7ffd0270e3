package scenario

import (
	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/cashflow"
	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/costs"
	"github.com/collegeroi/collegeroi/pkg/loans"
	"github.com/collegeroi/collegeroi/pkg/numeric"
	"github.com/collegeroi/collegeroi/pkg/tax"
)

// Metrics is the derived figure set shown in the comparison table.
type Metrics struct {
	FourYearCost       float64 `json:"fourYearCost"`
	FourYearAid        float64 `json:"fourYearAid"`
	FourYearFamily     float64 `json:"fourYearFamily"`
	TotalCost          float64 `json:"totalCost"`
	LoanAmount         float64 `json:"loanAmount"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	TotalInterest      float64 `json:"totalInterest"`
	MonthlyTakeHome    float64 `json:"monthlyTakeHome"`
	NetMonthlyCashFlow float64 `json:"netMonthlyCashFlow"`
	TotalSavings       float64 `json:"totalSavings"`
}

// ComputeMetrics reapplies the full calculation pipeline to a stored
// snapshot. It reads only the snapshot, never live form state, so the
// comparison table reflects exactly the inputs saved at add time. The
// function is pure: calling it twice on the same snapshot yields
// identical results.
func ComputeMetrics(snapshot state.Snapshot) Metrics {
	fourYearCost := numeric.Coerce(snapshot.Inputs.Tuition)
	if !snapshot.Tuition.Empty() {
		fourYearCost = snapshot.Tuition.FourYearCost()
	}

	fourYearAid := numeric.Coerce(snapshot.Inputs.FinancialAid)
	if hasAidEntries(snapshot.Tuition) {
		fourYearAid = snapshot.Tuition.FourYearAid()
	}

	annualFamily := numeric.Coerce(snapshot.Inputs.FamilyContribution)
	loanAmount := costs.FourYearTotal(fourYearCost, fourYearAid, annualFamily)

	years := numeric.CoerceInt(snapshot.Inputs.LoanTerm)
	ratePercent := numeric.Coerce(snapshot.Inputs.LoanInterest)
	monthlyPayment := loans.MonthlyPayment(loanAmount, ratePercent, years)
	totalInterest := loans.TotalInterest(monthlyPayment, years, loanAmount)

	annualSalary := numeric.Coerce(snapshot.Inputs.Salary)
	monthlySalary := annualSalary / constants.MonthsPerYear
	rates := snapshot.TaxRates
	if numeric.IsBlank(rates.Federal) {
		rates.Federal = tax.EffectiveFederalRate(annualSalary)
	}
	takeHome := tax.MonthlyTakeHome(monthlySalary, rates)

	monthlyExpenses := numeric.Coerce(snapshot.Inputs.Expenses)
	if !snapshot.Expenses.Empty() {
		monthlyExpenses = snapshot.Expenses.MonthlyTotal()
	}

	netMonthly := cashflow.NetMonthly(takeHome, monthlyExpenses, monthlyPayment)
	projection := cashflow.TenYearProjection(numeric.Coerce(snapshot.Expenses.Retirement), netMonthly)

	return Metrics{
		FourYearCost:       fourYearCost,
		FourYearAid:        fourYearAid,
		FourYearFamily:     annualFamily * constants.CollegeYears,
		TotalCost:          fourYearCost + totalInterest,
		LoanAmount:         loanAmount,
		MonthlyPayment:     monthlyPayment,
		TotalInterest:      totalInterest,
		MonthlyTakeHome:    takeHome,
		NetMonthlyCashFlow: netMonthly,
		TotalSavings:       projection.Total,
	}
}

func hasAidEntries(breakdown costs.TuitionBreakdown) bool {
	for _, entry := range breakdown.FinancialAid {
		if !numeric.IsBlank(entry) {
			return true
		}
	}
	return false
}
