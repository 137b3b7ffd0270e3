// Package cashflow combines take-home pay, expense, and loan figures into
// monthly net cash flow, a fixed monthly ledger, and a multi-year savings
// projection.
package cashflow

import "github.com/collegeroi/collegeroi/pkg/constants"

// Projection holds the linear savings extrapolation over the projection
// horizon. No compounding or escalation is applied; salary, expenses, and
// the loan payment are held flat for the full horizon.
type Projection struct {
	Contribution401k   float64 `json:"contribution401k"`
	NetFlowAccumulated float64 `json:"netFlowAccumulated"`
	Total              float64 `json:"total"`
}

// LedgerRow is one line of the monthly cash ledger.
type LedgerRow struct {
	Item    string  `json:"item"`
	Amount  float64 `json:"amount"`
	Balance float64 `json:"balance"`
}

// NetMonthly returns take-home pay less living expenses and the loan
// payment. A negative result is a valid, flagged outcome, not an error.
func NetMonthly(takeHome, monthlyExpenses, monthlyLoanPayment float64) float64 {
	return takeHome - monthlyExpenses - monthlyLoanPayment
}

// TenYearProjection extrapolates the 401(k) contribution and net cash
// flow linearly across the projection horizon.
func TenYearProjection(monthly401k, netMonthlyCashFlow float64) Projection {
	months := float64(constants.MonthsPerYear * constants.ProjectionYears)
	contribution := monthly401k * months
	accumulated := netMonthlyCashFlow * months
	return Projection{
		Contribution401k:   contribution,
		NetFlowAccumulated: accumulated,
		Total:              contribution + accumulated,
	}
}

// Ledger builds the deterministic four-row monthly ledger: salary in,
// then taxes, loan payment, and expenses out, each row carrying the
// running balance.
func Ledger(monthlyGross, monthlyTax, monthlyLoanPayment, monthlyExpenses float64) []LedgerRow {
	rows := make([]LedgerRow, 0, 4)
	balance := monthlyGross
	rows = append(rows, LedgerRow{Item: "Salary", Amount: monthlyGross, Balance: balance})

	for _, entry := range []struct {
		item   string
		amount float64
	}{
		{"Taxes", monthlyTax},
		{"Loan Payment", monthlyLoanPayment},
		{"Expenses", monthlyExpenses},
	} {
		balance -= entry.amount
		rows = append(rows, LedgerRow{Item: entry.item, Amount: -entry.amount, Balance: balance})
	}

	return rows
}
