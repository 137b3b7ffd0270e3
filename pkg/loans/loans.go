// Package loans provides fixed-rate loan amortization calculations.
package loans

import (
	"math"

	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/mathutil"
)

// Payment holds the values for a given monthly payment.
type Payment struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// YearSummary aggregates twelve consecutive months of a schedule.
type YearSummary struct {
	Year      int     `json:"year"`
	Payment   float64 `json:"payment"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
	Months    int     `json:"months"`
}

// MonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula. A zero interest rate divides the
// principal evenly across the term; degenerate inputs yield 0.
func MonthlyPayment(principal, annualRatePercent float64, years int) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}

	termMonths := years * constants.MonthsPerYear
	if annualRatePercent == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1.00+periodicRate, float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicRate / discountFactor
}

// InterestPayment calculates the interest portion of one payment against
// the remaining balance.
func InterestPayment(balance, annualRatePercent float64) float64 {
	return balance * annualRatePercent / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// BuildSchedule creates the complete amortization schedule for a loan.
// The schedule length is deterministic at years*12; an empty schedule is
// the valid no-loan state, not an error. Values keep full floating-point
// precision so late-month balances don't drift from compounded rounding.
func BuildSchedule(principal, annualRatePercent float64, years int) []Payment {
	if principal <= 0 || years <= 0 {
		return nil
	}

	termMonths := years * constants.MonthsPerYear
	monthlyPayment := MonthlyPayment(principal, annualRatePercent, years)

	schedule := make([]Payment, 0, termMonths)
	balance := principal
	for month := 1; month <= termMonths; month++ {
		interest := InterestPayment(balance, annualRatePercent)
		principalPortion := monthlyPayment - interest
		balance = mathutil.Clamp0(balance - principalPortion)
		schedule = append(schedule, Payment{
			Month:     month,
			Payment:   monthlyPayment,
			Principal: principalPortion,
			Interest:  interest,
			Balance:   balance,
		})
	}

	return schedule
}

// TotalInterest calculates the interest paid over the full term, floored
// at zero to guard the zero-payment edge cases.
func TotalInterest(monthlyPayment float64, years int, principal float64) float64 {
	return mathutil.Clamp0(monthlyPayment*float64(years)*constants.MonthsPerYear - principal)
}

// YearlyRollup groups a schedule into consecutive 12-month chunks. The
// chunk balance is the final month's balance, not a sum. A partial final
// chunk is carried through if the schedule length isn't a multiple of 12.
func YearlyRollup(schedule []Payment) []YearSummary {
	if len(schedule) == 0 {
		return nil
	}

	rollup := make([]YearSummary, 0, (len(schedule)+constants.MonthsPerYear-1)/constants.MonthsPerYear)
	var current YearSummary
	for i, payment := range schedule {
		if current.Months == 0 {
			current.Year = i/constants.MonthsPerYear + 1
		}
		current.Payment += payment.Payment
		current.Principal += payment.Principal
		current.Interest += payment.Interest
		current.Balance = payment.Balance
		current.Months++
		if current.Months == constants.MonthsPerYear {
			rollup = append(rollup, current)
			current = YearSummary{}
		}
	}
	if current.Months > 0 {
		rollup = append(rollup, current)
	}

	return rollup
}
