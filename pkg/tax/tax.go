// Package tax estimates federal bracket rates and blended monthly taxes.
// Figures are illustrative estimates, not tax advice.
package tax

import (
	"math"

	"github.com/collegeroi/collegeroi/pkg/format"
	"github.com/collegeroi/collegeroi/pkg/mathutil"
	"github.com/collegeroi/collegeroi/pkg/numeric"
)

// StandardDeduction is the single-filer standard deduction applied before
// walking the bracket table.
const StandardDeduction = 14600.0

// bracket is one marginal tax bracket with a cumulative upper bound.
type bracket struct {
	limit float64
	rate  float64
}

// federalBrackets is the fixed progressive bracket table (2024 single filer).
var federalBrackets = []bracket{
	{11600, 0.10},
	{47150, 0.12},
	{100525, 0.22},
	{191950, 0.24},
	{243725, 0.32},
	{609350, 0.35},
	{math.Inf(1), 0.37},
}

// Rates holds the flat percentage components applied to gross monthly
// salary. The federal rate is pre-seeded from the bracket estimate but
// remains user-editable, so all components stay raw strings.
type Rates struct {
	Federal        string `json:"federal" yaml:"federal"`
	State          string `json:"state" yaml:"state"`
	City           string `json:"city" yaml:"city"`
	SocialSecurity string `json:"socialSecurity" yaml:"socialSecurity"`
	Medicare       string `json:"medicare" yaml:"medicare"`
}

// Total sums all rate components as percentages.
func (r Rates) Total() float64 {
	return numeric.Coerce(r.Federal) +
		numeric.Coerce(r.State) +
		numeric.Coerce(r.City) +
		numeric.Coerce(r.SocialSecurity) +
		numeric.Coerce(r.Medicare)
}

// EffectiveFederalRate applies the progressive bracket table to taxable
// income (salary less the standard deduction) and returns the blended
// rate as a percentage of gross salary, formatted to one decimal place.
// Salary at or below zero yields "0.0".
func EffectiveFederalRate(annualSalary float64) string {
	if annualSalary <= 0 {
		return "0.0"
	}

	taxableIncome := mathutil.Clamp0(annualSalary - StandardDeduction)

	tax := 0.0
	previousLimit := 0.0
	for _, b := range federalBrackets {
		if taxableIncome <= previousLimit {
			break
		}
		tax += (math.Min(taxableIncome, b.limit) - previousLimit) * b.rate
		previousLimit = b.limit
	}

	return format.Percent1(tax / annualSalary * 100)
}

// MonthlyTax applies the summed flat rates to gross monthly salary.
func MonthlyTax(monthlySalary float64, rates Rates) float64 {
	return mathutil.ApplyPercentage(monthlySalary, rates.Total())
}

// MonthlyTakeHome returns gross monthly salary less the blended tax.
func MonthlyTakeHome(monthlySalary float64, rates Rates) float64 {
	return monthlySalary - MonthlyTax(monthlySalary, rates)
}
