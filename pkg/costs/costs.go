// Package costs aggregates tuition, aid, and expense breakdowns into the
// totals the rest of the calculation pipeline consumes.
package costs

import (
	"math"

	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/mathutil"
	"github.com/collegeroi/collegeroi/pkg/numeric"
)

// TuitionBreakdown holds the per-year tuition, room & board, and financial
// aid entries as the user typed them. Entries stay strings so that blank
// fields are distinguishable from explicit zeros.
type TuitionBreakdown struct {
	Tuition      [constants.CollegeYears]string `json:"tuition" yaml:"tuition"`
	RoomBoard    [constants.CollegeYears]string `json:"roomBoard" yaml:"roomBoard"`
	FinancialAid [constants.CollegeYears]string `json:"financialAid" yaml:"financialAid"`
}

// ExpenseBreakdown holds the named monthly expense categories.
type ExpenseBreakdown struct {
	Rent           string `json:"rent" yaml:"rent"`
	Groceries      string `json:"groceries" yaml:"groceries"`
	EatingOut      string `json:"eatingOut" yaml:"eatingOut"`
	Utilities      string `json:"utilities" yaml:"utilities"`
	Transportation string `json:"transportation" yaml:"transportation"`
	Healthcare     string `json:"healthcare" yaml:"healthcare"`
	Miscellaneous  string `json:"miscellaneous" yaml:"miscellaneous"`
	Retirement     string `json:"retirement" yaml:"retirement"`
}

// SumBreakdown parses each entry as a floating point number, treating
// empty or unparsable values as 0, and returns the sum.
func SumBreakdown(entries map[string]string) float64 {
	total := 0.0
	for _, value := range entries {
		total += numeric.Coerce(value)
	}
	return total
}

// ProjectYear applies rate as compound annual growth to baseValue over
// yearOffset years, rounded to the nearest whole unit.
func ProjectYear(baseValue, rate float64, yearOffset int) float64 {
	return math.Round(baseValue * math.Pow(1+rate, float64(yearOffset)))
}

// CopyYear1Forward recomputes years 2 through 4 of tuition and room &
// board from the year-1 entries with inflation compounding. Blank year-1
// entries propagate as blank rather than fabricating zeros. Financial aid
// is left untouched; aid awards do not inflate mechanically.
func CopyYear1Forward(breakdown *TuitionBreakdown, inflationRatePercent float64) {
	rate := inflationRatePercent / constants.PercentageMultiplier
	projectForward(&breakdown.Tuition, rate)
	projectForward(&breakdown.RoomBoard, rate)
}

func projectForward(years *[constants.CollegeYears]string, rate float64) {
	if numeric.IsBlank(years[0]) {
		for i := 1; i < constants.CollegeYears; i++ {
			years[i] = ""
		}
		return
	}
	base := numeric.Coerce(years[0])
	for i := 1; i < constants.CollegeYears; i++ {
		years[i] = numeric.FormatWhole(ProjectYear(base, rate, i))
	}
}

// FourYearCost sums tuition and room & board across all four years.
func (b TuitionBreakdown) FourYearCost() float64 {
	return sumYears(b.Tuition) + sumYears(b.RoomBoard)
}

// FourYearAid sums financial aid across all four years.
func (b TuitionBreakdown) FourYearAid() float64 {
	return sumYears(b.FinancialAid)
}

// Empty reports whether no entry in the breakdown has been filled in.
func (b TuitionBreakdown) Empty() bool {
	for i := 0; i < constants.CollegeYears; i++ {
		if !numeric.IsBlank(b.Tuition[i]) || !numeric.IsBlank(b.RoomBoard[i]) || !numeric.IsBlank(b.FinancialAid[i]) {
			return false
		}
	}
	return true
}

func sumYears(years [constants.CollegeYears]string) float64 {
	total := 0.0
	for _, value := range years {
		total += numeric.Coerce(value)
	}
	return total
}

// Entries returns the expense categories as a name -> value mapping.
func (e ExpenseBreakdown) Entries() map[string]string {
	return map[string]string{
		"rent":           e.Rent,
		"groceries":      e.Groceries,
		"eatingOut":      e.EatingOut,
		"utilities":      e.Utilities,
		"transportation": e.Transportation,
		"healthcare":     e.Healthcare,
		"miscellaneous":  e.Miscellaneous,
		"retirement":     e.Retirement,
	}
}

// MonthlyTotal sums all expense categories.
func (e ExpenseBreakdown) MonthlyTotal() float64 {
	return SumBreakdown(e.Entries())
}

// Empty reports whether no expense category has been filled in.
func (e ExpenseBreakdown) Empty() bool {
	for _, value := range e.Entries() {
		if !numeric.IsBlank(value) {
			return false
		}
	}
	return true
}

// FourYearTotal derives the loan principal: total cost less aid and the
// family contribution over four years, floored at zero. Surplus aid is
// not modeled as negative debt.
func FourYearTotal(tuition, financialAid, annualFamilyContribution float64) float64 {
	return mathutil.Clamp0(tuition - financialAid - annualFamilyContribution*constants.CollegeYears)
}
