// Package colleges provides the static reference dataset of college
// sticker prices and median salaries, with lookup and input seeding. The
// lookup interface would allow swapping in a live data source later; the
// baked-in table is the current implementation, not the contract.
package colleges

import (
	"strings"

	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/costs"
	"github.com/collegeroi/collegeroi/pkg/numeric"
)

// College is one reference dataset entry.
type College struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	AnnualTuition   float64 `json:"annualTuition"`
	AnnualRoomBoard float64 `json:"annualRoomBoard"`
	MedianSalary    float64 `json:"medianSalary"`
}

var colleges = []College{
	{1, "Princeton University", 62400, 20600, 93000},
	{2, "Massachusetts Institute of Technology", 63000, 20500, 106000},
	{3, "Harvard University", 59000, 21000, 91000},
	{4, "Stanford University", 65000, 21000, 98000},
	{5, "Yale University", 67500, 20500, 89000},
	{6, "California Institute of Technology", 63000, 21000, 93000},
	{7, "Duke University", 66000, 20500, 84000},
	{8, "Johns Hopkins University", 65000, 19500, 75000},
	{9, "Northwestern University", 68000, 21000, 73000},
	{10, "University of Pennsylvania", 68500, 19500, 89000},
	{11, "Cornell University", 68000, 18000, 84000},
	{12, "University of Chicago", 67000, 19500, 79000},
	{13, "Brown University", 68500, 17500, 78000},
	{14, "Columbia University", 69500, 18500, 83000},
	{15, "Dartmouth College", 67000, 19500, 89000},
	{16, "University of California - Los Angeles (Out-of-State)", 48500, 18500, 75000},
	{17, "University of California - Berkeley (Out-of-State)", 48500, 20500, 88000},
	{18, "Rice University", 61500, 16500, 81000},
	{19, "University of Notre Dame", 65500, 18500, 83000},
	{20, "Vanderbilt University", 65500, 21500, 79000},
}

// Lookup filters the dataset with a case-insensitive substring match,
// preserving rank order. An empty query returns the whole list.
func Lookup(query string) []College {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return append([]College(nil), colleges...)
	}

	var matches []College
	for _, college := range colleges {
		if strings.Contains(strings.ToLower(college.Name), trimmed) {
			matches = append(matches, college)
		}
	}
	return matches
}

// Find returns the college with the exact (case-insensitive) name.
func Find(name string) (College, bool) {
	for _, college := range colleges {
		if strings.EqualFold(college.Name, strings.TrimSpace(name)) {
			return college, true
		}
	}
	return College{}, false
}

// Seed fills a snapshot's college-derived fields from a dataset entry:
// the salary, and a four-year tuition breakdown with year 1 at the
// sticker price and later years projected at the given inflation rate
// (the dataset default is 3%).
func Seed(college College, inflationPercent float64) state.Snapshot {
	var snapshot state.Snapshot
	snapshot.Inputs.CollegeName = college.Name
	snapshot.Inputs.Salary = numeric.FormatWhole(college.MedianSalary)
	snapshot.InflationRate = numeric.FormatWhole(inflationPercent)

	snapshot.Tuition.Tuition[0] = numeric.FormatWhole(college.AnnualTuition)
	snapshot.Tuition.RoomBoard[0] = numeric.FormatWhole(college.AnnualRoomBoard)
	costs.CopyYear1Forward(&snapshot.Tuition, inflationPercent)

	snapshot.Inputs.Tuition = numeric.FormatWhole(snapshot.Tuition.FourYearCost())
	return snapshot
}

// SeedDefault applies the default 3% inflation assumption.
func SeedDefault(college College) state.Snapshot {
	return Seed(college, constants.DefaultInflationPercent)
}
