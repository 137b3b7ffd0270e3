// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/collegeroi/collegeroi/internal/roi"
	"github.com/collegeroi/collegeroi/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result roi.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Results for %s ---\n", result.CollegeName)
	fmt.Printf("Four-year cost:       %s\n", format.Currency(result.Metrics.FourYearCost))
	fmt.Printf("Financial aid:        %s\n", format.Currency(result.Metrics.FourYearAid))
	fmt.Printf("Family contribution:  %s\n", format.Currency(result.Metrics.FourYearFamily))
	fmt.Printf("Loan amount:          %s\n", format.Currency(result.Metrics.LoanAmount))
	fmt.Printf("Monthly payment:      %s\n", format.Currency(result.Metrics.MonthlyPayment))
	fmt.Printf("Total interest:       %s\n", format.Currency(result.Metrics.TotalInterest))
	fmt.Printf("Total cost:           %s\n", format.Currency(result.Metrics.TotalCost))
	fmt.Printf("Effective fed. rate:  %s%%\n", result.EffectiveFederalRate)
	fmt.Printf("Monthly take-home:    %s\n", format.Currency(result.Metrics.MonthlyTakeHome))
	fmt.Printf("Net monthly flow:     %s\n", format.Currency(result.Metrics.NetMonthlyCashFlow))
	fmt.Printf("10-year savings:      %s\n", format.Currency(result.Metrics.TotalSavings))

	if len(result.Ledger) > 0 {
		fmt.Printf("\nMonthly ledger\n")
		fmt.Printf("Item         | Amount      | Balance\n")
		fmt.Printf("____         | ______      | _______\n")
		for _, row := range result.Ledger {
			_, _ = p.Printf("%-12s | %11s | %s\n", row.Item, format.Currency(row.Amount), format.Currency(row.Balance))
		}
	}

	if len(result.Rollup) > 0 {
		fmt.Printf("\nLoan schedule by year\n")
		fmt.Printf("Year | Payment      | Principal    | Interest    | Balance\n")
		fmt.Printf("____ | _______      | _________    | ________    | _______\n")
		for _, year := range result.Rollup {
			_, _ = p.Printf("%4d | %12s | %12s | %11s | %s\n",
				year.Year, format.Currency(year.Payment), format.Currency(year.Principal),
				format.Currency(year.Interest), format.Currency(year.Balance))
		}
	}

	if len(result.FieldErrors) > 0 {
		fmt.Printf("\nWarnings\n")
		for _, fieldErr := range result.FieldErrors {
			fmt.Printf("  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
	}
}

// CsvFormat outputs the monthly schedule in comma-separated value format.
func CsvFormat(result roi.Result) {
	fmt.Printf("\"month\",\"payment\",\"principal\",\"interest\",\"balance\"\n")
	for _, row := range result.Schedule {
		fmt.Printf("\"%d\",\"%.2f\",\"%.2f\",\"%.2f\",\"%.2f\"\n",
			row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
	}
}
