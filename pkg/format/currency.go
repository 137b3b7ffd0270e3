// Package format renders computed values for display. Calculations keep
// full floating-point precision; rounding to whole currency units happens
// here and only here.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/collegeroi/collegeroi/pkg/mathutil"
)

var printer = message.NewPrinter(language.English)

// Currency returns a whole-dollar currency string with a dollar sign and
// thousands separators (e.g., 636.39 -> "$636", -1234.5 -> "-$1,235").
func Currency(amount float64) string {
	rounded := mathutil.RoundWhole(amount)
	formatted := printer.Sprintf("%d", int64(math.Abs(rounded)))
	if rounded < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Percent1 returns a percentage formatted to one decimal place, without
// the percent sign (e.g., 13.25 -> "13.3").
func Percent1(rate float64) string {
	return fmt.Sprintf("%.1f", rate)
}
