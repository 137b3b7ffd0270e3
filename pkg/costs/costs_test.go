package costs

import (
	"math"
	"testing"
)

func TestSumBreakdown(t *testing.T) {
	tests := []struct {
		name     string
		entries  map[string]string
		expected float64
	}{
		{
			name:     "All numeric",
			entries:  map[string]string{"rent": "1500", "groceries": "400", "utilities": "150"},
			expected: 2050,
		},
		{
			name:     "Empty values treated as zero",
			entries:  map[string]string{"rent": "1500", "groceries": ""},
			expected: 1500,
		},
		{
			name:     "Unparsable values treated as zero",
			entries:  map[string]string{"rent": "1500", "groceries": "lots"},
			expected: 1500,
		},
		{
			name:     "Empty map",
			entries:  map[string]string{},
			expected: 0,
		},
		{
			name:     "Decimal values",
			entries:  map[string]string{"a": "10.5", "b": "0.25"},
			expected: 10.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SumBreakdown(tt.entries)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("SumBreakdown() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestProjectYear(t *testing.T) {
	tests := []struct {
		name       string
		base       float64
		rate       float64
		yearOffset int
		expected   float64
	}{
		{"Zero inflation is identity", 10000, 0, 3, 10000},
		{"One year at 5 percent", 10000, 0.05, 1, 10500},
		{"Two years at 5 percent", 10000, 0.05, 2, 11025},
		{"Three years at 5 percent", 10000, 0.05, 3, 11576},
		{"Zero offset is identity", 10000, 0.05, 0, 10000},
		{"Zero base stays zero", 0, 0.05, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProjectYear(tt.base, tt.rate, tt.yearOffset)
			if result != tt.expected {
				t.Errorf("ProjectYear(%v, %v, %v) = %v, expected %v",
					tt.base, tt.rate, tt.yearOffset, result, tt.expected)
			}
		})
	}
}

func TestCopyYear1Forward(t *testing.T) {
	t.Run("Projects tuition and room and board at 5 percent", func(t *testing.T) {
		breakdown := TuitionBreakdown{}
		breakdown.Tuition[0] = "10000"
		breakdown.RoomBoard[0] = "5000"

		CopyYear1Forward(&breakdown, 5.0)

		expectedTuition := []string{"10000", "10500", "11025", "11576"}
		for i, want := range expectedTuition {
			if breakdown.Tuition[i] != want {
				t.Errorf("tuition year %d = %q, expected %q", i+1, breakdown.Tuition[i], want)
			}
		}

		expectedRoomBoard := []string{"5000", "5250", "5513", "5788"}
		for i, want := range expectedRoomBoard {
			if breakdown.RoomBoard[i] != want {
				t.Errorf("room&board year %d = %q, expected %q", i+1, breakdown.RoomBoard[i], want)
			}
		}
	})

	t.Run("Blank year 1 propagates blank", func(t *testing.T) {
		breakdown := TuitionBreakdown{}
		breakdown.Tuition[0] = ""
		breakdown.Tuition[1] = "9999"
		breakdown.RoomBoard[0] = "5000"

		CopyYear1Forward(&breakdown, 3.0)

		for i := 1; i < 4; i++ {
			if breakdown.Tuition[i] != "" {
				t.Errorf("tuition year %d = %q, expected blank", i+1, breakdown.Tuition[i])
			}
		}
		if breakdown.RoomBoard[1] != "5150" {
			t.Errorf("room&board year 2 = %q, expected %q", breakdown.RoomBoard[1], "5150")
		}
	})

	t.Run("Financial aid entries are untouched", func(t *testing.T) {
		breakdown := TuitionBreakdown{}
		breakdown.Tuition[0] = "10000"
		breakdown.FinancialAid[0] = "2000"

		CopyYear1Forward(&breakdown, 5.0)

		if breakdown.FinancialAid[0] != "2000" || breakdown.FinancialAid[1] != "" {
			t.Errorf("financial aid modified: %v", breakdown.FinancialAid)
		}
	})

	t.Run("Zero inflation copies year 1 verbatim", func(t *testing.T) {
		breakdown := TuitionBreakdown{}
		breakdown.Tuition[0] = "12000"

		CopyYear1Forward(&breakdown, 0)

		for i := 1; i < 4; i++ {
			if breakdown.Tuition[i] != "12000" {
				t.Errorf("tuition year %d = %q, expected %q", i+1, breakdown.Tuition[i], "12000")
			}
		}
	})
}

func TestFourYearCostAndAid(t *testing.T) {
	breakdown := TuitionBreakdown{
		Tuition:      [4]string{"25000", "25000", "25000", "25000"},
		RoomBoard:    [4]string{"", "", "", ""},
		FinancialAid: [4]string{"1000", "1000", "", "junk"},
	}

	if cost := breakdown.FourYearCost(); cost != 100000 {
		t.Errorf("FourYearCost() = %v, expected 100000", cost)
	}
	if aid := breakdown.FourYearAid(); aid != 2000 {
		t.Errorf("FourYearAid() = %v, expected 2000", aid)
	}
}

func TestTuitionBreakdownEmpty(t *testing.T) {
	var breakdown TuitionBreakdown
	if !breakdown.Empty() {
		t.Error("expected zero-value breakdown to be empty")
	}
	breakdown.RoomBoard[2] = "100"
	if breakdown.Empty() {
		t.Error("expected breakdown with an entry to be non-empty")
	}
}

func TestExpenseBreakdown(t *testing.T) {
	expenses := ExpenseBreakdown{
		Rent:       "1500",
		Groceries:  "400",
		Retirement: "500",
	}

	if total := expenses.MonthlyTotal(); math.Abs(total-2400) > 0.001 {
		t.Errorf("MonthlyTotal() = %v, expected 2400", total)
	}
	if expenses.Empty() {
		t.Error("expected populated breakdown to be non-empty")
	}
	if !(ExpenseBreakdown{}).Empty() {
		t.Error("expected zero-value breakdown to be empty")
	}
}

func TestFourYearTotal(t *testing.T) {
	tests := []struct {
		name         string
		tuition      float64
		financialAid float64
		annualFamily float64
		expected     float64
	}{
		{"Scenario D inputs", 100000, 0, 10000, 60000},
		{"Aid reduces principal", 100000, 30000, 10000, 30000},
		{"Surplus clamps to zero", 50000, 40000, 10000, 0},
		{"No support", 80000, 0, 0, 80000},
		{"Zero cost", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FourYearTotal(tt.tuition, tt.financialAid, tt.annualFamily)
			if result != tt.expected {
				t.Errorf("FourYearTotal(%v, %v, %v) = %v, expected %v",
					tt.tuition, tt.financialAid, tt.annualFamily, result, tt.expected)
			}
		})
	}
}
