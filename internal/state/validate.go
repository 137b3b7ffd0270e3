package state

import "github.com/collegeroi/collegeroi/pkg/numeric"

// FieldError marks a single form field that failed validation on an
// explicit submit or compare action.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate reports per-field problems for an explicit submit. Validation
// never blocks computation: callers keep showing best-effort numbers
// computed from whatever is present.
func Validate(snapshot Snapshot) []FieldError {
	var errs []FieldError

	if numeric.IsBlank(snapshot.Inputs.CollegeName) {
		errs = append(errs, FieldError{Field: "collegeName", Message: "college name is required"})
	}

	required := []struct {
		field string
		value string
	}{
		{"tuition", snapshot.Inputs.Tuition},
		{"salary", snapshot.Inputs.Salary},
		{"loanInterest", snapshot.Inputs.LoanInterest},
		{"loanTerm", snapshot.Inputs.LoanTerm},
	}
	for _, req := range required {
		if numeric.IsBlank(req.value) {
			errs = append(errs, FieldError{Field: req.field, Message: "required field is missing"})
		} else if !numeric.Valid(req.value) {
			errs = append(errs, FieldError{Field: req.field, Message: "value must be a non-negative number"})
		}
	}

	optional := []struct {
		field string
		value string
	}{
		{"financialAid", snapshot.Inputs.FinancialAid},
		{"familyContribution", snapshot.Inputs.FamilyContribution},
		{"expenses", snapshot.Inputs.Expenses},
		{"inflationRate", snapshot.InflationRate},
	}
	for _, opt := range optional {
		if !numeric.Valid(opt.value) {
			errs = append(errs, FieldError{Field: opt.field, Message: "value must be a non-negative number"})
		}
	}

	return errs
}
