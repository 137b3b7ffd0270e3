package state

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/collegeroi/collegeroi/pkg/numeric"
)

// EncodeShareable packs a single snapshot into an opaque URL-safe string.
// The scenario list and UI toggles are deliberately excluded: a shared
// link carries one scenario's inputs, nothing more.
func EncodeShareable(snapshot Snapshot) (string, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode shareable snapshot: %w", err)
	}
	return base64.URLEncoding.EncodeToString(payload), nil
}

// DecodeShareable unpacks a shared-link payload. Callers treat any error
// as "no shared state" and fall back to defaults.
func DecodeShareable(encoded string) (Snapshot, error) {
	var snapshot Snapshot
	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return snapshot, fmt.Errorf("failed to decode shareable payload: %w", err)
	}
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return snapshot, fmt.Errorf("failed to parse shareable payload: %w", err)
	}
	return snapshot, nil
}

// ApplyShared overlays a decoded shared snapshot onto persisted state.
// Only non-blank shared fields override; the persisted scenario list and
// UI toggles are never touched.
func ApplyShared(dst *PersistedState, shared Snapshot) {
	overlayString(&dst.Snapshot.Inputs.CollegeName, shared.Inputs.CollegeName)
	overlayString(&dst.Snapshot.Inputs.Tuition, shared.Inputs.Tuition)
	overlayString(&dst.Snapshot.Inputs.FinancialAid, shared.Inputs.FinancialAid)
	overlayString(&dst.Snapshot.Inputs.FamilyContribution, shared.Inputs.FamilyContribution)
	overlayString(&dst.Snapshot.Inputs.LoanInterest, shared.Inputs.LoanInterest)
	overlayString(&dst.Snapshot.Inputs.LoanTerm, shared.Inputs.LoanTerm)
	overlayString(&dst.Snapshot.Inputs.Salary, shared.Inputs.Salary)
	overlayString(&dst.Snapshot.Inputs.Expenses, shared.Inputs.Expenses)
	overlayString(&dst.Snapshot.InflationRate, shared.InflationRate)

	if !shared.Tuition.Empty() {
		dst.Snapshot.Tuition = shared.Tuition
	}
	if !shared.Expenses.Empty() {
		dst.Snapshot.Expenses = shared.Expenses
	}

	overlayString(&dst.Snapshot.TaxRates.Federal, shared.TaxRates.Federal)
	overlayString(&dst.Snapshot.TaxRates.State, shared.TaxRates.State)
	overlayString(&dst.Snapshot.TaxRates.City, shared.TaxRates.City)
	overlayString(&dst.Snapshot.TaxRates.SocialSecurity, shared.TaxRates.SocialSecurity)
	overlayString(&dst.Snapshot.TaxRates.Medicare, shared.TaxRates.Medicare)
}

func overlayString(dst *string, src string) {
	if !numeric.IsBlank(src) {
		*dst = src
	}
}
