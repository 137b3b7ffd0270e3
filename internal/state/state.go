// Package state defines the input snapshot model, the versioned persisted
// blob, and the shareable-link encoding. All derivations elsewhere are
// pure functions of a Snapshot; nothing here mutates live form state.
package state

import (
	"encoding/json"
	"fmt"

	"github.com/collegeroi/collegeroi/pkg/constants"
	"github.com/collegeroi/collegeroi/pkg/costs"
	"github.com/collegeroi/collegeroi/pkg/tax"
)

// FormInputs holds one scenario's raw entries. All numeric fields stay
// strings; empty or unparsable values coerce to 0 downstream and never
// error.
type FormInputs struct {
	CollegeName        string `json:"collegeName" yaml:"collegeName"`
	Tuition            string `json:"tuition" yaml:"tuition"`
	FinancialAid       string `json:"financialAid" yaml:"financialAid"`
	FamilyContribution string `json:"familyContribution" yaml:"familyContribution"`
	LoanInterest       string `json:"loanInterest" yaml:"loanInterest"`
	LoanTerm           string `json:"loanTerm" yaml:"loanTerm"`
	Salary             string `json:"salary" yaml:"salary"`
	Expenses           string `json:"expenses" yaml:"expenses"`
}

// Snapshot is a full input set: the form fields plus the breakdowns and
// rates they were derived from. Scenarios wrap snapshots so comparison
// metrics can be recomputed from exactly what was saved.
type Snapshot struct {
	Inputs        FormInputs             `json:"inputs" yaml:"inputs"`
	Tuition       costs.TuitionBreakdown `json:"tuitionBreakdown" yaml:"tuitionBreakdown" mapstructure:"tuitionBreakdown"`
	Expenses      costs.ExpenseBreakdown `json:"expenseBreakdown" yaml:"expenseBreakdown" mapstructure:"expenseBreakdown"`
	TaxRates      tax.Rates              `json:"taxRates" yaml:"taxRates"`
	InflationRate string                 `json:"inflationRate" yaml:"inflationRate"`
}

// UIToggles carries the collapsible-panel state the browser persists
// alongside its data. The core round-trips it opaquely.
type UIToggles struct {
	ShowSchedule  bool `json:"showSchedule"`
	ShowBreakdown bool `json:"showBreakdown"`
	ShowExpenses  bool `json:"showExpenses"`
	ShowTaxes     bool `json:"showTaxes"`
}

// ScenarioRecord is one saved comparison entry inside the persisted blob.
type ScenarioRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Snapshot Snapshot `json:"snapshot"`
}

// PersistedState is the whole UI+data snapshot stored under the single
// fixed storage key. The blob is replaced whole on save and deleted whole
// on clear. The version tag rejects incompatible older saves instead of
// misreading them.
type PersistedState struct {
	Version   int              `json:"version"`
	Snapshot  Snapshot         `json:"snapshot"`
	UI        UIToggles        `json:"ui"`
	Scenarios []ScenarioRecord `json:"scenarios"`
}

// NewPersistedState returns a default state at the current schema version.
func NewPersistedState() *PersistedState {
	return &PersistedState{Version: constants.StateSchemaVersion}
}

// EncodePersisted serializes the state for storage.
func EncodePersisted(state *PersistedState) ([]byte, error) {
	state.Version = constants.StateSchemaVersion
	return json.Marshal(state)
}

// DecodePersisted parses a stored blob. A malformed blob or a version
// mismatch is an error the caller recovers from by falling back to
// defaults; it never surfaces to the user as a failure.
func DecodePersisted(blob []byte) (*PersistedState, error) {
	var state PersistedState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to decode persisted state: %w", err)
	}
	if state.Version != constants.StateSchemaVersion {
		return nil, fmt.Errorf("unsupported persisted state version %d", state.Version)
	}
	return &state, nil
}
