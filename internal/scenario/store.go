// Package scenario manages the saved comparison scenarios: a capped,
// named list of input snapshots and the pure metric recomputation that
// drives the comparison table.
package scenario

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/constants"
)

// ErrConfirmRequired signals that a scenario with the same name already
// exists and the caller must get explicit confirmation before
// overwriting it.
var ErrConfirmRequired = errors.New("scenario with this name exists; confirmation required to overwrite")

// ErrCapacity signals that the comparison list is full. The list is left
// unchanged.
var ErrCapacity = fmt.Errorf("comparison limit of %d scenarios reached", constants.MaxScenarios)

// Store holds the comparison scenarios for a single session. All methods
// are safe for concurrent use; HTTP handlers share one store across
// request goroutines.
type Store struct {
	logger *zap.Logger

	mu        sync.Mutex
	scenarios []state.ScenarioRecord
}

// NewStore creates an empty scenario store.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// Load replaces the store contents from a persisted scenario list,
// dropping entries beyond the cap.
func (s *Store) Load(records []state.ScenarioRecord) {
	if len(records) > constants.MaxScenarios {
		records = records[:constants.MaxScenarios]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append([]state.ScenarioRecord(nil), records...)
}

// List returns a copy of the current scenarios in creation order.
func (s *Store) List() []state.ScenarioRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]state.ScenarioRecord(nil), s.scenarios...)
}

// Add saves the snapshot as a new named scenario. A case-insensitive name
// collision returns ErrConfirmRequired without modifying the list; a full
// list returns ErrCapacity without modifying the list.
func (s *Store) Add(snapshot state.Snapshot) (state.ScenarioRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(snapshot)
}

// add appends under the caller's lock.
func (s *Store) add(snapshot state.Snapshot) (state.ScenarioRecord, error) {
	name := strings.TrimSpace(snapshot.Inputs.CollegeName)

	if _, found := s.indexOfName(name); found {
		return state.ScenarioRecord{}, ErrConfirmRequired
	}
	if len(s.scenarios) >= constants.MaxScenarios {
		return state.ScenarioRecord{}, ErrCapacity
	}

	record := state.ScenarioRecord{
		ID:       uuid.NewString(),
		Name:     name,
		Snapshot: snapshot,
	}
	s.scenarios = append(s.scenarios, record)
	s.logger.Debug("scenario added",
		zap.String("op", "scenario.Add"),
		zap.String("id", record.ID),
		zap.String("name", record.Name),
	)
	return record, nil
}

// Overwrite replaces the scenario matching the snapshot's name in place.
// This is the user-confirmed path after Add returned ErrConfirmRequired.
// If no scenario matches, it falls through to Add.
func (s *Store) Overwrite(snapshot state.Snapshot) (state.ScenarioRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(snapshot.Inputs.CollegeName)

	idx, found := s.indexOfName(name)
	if !found {
		return s.add(snapshot)
	}

	record := state.ScenarioRecord{
		ID:       s.scenarios[idx].ID,
		Name:     name,
		Snapshot: snapshot,
	}
	s.scenarios[idx] = record
	s.logger.Debug("scenario overwritten",
		zap.String("op", "scenario.Overwrite"),
		zap.String("id", record.ID),
		zap.String("name", record.Name),
	)
	return record, nil
}

// Remove deletes the scenario with the given id. Removing an absent id is
// a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.scenarios {
		if record.ID == id {
			s.scenarios = append(s.scenarios[:i], s.scenarios[i+1:]...)
			s.logger.Debug("scenario removed",
				zap.String("op", "scenario.Remove"),
				zap.String("id", id),
			)
			return
		}
	}
}

// indexOfName scans under the caller's lock.
func (s *Store) indexOfName(name string) (int, bool) {
	for i, record := range s.scenarios {
		if strings.EqualFold(record.Name, name) {
			return i, true
		}
	}
	return 0, false
}
