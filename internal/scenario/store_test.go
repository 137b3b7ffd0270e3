package scenario

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/collegeroi/collegeroi/internal/state"
	"github.com/collegeroi/collegeroi/pkg/constants"
)

func snapshotNamed(name string) state.Snapshot {
	var snapshot state.Snapshot
	snapshot.Inputs.CollegeName = name
	snapshot.Inputs.Tuition = "100000"
	snapshot.Inputs.Salary = "90000"
	return snapshot
}

func TestStoreAdd(t *testing.T) {
	store := NewStore(zap.NewNop())

	record, err := store.Add(snapshotNamed("Princeton University"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if record.ID == "" {
		t.Error("expected a generated scenario id")
	}
	if record.Name != "Princeton University" {
		t.Errorf("name = %q, expected college name", record.Name)
	}
	if len(store.List()) != 1 {
		t.Errorf("list length = %d, expected 1", len(store.List()))
	}
}

func TestStoreAddNameCollisionRequiresConfirmation(t *testing.T) {
	store := NewStore(zap.NewNop())
	if _, err := store.Add(snapshotNamed("Rice University")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Case-insensitive match.
	_, err := store.Add(snapshotNamed("rice university"))
	if !errors.Is(err, ErrConfirmRequired) {
		t.Fatalf("expected ErrConfirmRequired, got %v", err)
	}
	if len(store.List()) != 1 {
		t.Error("collision must not modify the list")
	}
}

func TestStoreOverwrite(t *testing.T) {
	store := NewStore(zap.NewNop())
	original, err := store.Add(snapshotNamed("Duke University"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated := snapshotNamed("Duke University")
	updated.Inputs.Salary = "84000"
	record, err := store.Overwrite(updated)
	if err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	if record.ID != original.ID {
		t.Error("overwrite must keep the original scenario id")
	}
	if len(store.List()) != 1 {
		t.Errorf("list length = %d, expected 1 after overwrite", len(store.List()))
	}
	if store.List()[0].Snapshot.Inputs.Salary != "84000" {
		t.Error("overwrite did not replace the snapshot")
	}
}

func TestStoreOverwriteWithoutMatchAdds(t *testing.T) {
	store := NewStore(zap.NewNop())
	if _, err := store.Overwrite(snapshotNamed("Yale University")); err != nil {
		t.Fatalf("Overwrite on empty store failed: %v", err)
	}
	if len(store.List()) != 1 {
		t.Errorf("list length = %d, expected 1", len(store.List()))
	}
}

func TestStoreCapacity(t *testing.T) {
	store := NewStore(zap.NewNop())
	for i := 0; i < 5; i++ {
		if _, err := store.Add(snapshotNamed(fmt.Sprintf("College %d", i))); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}

	_, err := store.Add(snapshotNamed("College 6"))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
	if len(store.List()) != 5 {
		t.Errorf("list length = %d, capacity failure must not mutate the list", len(store.List()))
	}

	// Overwriting an existing name still works at capacity.
	if _, err := store.Overwrite(snapshotNamed("College 0")); err != nil {
		t.Errorf("Overwrite at capacity failed: %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore(zap.NewNop())
	record, err := store.Add(snapshotNamed("Brown University"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	store.Remove(record.ID)
	if len(store.List()) != 0 {
		t.Error("expected empty list after remove")
	}

	// Removing an absent id is a no-op.
	store.Remove(record.ID)
	store.Remove("never-existed")
}

func TestStoreLoad(t *testing.T) {
	store := NewStore(zap.NewNop())

	records := make([]state.ScenarioRecord, 7)
	for i := range records {
		records[i] = state.ScenarioRecord{ID: fmt.Sprintf("id-%d", i), Name: fmt.Sprintf("College %d", i)}
	}
	store.Load(records)

	if len(store.List()) != 5 {
		t.Errorf("list length = %d, expected cap at 5", len(store.List()))
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore(zap.NewNop())
	if _, err := store.Add(snapshotNamed("Cornell University")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	list := store.List()
	list[0].Name = "mutated"
	if store.List()[0].Name != "Cornell University" {
		t.Error("List must return a copy, not the backing slice")
	}
}

func TestStoreConcurrentAdds(t *testing.T) {
	store := NewStore(zap.NewNop())

	const workers = 64
	var accepted atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Add(snapshotNamed(fmt.Sprintf("College %d", i)))
			if err == nil {
				accepted.Add(1)
			} else if !errors.Is(err, ErrCapacity) {
				t.Errorf("Add: unexpected error %v", err)
			}
		}(i)
	}
	wg.Wait()

	if int(accepted.Load()) != constants.MaxScenarios {
		t.Errorf("accepted adds = %d, expected %d", accepted.Load(), constants.MaxScenarios)
	}
	if len(store.List()) != constants.MaxScenarios {
		t.Errorf("list length = %d, expected cap %d", len(store.List()), constants.MaxScenarios)
	}
}
