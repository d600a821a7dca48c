package selection

import (
	"reflect"
	"testing"

	"github.com/lexiq/lexiq/internal/irt"
	"github.com/lexiq/lexiq/internal/itembank"
)

func item(id string, diff, disc float64) itembank.Item {
	return itembank.Item{ID: id, Difficulty: diff, Discrimination: disc}
}

func TestNext_PicksClosestDifficulty(t *testing.T) {
	pool := []itembank.Item{
		item("q1", -2, 1),
		item("q2", 0, 1),
		item("q3", 2, 1),
	}
	got := Next(0.3, nil, pool)
	if got == nil || got.ID != "q2" {
		t.Fatalf("Next = %v, want q2", got)
	}
}

func TestNext_HonorsExclusions(t *testing.T) {
	pool := []itembank.Item{
		item("q1", 0, 1),
		item("q2", 0.5, 1),
	}
	got := Next(0, map[string]bool{"q1": true}, pool)
	if got == nil || got.ID != "q2" {
		t.Fatalf("Next = %v, want q2", got)
	}
}

func TestNext_MaximizesInformation(t *testing.T) {
	pool := []itembank.Item{
		item("q1", -1, 0.8),
		item("q2", 0.2, 1.5),
		item("q3", 0.2, 0.9),
		item("q4", 1.8, 2.0),
	}
	theta := 0.1
	got := Next(theta, nil, pool)
	if got == nil {
		t.Fatal("Next returned nil for non-empty pool")
	}
	bestInfo := irt.Information(theta, got.Discrimination, got.Difficulty)
	for _, it := range pool {
		if info := irt.Information(theta, it.Discrimination, it.Difficulty); info > bestInfo {
			t.Errorf("item %s has information %f > selected %s's %f", it.ID, info, got.ID, bestInfo)
		}
	}
}

func TestNext_DeterministicTieBreak(t *testing.T) {
	// Identical parameters: information ties exactly; lowest ID wins.
	pool := []itembank.Item{
		item("q9", 0.5, 1.1),
		item("q2", 0.5, 1.1),
		item("q5", 0.5, 1.1),
	}
	for i := 0; i < 3; i++ {
		got := Next(0, nil, pool)
		if got == nil || got.ID != "q2" {
			t.Fatalf("Next = %v, want q2", got)
		}
	}
}

func TestNext_ExhaustedPool(t *testing.T) {
	if got := Next(0, nil, nil); got != nil {
		t.Errorf("Next on empty pool = %v, want nil", got)
	}
	pool := []itembank.Item{item("q1", 0, 1)}
	if got := Next(0, map[string]bool{"q1": true}, pool); got != nil {
		t.Errorf("Next with all excluded = %v, want nil", got)
	}
}

func TestNext_DoesNotMutatePool(t *testing.T) {
	pool := []itembank.Item{item("q1", 0, 1), item("q2", 1, 1)}
	before := make([]itembank.Item, len(pool))
	copy(before, pool)

	got := Next(0, nil, pool)
	got.Difficulty = 99 // caller-owned copy

	if !reflect.DeepEqual(pool, before) {
		t.Errorf("pool mutated: %+v", pool)
	}
}
