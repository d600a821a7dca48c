package itembank

import (
	"context"
	"testing"
)

func TestDefaultPool(t *testing.T) {
	pool, err := DefaultPool()
	if err != nil {
		t.Fatalf("DefaultPool: %v", err)
	}
	if pool.Len() < 10 {
		t.Fatalf("bundled bank has %d items, want at least 10", pool.Len())
	}

	items, err := pool.FetchEligibleItems(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchEligibleItems: %v", err)
	}

	// The bundled bank must span the ability scale so every stopping
	// rule is reachable, and every item must be answerable in the TUI.
	var easiest, hardest float64
	for _, it := range items {
		if it.Difficulty < easiest {
			easiest = it.Difficulty
		}
		if it.Difficulty > hardest {
			hardest = it.Difficulty
		}
		if len(it.Content.Choices) < 2 {
			t.Errorf("item %s has no choices", it.ID)
		}
	}
	if easiest > -2 || hardest < 2 {
		t.Errorf("difficulty range [%.1f, %.1f] too narrow", easiest, hardest)
	}
}
