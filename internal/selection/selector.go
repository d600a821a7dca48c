// Package selection implements maximum-information item selection, the
// standard adaptive-testing policy: at each step, administer the item
// that most narrows the current ability estimate.
package selection

import (
	"github.com/lexiq/lexiq/internal/irt"
	"github.com/lexiq/lexiq/internal/itembank"
)

// Next returns the eligible item with the highest Fisher information
// at theta, or nil when no eligible item remains. Ties break on the
// lowest item ID so selection is reproducible.
//
// Pure function: neither the pool slice nor anything else is mutated.
func Next(theta float64, excluded map[string]bool, pool []itembank.Item) *itembank.Item {
	var best *itembank.Item
	var bestInfo float64

	for i := range pool {
		it := &pool[i]
		if excluded[it.ID] {
			continue
		}
		info := irt.Information(theta, it.Discrimination, it.Difficulty)
		switch {
		case best == nil:
			best, bestInfo = it, info
		case info > bestInfo:
			best, bestInfo = it, info
		case info == bestInfo && it.ID < best.ID:
			best = it
		}
	}

	if best == nil {
		return nil
	}
	picked := *best
	return &picked
}
