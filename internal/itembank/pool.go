package itembank

import (
	"context"
	"fmt"
	"sort"
)

// Source supplies eligible items to the assessment engine. The bank
// service behind it owns storage, retrieval, and any caching; the
// engine only ever reads.
type Source interface {
	// FetchEligibleItems returns every item not in excluded, in a
	// deterministic order.
	FetchEligibleItems(ctx context.Context, excluded map[string]bool) ([]Item, error)

	// Get returns the item with the given ID.
	Get(ctx context.Context, id string) (Item, bool)
}

// Pool is an in-memory Source backed by a validated item slice. Used
// by the bundled CLI, the TUI, and tests; a production deployment can
// substitute any Source.
type Pool struct {
	items []Item
	byID  map[string]Item
}

// NewPool builds a pool from items, validating each and rejecting
// duplicate IDs. Items are held sorted by ID.
func NewPool(items ...Item) (*Pool, error) {
	p := &Pool{byID: make(map[string]Item, len(items))}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, dup := p.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidItem, it.ID)
		}
		p.byID[it.ID] = it
		p.items = append(p.items, it)
	}
	sort.Slice(p.items, func(i, j int) bool { return p.items[i].ID < p.items[j].ID })
	return p, nil
}

// FetchEligibleItems returns all items whose ID is not in excluded,
// sorted by ID.
func (p *Pool) FetchEligibleItems(_ context.Context, excluded map[string]bool) ([]Item, error) {
	var eligible []Item
	for _, it := range p.items {
		if !excluded[it.ID] {
			eligible = append(eligible, it)
		}
	}
	return eligible, nil
}

// Get returns the item with the given ID.
func (p *Pool) Get(_ context.Context, id string) (Item, bool) {
	it, ok := p.byID[id]
	return it, ok
}

// Len returns the number of items in the pool.
func (p *Pool) Len() int {
	return len(p.items)
}
