// Package basket holds one user's product selections and builds priced,
// immutable views of them against the live catalog.
package basket

import (
	"sync"

	"github.com/google/uuid"
)

// Basket is the mutable per-session state: a mapping from product id to
// a positive quantity. A Basket is scoped to a single session and must
// never be shared across sessions; concurrent requests within one
// session are safe because increments are applied under a lock.
type Basket struct {
	mu    sync.Mutex
	items map[uuid.UUID]int
}

// New creates an empty basket.
func New() *Basket {
	return &Basket{items: make(map[uuid.UUID]int)}
}

// Add increments the stored quantity for id by one, starting at one if
// the id is absent. The id is not validated here; callers go through
// Service.Add for catalog validation.
func (b *Basket) Add(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[id]++
}

// Items returns a copy of the id→quantity mapping. Mutating the
// returned map has no effect on the basket.
func (b *Basket) Items() map[uuid.UUID]int {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make(map[uuid.UUID]int, len(b.items))
	for id, qty := range b.items {
		out[id] = qty
	}
	return out
}

// Size returns the number of distinct products in the basket.
func (b *Basket) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}
