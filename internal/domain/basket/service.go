package basket

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/skypro/skyshop/internal/domain/product"
)

// ConsistencyError reports a basket entry whose product id no longer
// resolves in the catalog. The catalog is immutable after seeding, so
// this signals a broken invariant between basket and catalog, not a
// user-facing not-found.
type ConsistencyError struct {
	ProductID uuid.UUID
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("basket references product %s that is missing from the catalog", e.ProductID)
}

// ProductSource resolves products by id. Absence is reported as
// product.ErrNotFound.
type ProductSource interface {
	ProductByID(ctx context.Context, id uuid.UUID) (product.Product, error)
}

// Service joins a session basket against the catalog: it validates
// additions and builds priced snapshots with live prices.
type Service struct {
	products ProductSource
}

// NewService creates a basket Service backed by the given catalog.
func NewService(products ProductSource) *Service {
	return &Service{products: products}
}

// Add validates that id exists in the catalog and then increments its
// quantity in b. Validation precedes mutation: on a not-found error the
// basket is left untouched.
func (s *Service) Add(ctx context.Context, b *Basket, id uuid.UUID) error {
	if _, err := s.products.ProductByID(ctx, id); err != nil {
		return errors.Wrapf(err, "add product %s to basket", id)
	}
	b.Add(id)
	return nil
}

// Snapshot builds the immutable priced view of b. Every basket entry is
// re-resolved against the catalog so the total always reflects current
// pricing, never a price frozen at add time. An unresolvable entry
// aborts the read with a ConsistencyError.
func (s *Service) Snapshot(ctx context.Context, b *Basket) (UserBasket, error) {
	entries := b.Items()

	// The underlying map has no order; sort by id so snapshots render
	// deterministically.
	ids := make([]uuid.UUID, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	items := make([]Item, 0, len(entries))
	for _, id := range ids {
		p, err := s.products.ProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return UserBasket{}, &ConsistencyError{ProductID: id}
			}
			return UserBasket{}, errors.Wrapf(err, "resolve product %s", id)
		}
		items = append(items, Item{Product: p, Quantity: entries[id]})
	}
	return NewUserBasket(items), nil
}
