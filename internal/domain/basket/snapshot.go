package basket

import "github.com/skypro/skyshop/internal/domain/product"

// Item pairs a live product with its quantity. Items exist only inside
// a UserBasket snapshot; they are never persisted on their own.
type Item struct {
	Product  product.Product
	Quantity int
}

// Subtotal is the item's contribution to the basket total at current
// pricing.
func (i Item) Subtotal() int {
	return i.Product.Price() * i.Quantity
}

// UserBasket is an immutable, priced snapshot of a basket at one point
// in time. The total is computed once at construction; later basket
// mutations never alter an already-built snapshot.
type UserBasket struct {
	items []Item
	total int
}

// NewUserBasket copies items and precomputes the grand total.
func NewUserBasket(items []Item) UserBasket {
	cp := make([]Item, len(items))
	copy(cp, items)

	total := 0
	for _, it := range cp {
		total += it.Subtotal()
	}
	return UserBasket{items: cp, total: total}
}

// Items returns a copy of the snapshot's items.
func (u UserBasket) Items() []Item {
	out := make([]Item, len(u.items))
	copy(out, u.items)
	return out
}

// Total returns the precomputed sum of item subtotals.
func (u UserBasket) Total() int {
	return u.total
}
