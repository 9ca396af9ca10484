// Package product defines the closed set of catalog products and their
// pricing behaviour. The variant set — simple, discounted, fix-price —
// is fixed; the sealed Product interface keeps it exhaustive.
package product

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/skypro/skyshop/internal/domain/search"
)

// FixedPrice is the price of every fix-price product, regardless of name.
const FixedPrice = 99

// ErrNotFound is returned when a requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Construction-time validation errors.
var (
	ErrNilID     = errors.New("product id must not be nil")
	ErrBlankName = errors.New("product name must not be blank")
)

// InvalidPriceError indicates a non-positive price at construction.
type InvalidPriceError struct {
	Price int
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("product price must be greater than 0, got %d", e.Price)
}

// InvalidDiscountError indicates a discount outside [0, 100].
type InvalidDiscountError struct {
	Discount int
}

func (e *InvalidDiscountError) Error() string {
	return fmt.Sprintf("discount must be between 0 and 100 inclusive, got %d", e.Discount)
}

// Product is a catalog product. Price is always derived through the
// variant's pricing rule and is deterministic and side-effect free.
// Special marks merchandising-notable variants (discounted, fix-price).
//
// The interface is sealed: only the variants in this package implement it.
type Product interface {
	search.Searchable
	Name() string
	Price() int
	Special() bool
	String() string

	sealed()
}

var (
	_ Product = (*Simple)(nil)
	_ Product = (*Discounted)(nil)
	_ Product = (*FixPrice)(nil)
)

// base carries the identity shared by every variant. A base is only
// ever constructed through newBase, so a product with a nil id or
// blank name cannot exist.
type base struct {
	id   uuid.UUID
	name string
}

func newBase(id uuid.UUID, name string) (base, error) {
	if id == uuid.Nil {
		return base{}, ErrNilID
	}
	if strings.TrimSpace(name) == "" {
		return base{}, ErrBlankName
	}
	return base{id: id, name: name}, nil
}

func (b base) ID() uuid.UUID       { return b.id }
func (b base) Name() string        { return b.name }
func (b base) SearchTerm() string  { return b.name }
func (b base) DisplayName() string { return b.name }
func (b base) ContentType() string { return search.ContentTypeProduct }

func (base) sealed() {}

// Simple is an ordinary product with a fixed price set at construction.
type Simple struct {
	base
	price int
}

// NewSimple validates the fields and builds a simple product.
// The price must be strictly positive.
func NewSimple(id uuid.UUID, name string, price int) (*Simple, error) {
	b, err := newBase(id, name)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, &InvalidPriceError{Price: price}
	}
	return &Simple{base: b, price: price}, nil
}

func (p *Simple) Price() int    { return p.price }
func (p *Simple) Special() bool { return false }

func (p *Simple) String() string {
	return fmt.Sprintf("%s: %d", p.name, p.price)
}

// Discounted is a product priced as a percentage discount off a base
// price. The discounted price uses integer truncation:
// basePrice - basePrice*discount/100.
type Discounted struct {
	base
	basePrice int
	discount  int
}

// NewDiscounted validates the fields and builds a discounted product.
// basePrice must be strictly positive and discount within [0, 100].
func NewDiscounted(id uuid.UUID, name string, basePrice, discount int) (*Discounted, error) {
	b, err := newBase(id, name)
	if err != nil {
		return nil, err
	}
	if basePrice <= 0 {
		return nil, &InvalidPriceError{Price: basePrice}
	}
	if discount < 0 || discount > 100 {
		return nil, &InvalidDiscountError{Discount: discount}
	}
	return &Discounted{base: b, basePrice: basePrice, discount: discount}, nil
}

func (p *Discounted) Price() int     { return p.basePrice - p.basePrice*p.discount/100 }
func (p *Discounted) BasePrice() int { return p.basePrice }
func (p *Discounted) Discount() int  { return p.discount }
func (p *Discounted) Special() bool  { return true }

func (p *Discounted) String() string {
	return fmt.Sprintf("%s: %d (%d%%)", p.name, p.Price(), p.discount)
}

// FixPrice is a product sold at the shared FixedPrice constant.
type FixPrice struct {
	base
}

// NewFixPrice validates the fields and builds a fix-price product.
func NewFixPrice(id uuid.UUID, name string) (*FixPrice, error) {
	b, err := newBase(id, name)
	if err != nil {
		return nil, err
	}
	return &FixPrice{base: b}, nil
}

func (p *FixPrice) Price() int    { return FixedPrice }
func (p *FixPrice) Special() bool { return true }

func (p *FixPrice) String() string {
	return fmt.Sprintf("%s: fixed price %d", p.name, FixedPrice)
}
