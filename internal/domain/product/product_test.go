package product

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypro/skyshop/internal/domain/search"
)

func TestNewSimple_Valid(t *testing.T) {
	p, err := NewSimple(uuid.New(), "Ноутбук Lenovo IdeaPad", 75000)

	require.NoError(t, err)
	assert.Equal(t, 75000, p.Price())
	assert.False(t, p.Special())
	assert.Equal(t, "Ноутбук Lenovo IdeaPad", p.Name())
}

func TestNewSimple_NonPositivePrice(t *testing.T) {
	for _, price := range []int{0, -1, -75000} {
		_, err := NewSimple(uuid.New(), "Widget", price)

		var perr *InvalidPriceError
		require.ErrorAs(t, err, &perr, "price %d must be rejected", price)
		assert.Equal(t, price, perr.Price)
	}
}

func TestNewSimple_BlankName(t *testing.T) {
	_, err := NewSimple(uuid.New(), "", 10)
	require.ErrorIs(t, err, ErrBlankName)

	_, err = NewSimple(uuid.New(), "   \t", 10)
	require.ErrorIs(t, err, ErrBlankName)
}

func TestNewSimple_NilID(t *testing.T) {
	_, err := NewSimple(uuid.Nil, "Widget", 10)
	require.ErrorIs(t, err, ErrNilID)
}

func TestNewDiscounted_PriceTruncates(t *testing.T) {
	p, err := NewDiscounted(uuid.New(), "Беспроводные наушники Sony", 20000, 15)

	require.NoError(t, err)
	assert.Equal(t, 17000, p.Price())
	assert.Equal(t, 20000, p.BasePrice())
	assert.Equal(t, 15, p.Discount())
	assert.True(t, p.Special())
}

func TestNewDiscounted_PriceWithinBounds(t *testing.T) {
	const basePrice = 333

	prev := basePrice
	for discount := 0; discount <= 100; discount++ {
		p, err := NewDiscounted(uuid.New(), "Widget", basePrice, discount)
		require.NoError(t, err)

		price := p.Price()
		assert.GreaterOrEqual(t, price, 0)
		assert.LessOrEqual(t, price, basePrice)
		// Price never increases as the discount grows.
		assert.LessOrEqual(t, price, prev, "discount %d", discount)
		prev = price
	}
}

func TestNewDiscounted_DiscountBounds(t *testing.T) {
	for _, discount := range []int{-1, 101} {
		_, err := NewDiscounted(uuid.New(), "Widget", 100, discount)

		var derr *InvalidDiscountError
		require.ErrorAs(t, err, &derr, "discount %d must be rejected", discount)
		assert.Equal(t, discount, derr.Discount)
	}

	zero, err := NewDiscounted(uuid.New(), "Widget", 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 100, zero.Price())

	full, err := NewDiscounted(uuid.New(), "Widget", 100, 100)
	require.NoError(t, err)
	assert.Equal(t, 0, full.Price())
}

func TestNewDiscounted_NonPositiveBasePrice(t *testing.T) {
	_, err := NewDiscounted(uuid.New(), "Widget", 0, 10)

	var perr *InvalidPriceError
	require.ErrorAs(t, err, &perr)
}

func TestFixPrice_ConstantPrice(t *testing.T) {
	for _, name := range []string{"USB-C кабель", "Игровая мышь Razer", "x"} {
		p, err := NewFixPrice(uuid.New(), name)

		require.NoError(t, err)
		assert.Equal(t, FixedPrice, p.Price())
		assert.Equal(t, 99, p.Price())
		assert.True(t, p.Special())
	}
}

func TestString_PerVariant(t *testing.T) {
	id := uuid.New()

	simple, err := NewSimple(id, "Widget", 500)
	require.NoError(t, err)
	assert.Equal(t, "Widget: 500", simple.String())

	discounted, err := NewDiscounted(id, "Widget", 1000, 25)
	require.NoError(t, err)
	assert.Equal(t, "Widget: 750 (25%)", discounted.String())

	fix, err := NewFixPrice(id, "Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget: fixed price 99", fix.String())
}

func TestSearchCapability(t *testing.T) {
	p, err := NewSimple(uuid.New(), "Смартфон Samsung Galaxy", 35000)
	require.NoError(t, err)

	assert.Equal(t, "Смартфон Samsung Galaxy", p.SearchTerm())
	assert.Equal(t, "Смартфон Samsung Galaxy", p.DisplayName())
	assert.Equal(t, search.ContentTypeProduct, p.ContentType())
}

func TestIdentity_ByIDOnly(t *testing.T) {
	id := uuid.New()

	a, err := NewSimple(id, "First name", 10)
	require.NoError(t, err)
	b, err := NewFixPrice(id, "Completely different name")
	require.NoError(t, err)

	assert.True(t, search.Same(a, b), "same id means same logical entity")

	c, err := NewSimple(uuid.New(), "First name", 10)
	require.NoError(t, err)
	assert.False(t, search.Same(a, c), "different ids are never the same entity")

	// Keyed storage collapses entries with the same id.
	m := map[uuid.UUID]Product{a.ID(): a, b.ID(): b}
	assert.Len(t, m, 1)
}
