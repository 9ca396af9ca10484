// Package memory implements the catalog store as an in-memory dataset
// seeded once at startup. The store is read-only after seeding, so
// concurrent reads need no coordination beyond the RWMutex guarding
// the seed itself.
package memory

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/skypro/skyshop/internal/domain/article"
	"github.com/skypro/skyshop/internal/domain/basket"
	"github.com/skypro/skyshop/internal/domain/product"
	"github.com/skypro/skyshop/internal/domain/search"
)

var (
	_ basket.ProductSource = (*Catalog)(nil)
	_ search.Source        = (*Catalog)(nil)
)

// Catalog holds the products and articles. Insertion order is kept
// alongside the keyed maps so full-collection views iterate in seed
// order on every run.
type Catalog struct {
	mu sync.RWMutex

	products     map[uuid.UUID]product.Product
	productOrder []uuid.UUID

	articles     map[uuid.UUID]*article.Article
	articleOrder []uuid.UUID
}

// NewCatalog builds the store and seeds it with the fixed dataset.
func NewCatalog() (*Catalog, error) {
	c := &Catalog{
		products: make(map[uuid.UUID]product.Product),
		articles: make(map[uuid.UUID]*article.Article),
	}
	if err := c.seed(); err != nil {
		return nil, errors.Wrap(err, "seed catalog")
	}
	return c, nil
}

// Ping reports whether the store is usable. It exists for readiness
// probes and always succeeds once the catalog is constructed.
func (c *Catalog) Ping(context.Context) error { return nil }

func (c *Catalog) putProduct(p product.Product) {
	c.products[p.ID()] = p
	c.productOrder = append(c.productOrder, p.ID())
}

func (c *Catalog) putArticle(a *article.Article) {
	c.articles[a.ID()] = a
	c.articleOrder = append(c.articleOrder, a.ID())
}

// Products returns all products in seed order.
func (c *Catalog) Products(context.Context) ([]product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]product.Product, 0, len(c.productOrder))
	for _, id := range c.productOrder {
		out = append(out, c.products[id])
	}
	return out, nil
}

// Articles returns all articles in seed order.
func (c *Catalog) Articles(context.Context) ([]*article.Article, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*article.Article, 0, len(c.articleOrder))
	for _, id := range c.articleOrder {
		out = append(out, c.articles[id])
	}
	return out, nil
}

// AllSearchable returns the union of products and articles, typed only
// through the search capability. Products come first, then articles,
// each in seed order.
func (c *Catalog) AllSearchable(context.Context) ([]search.Searchable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]search.Searchable, 0, len(c.productOrder)+len(c.articleOrder))
	for _, id := range c.productOrder {
		out = append(out, c.products[id])
	}
	for _, id := range c.articleOrder {
		out = append(out, c.articles[id])
	}
	return out, nil
}

// ProductByID returns the product with the given id, or
// product.ErrNotFound.
func (c *Catalog) ProductByID(_ context.Context, id uuid.UUID) (product.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

// ArticleByID returns the article with the given id, or
// article.ErrNotFound.
func (c *Catalog) ArticleByID(_ context.Context, id uuid.UUID) (*article.Article, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.articles[id]
	if !ok {
		return nil, article.ErrNotFound
	}
	return a, nil
}
