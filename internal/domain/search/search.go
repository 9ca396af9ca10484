// Package search defines the capability that makes catalog entries
// findable, together with the lightweight result projection returned
// to callers. Products and articles implement Searchable independently;
// they share no other code.
package search

import "github.com/google/uuid"

// Content type tags distinguishing entry families in search results.
const (
	ContentTypeProduct = "PRODUCT"
	ContentTypeArticle = "ARTICLE"
)

// Searchable is implemented by every catalog entry that can be matched
// by a text search.
type Searchable interface {
	// ID returns the entry's immutable identifier.
	ID() uuid.UUID
	// SearchTerm returns the text blob the entry is matched against.
	SearchTerm() string
	// DisplayName returns the human-readable name shown in results.
	DisplayName() string
	// ContentType returns the fixed tag of the entry's family.
	ContentType() string
}

// Same reports whether two entries refer to the same logical catalog
// entity. Identity is defined by id alone; names and derived fields
// never participate.
func Same(a, b Searchable) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}

// Result is a disposable projection of a Searchable, built on demand
// and never stored.
type Result struct {
	ID          uuid.UUID
	Name        string
	ContentType string
}

// ResultOf projects an entry into a Result.
func ResultOf(s Searchable) Result {
	return Result{
		ID:          s.ID(),
		Name:        s.DisplayName(),
		ContentType: s.ContentType(),
	}
}
