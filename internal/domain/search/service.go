package search

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// Source provides the full set of searchable catalog entries.
type Source interface {
	AllSearchable(ctx context.Context) ([]Searchable, error)
}

// Service filters catalog entries by case-insensitive substring match.
// It performs no ranking, tokenization, or locale normalization beyond
// simple case folding.
type Service struct {
	source Source
}

// NewService creates a search Service reading from the given source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Search returns the entries whose search term contains pattern,
// ignoring case. A blank pattern matches everything; results follow
// the source's iteration order.
func (s *Service) Search(ctx context.Context, pattern string) ([]Result, error) {
	entries, err := s.source.AllSearchable(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load searchable entries")
	}

	results := make([]Result, 0, len(entries))
	if strings.TrimSpace(pattern) == "" {
		for _, e := range entries {
			results = append(results, ResultOf(e))
		}
		return results, nil
	}

	folded := strings.ToLower(pattern)
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.SearchTerm()), folded) {
			results = append(results, ResultOf(e))
		}
	}
	return results, nil
}
