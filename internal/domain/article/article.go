// Package article defines the article catalog entry: a titled text
// about the shop's products. Articles carry no pricing behaviour and
// share only the search capability with products.
package article

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/skypro/skyshop/internal/domain/search"
)

// ErrNotFound is returned when a requested article does not exist.
var ErrNotFound = errors.New("article not found")

// Construction-time validation errors.
var (
	ErrNilID      = errors.New("article id must not be nil")
	ErrBlankTitle = errors.New("article title must not be blank")
)

var _ search.Searchable = (*Article)(nil)

// Article is an immutable catalog article.
type Article struct {
	id    uuid.UUID
	title string
	text  string
}

// New validates the fields and builds an article. A missing text is
// allowed and collapses to the empty string; a blank title is not.
func New(id uuid.UUID, title, text string) (*Article, error) {
	if id == uuid.Nil {
		return nil, ErrNilID
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	return &Article{id: id, title: title, text: text}, nil
}

func (a *Article) ID() uuid.UUID { return a.id }
func (a *Article) Title() string { return a.title }
func (a *Article) Text() string  { return a.text }

// SearchTerm matches against both the title and the body text.
func (a *Article) SearchTerm() string  { return a.title + "\n" + a.text }
func (a *Article) DisplayName() string { return a.title }
func (a *Article) ContentType() string { return search.ContentTypeArticle }

func (a *Article) String() string {
	return a.title + "\n" + a.text
}
