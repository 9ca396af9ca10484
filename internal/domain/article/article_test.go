package article

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypro/skyshop/internal/domain/search"
)

func TestNew_Valid(t *testing.T) {
	a, err := New(uuid.New(), "Как выбрать электронику", "Обращайте внимание на характеристики.")

	require.NoError(t, err)
	assert.Equal(t, "Как выбрать электронику", a.Title())
	assert.Equal(t, "Обращайте внимание на характеристики.", a.Text())
}

func TestNew_EmptyTextAllowed(t *testing.T) {
	a, err := New(uuid.New(), "Заголовок", "")

	require.NoError(t, err)
	assert.Equal(t, "", a.Text())
}

func TestNew_BlankTitle(t *testing.T) {
	_, err := New(uuid.New(), "", "text")
	require.ErrorIs(t, err, ErrBlankTitle)

	_, err = New(uuid.New(), " \t ", "text")
	require.ErrorIs(t, err, ErrBlankTitle)
}

func TestNew_NilID(t *testing.T) {
	_, err := New(uuid.Nil, "Заголовок", "text")
	require.ErrorIs(t, err, ErrNilID)
}

func TestSearchCapability(t *testing.T) {
	a, err := New(uuid.New(), "Тест наушников Sony", "Шумоподавление работает отлично.")
	require.NoError(t, err)

	// Both title and body participate in matching.
	assert.Equal(t, "Тест наушников Sony\nШумоподавление работает отлично.", a.SearchTerm())
	assert.Equal(t, "Тест наушников Sony", a.DisplayName())
	assert.Equal(t, search.ContentTypeArticle, a.ContentType())
}

func TestIdentity_ByIDOnly(t *testing.T) {
	id := uuid.New()

	a, err := New(id, "One title", "")
	require.NoError(t, err)
	b, err := New(id, "Another title", "different text")
	require.NoError(t, err)

	assert.True(t, search.Same(a, b))

	c, err := New(uuid.New(), "One title", "")
	require.NoError(t, err)
	assert.False(t, search.Same(a, c))
}
