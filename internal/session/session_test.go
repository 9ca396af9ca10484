package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newManager(ttl time.Duration) *Manager {
	return NewManager(ttl, zap.NewNop())
}

func TestBasket_NewSessionSetsCookie(t *testing.T) {
	m := newManager(time.Hour)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	b := m.Basket(w, r)
	require.NotNil(t, b)
	assert.Equal(t, 1, m.Len())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestBasket_ReturningSessionGetsSameBasket(t *testing.T) {
	m := newManager(time.Hour)

	w1 := httptest.NewRecorder()
	r1 := httptest.NewRequest(http.MethodGet, "/", nil)
	first := m.Basket(w1, r1)
	cookie := w1.Result().Cookies()[0]

	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookie)
	second := m.Basket(httptest.NewRecorder(), r2)

	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Len())
}

func TestBasket_UnknownCookieStartsFreshSession(t *testing.T) {
	m := newManager(time.Hour)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "stale-session-id"})
	w := httptest.NewRecorder()

	b := m.Basket(w, r)

	require.NotNil(t, b)
	assert.Equal(t, 1, m.Len())
	// A replacement cookie is issued.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "stale-session-id", cookies[0].Value)
}

func TestEvictIdle(t *testing.T) {
	ttl := 10 * time.Minute
	m := newManager(ttl)

	m.Basket(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, 1, m.Len())

	m.evictIdle(time.Now().Add(ttl / 2))
	assert.Equal(t, 1, m.Len(), "fresh session survives")

	m.evictIdle(time.Now().Add(2 * ttl))
	assert.Equal(t, 0, m.Len(), "idle session is dropped")
}

func TestSessionsAreIsolated(t *testing.T) {
	m := newManager(time.Hour)

	b1 := m.Basket(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	b2 := m.Basket(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotSame(t, b1, b2)
	assert.Equal(t, 2, m.Len())
}
