// Package session scopes baskets to anonymous browser sessions. A
// session is identified by a cookie; its basket lives until the session
// goes idle longer than the configured TTL.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/skypro/skyshop/internal/domain/basket"
)

// CookieName is the session cookie set on first contact.
const CookieName = "shop_session"

type entry struct {
	basket   *basket.Basket
	lastSeen time.Time
}

// Manager owns the session→basket registry. Baskets are created on
// demand and handed to callers as explicit handles; nothing outside the
// registry holds ambient session state.
type Manager struct {
	ttl time.Duration
	lg  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewManager creates a Manager evicting sessions idle longer than ttl.
// A non-positive ttl disables eviction.
func NewManager(ttl time.Duration, lg *zap.Logger) *Manager {
	return &Manager{
		ttl:      ttl,
		lg:       lg,
		sessions: make(map[string]*entry),
	}
}

// Basket resolves the basket for the request's session, creating the
// session on first use. When a new session is issued, its cookie is set
// on the response.
func (m *Manager) Basket(w http.ResponseWriter, r *http.Request) *basket.Basket {
	now := time.Now()

	if c, err := r.Cookie(CookieName); err == nil {
		m.mu.Lock()
		if e, ok := m.sessions[c.Value]; ok {
			e.lastSeen = now
			b := e.basket
			m.mu.Unlock()
			return b
		}
		m.mu.Unlock()
	}

	id := uuid.New().String()
	b := basket.New()

	m.mu.Lock()
	m.sessions[id] = &entry{basket: b, lastSeen: now}
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	m.lg.Debug("session created", zap.String("session_id", id))
	return b
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunCleanup evicts idle sessions at half the TTL interval until ctx is
// cancelled. It returns immediately when eviction is disabled.
func (m *Manager) RunCleanup(ctx context.Context) {
	if m.ttl <= 0 {
		return
	}

	interval := m.ttl / 2
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.evictIdle(now)
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) >= m.ttl {
			delete(m.sessions, id)
			m.lg.Debug("session evicted", zap.String("session_id", id))
		}
	}
}
