package session

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	authRepo "kyuna.GO/model/repository/auth"
)

// Manager runs the session gate: login, lookup, logout.
type Manager struct {
	store Store
	auth  *authRepo.AuthRepository
	ttl   time.Duration
}

func NewManager(store Store, auth *authRepo.AuthRepository, ttl time.Duration) *Manager {
	return &Manager{store: store, auth: auth, ttl: ttl}
}

// Login exchanges credentials for a session. It fails closed: unless the
// backend answers 2xx AND the returned user's role is exactly "admin", no
// token is persisted and the caller gets ErrInvalidCredentials. Tokens are
// stored as-is; their validity is never checked after this point.
func (m *Manager) Login(ctx context.Context, email, password string) (Record, error) {
	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		log.Printf("session: login rejected for %s: %v", email, err)
		return Record{}, ErrInvalidCredentials
	}
	if !res.User.IsAdmin() || res.Token == "" {
		log.Printf("session: login for %s refused, role %q is not admin", email, res.User.Role)
		return Record{}, ErrInvalidCredentials
	}

	rec := Record{
		ID:        uuid.NewString(),
		Token:     res.Token,
		User:      res.User,
		CreatedAt: time.Now(),
	}
	if err := m.store.Put(ctx, rec, m.ttl); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Lookup resolves a session id. A missing or expired session is simply
// (zero, false); store errors are logged and treated the same, so a broken
// store degrades to logged-out rather than a crash page.
func (m *Manager) Lookup(ctx context.Context, id string) (Record, bool) {
	if id == "" {
		return Record{}, false
	}
	rec, ok, err := m.store.Get(ctx, id)
	if err != nil {
		log.Printf("session: lookup %s: %v", id, err)
		return Record{}, false
	}
	return rec, ok
}

// Logout drops the session unconditionally.
func (m *Manager) Logout(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := m.store.Delete(ctx, id); err != nil {
		log.Printf("session: logout %s: %v", id, err)
	}
}
