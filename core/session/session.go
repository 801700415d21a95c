// Package session holds operator sessions: a generated session id mapped to
// the backend bearer token and the admin user record. Presence of a session
// is what gates the panel; tokens are never validated or refreshed here.
package session

import (
	"context"
	"errors"
	"time"

	entity "kyuna.GO/model/entity"
)

// Record is one operator session.
type Record struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	User      entity.AdminUser `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

// Store persists session records. Implementations: redis, sqlite, memory.
type Store interface {
	Put(ctx context.Context, rec Record, ttl time.Duration) error
	Get(ctx context.Context, id string) (Record, bool, error)
	Delete(ctx context.Context, id string) error
}

// ErrInvalidCredentials covers both a rejected login and a login whose user
// is not an admin; the two are indistinguishable to the operator on purpose.
var ErrInvalidCredentials = errors.New("session: invalid credentials")
