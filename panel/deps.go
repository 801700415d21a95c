// Package panel carries the dependencies shared by the HTML views and the
// /panel/api route modules: the session manager and the per-session state
// stores.
package panel

import (
	"kyuna.GO/backend"
	"kyuna.GO/core/cache"
	"kyuna.GO/core/session"
	"kyuna.GO/state"
)

// storeTTLSeconds bounds how long an idle session keeps its in-memory state.
const storeTTLSeconds = 30 * 60

// Deps is handed to every registered route module.
type Deps struct {
	Sessions *session.Manager
	API      *backend.Client // unauthenticated base client
}

// NewDeps wires the shared dependencies.
func NewDeps(sessions *session.Manager, api *backend.Client) *Deps {
	return &Deps{Sessions: sessions, API: api}
}

// StoreFor returns the state store bound to the operator's session, creating
// and caching it on first use. The store's backend client carries the
// session token.
func (d *Deps) StoreFor(rec session.Record) *state.Store {
	c := cache.GetInstance()
	key := "store|" + rec.ID
	if v, ok := c.Get(key); ok {
		if st, isStore := v.(*state.Store); isStore {
			return st
		}
	}
	st := state.NewStore(d.API.WithTokens(backend.StaticToken(rec.Token)))
	c.Set(key, st, storeTTLSeconds, []string{"stores"})
	return st
}

// DropStore forgets a session's state store (logout).
func (d *Deps) DropStore(sessionID string) {
	cache.GetInstance().Delete("store|" + sessionID)
}
