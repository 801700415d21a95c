package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
	authRepo "kyuna.GO/model/repository/auth"
)

func loginBackend(t *testing.T, status int, user entity.AdminUser, token string) *Manager {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"user": user, "token": token,
		})
	}))
	t.Cleanup(srv.Close)
	repo := authRepo.NewAuthRepository(backend.NewClient(srv.URL, nil, backend.NoToken))
	return NewManager(NewMemoryStore(), repo, time.Hour)
}

func TestLogin_AdminGetsSession(t *testing.T) {
	m := loginBackend(t, 200, entity.AdminUser{Name: "Priya", Email: "p@kyuna.in", Role: "admin"}, "tok-1")

	rec, err := m.Login(context.Background(), "p@kyuna.in", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, "tok-1", rec.Token)

	got, ok := m.Lookup(context.Background(), rec.ID)
	require.True(t, ok)
	require.Equal(t, "Priya", got.User.Name)
}

func TestLogin_NonAdminRefusedEvenOn200(t *testing.T) {
	m := loginBackend(t, 200, entity.AdminUser{Name: "C", Email: "c@x.in", Role: "customer"}, "tok-2")

	_, err := m.Login(context.Background(), "c@x.in", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingTokenRefused(t *testing.T) {
	m := loginBackend(t, 200, entity.AdminUser{Role: "admin"}, "")

	_, err := m.Login(context.Background(), "a@x.in", "secret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_BackendRejectionMapsToInvalidCredentials(t *testing.T) {
	m := loginBackend(t, 401, entity.AdminUser{}, "")

	_, err := m.Login(context.Background(), "a@x.in", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLookupAndLogout(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil, time.Hour)

	_, ok := m.Lookup(context.Background(), "")
	require.False(t, ok)
	_, ok = m.Lookup(context.Background(), "no-such-session")
	require.False(t, ok)

	store := NewMemoryStore()
	m = NewManager(store, nil, time.Hour)
	rec := Record{ID: "s1", Token: "t", CreatedAt: time.Now()}
	require.NoError(t, store.Put(context.Background(), rec, time.Hour))

	_, ok = m.Lookup(context.Background(), "s1")
	require.True(t, ok)

	m.Logout(context.Background(), "s1")
	_, ok = m.Lookup(context.Background(), "s1")
	require.False(t, ok)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	store := NewMemoryStore()
	rec := Record{ID: "s1", Token: "t", CreatedAt: time.Now()}
	require.NoError(t, store.Put(context.Background(), rec, 10*time.Millisecond))

	_, ok, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok, err = store.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.False(t, ok)
}
