package auth

import (
	"context"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// AuthRepository exchanges operator credentials for a backend token.
type AuthRepository struct {
	api *backend.Client
}

func NewAuthRepository(api *backend.Client) *AuthRepository {
	return &AuthRepository{api: api}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the /login payload: the user record plus a bearer token.
type LoginResponse struct {
	User  entity.AdminUser `json:"user"`
	Token string           `json:"token"`
}

// Login posts credentials. Any non-2xx response comes back as a
// *backend.APIError; the role gate on top of this lives in core/session.
func (r *AuthRepository) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := r.api.PostJSONPublic(ctx, "/login", loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}
