package entity

// RoleAdmin is the only role allowed through the panel's session gate.
const RoleAdmin = "admin"

// AdminUser is the user record returned by the backend login endpoint.
type AdminUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the user may operate the panel.
func (u AdminUser) IsAdmin() bool {
	return u.Role == RoleAdmin
}
