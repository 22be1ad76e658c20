package auth

// Claims representa la identidad embebida en una credencial.
// Credencial de usuario: user_id + email + session_id.
// Credencial de admin: solo role = "admin".
type Claims struct {
	UserID    string
	Email     string
	SessionID string
	Role      string
}

const RoleAdmin = "admin"

func (c Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
