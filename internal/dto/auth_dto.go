package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UserResponse is the sanitized user shape — the credential field never
// leaves the auth service.
type UserResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	WarehouseID string `json:"warehouse_id"`
	Active      bool   `json:"active"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"` // always "bearer"
	User      UserResponse `json:"user"`
}
