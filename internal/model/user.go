package model

// User stores dashboard users with role-based screens.
// Role: "admin" | "manager" | "driver"
// Username/email uniqueness is not enforced.
type User struct {
	ID           string `json:"id"` // "USR-001"
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	WarehouseID  string `json:"warehouse_id"`
	Active       bool   `json:"active"`
	PasswordHash string `json:"password_hash"`
}
