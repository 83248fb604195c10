package model

// Warehouse is a physical storage location. The ID doubles as the warehouse
// code ("WH-01") and is the one string-keyed collection besides users.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
}
