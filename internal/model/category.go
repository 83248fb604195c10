package model

// Category classifies products. ParentID builds an optional hierarchy;
// deleting a category leaves referencing products dangling (no cascade).
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *int   `json:"parent_id,omitempty"`
}
