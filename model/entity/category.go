package entity

// Category is a catalog category.
type Category struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	ProductsCount int    `json:"productsCount,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}
