package entity

import "strings"

// Item is a catalog item as the backend returns it.
type Item struct {
	ID             string            `json:"_id,omitempty"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	DiscountPrice  float64           `json:"discountPrice"`
	Weight         string            `json:"weight"`
	Rating         float64           `json:"rating,omitempty"`
	Availability   string            `json:"availability"`
	Description    string            `json:"description"`
	Images         []ItemImage       `json:"images"`
	Specifications map[string]string `json:"specifications,omitempty"`
	CreatedAt      string            `json:"createdAt,omitempty"`
	UpdatedAt      string            `json:"updatedAt,omitempty"`
}

// ItemImage is one entry of an item's image list. Persisted images carry a
// backend publicId and an http(s) URL; images attached in a form but not yet
// uploaded carry a locally generated UID and the raw file bytes.
type ItemImage struct {
	UID      string `json:"uid,omitempty"`
	Name     string `json:"name,omitempty"`
	URL      string `json:"url"`
	PublicID string `json:"publicId"`

	// LocalData holds the attached file's bytes until upload. Never sent to
	// the backend.
	LocalData []byte `json:"-"`
}

// Persisted reports whether the image already lives in backend storage.
func (im ItemImage) Persisted() bool {
	return im.PublicID != "" && (strings.HasPrefix(im.URL, "http://") || strings.HasPrefix(im.URL, "https://")) && len(im.LocalData) == 0
}
