package entity

import "testing"

func TestItemImage_Persisted(t *testing.T) {
	cases := []struct {
		name string
		img  ItemImage
		want bool
	}{
		{"stored image", ItemImage{PublicID: "kyuna/items/a", URL: "https://img.example.com/a.jpg"}, true},
		{"http url", ItemImage{PublicID: "a", URL: "http://img.example.com/a.jpg"}, true},
		{"no publicId", ItemImage{URL: "https://img.example.com/a.jpg"}, false},
		{"no url", ItemImage{PublicID: "a"}, false},
		{"local preview url", ItemImage{PublicID: "a", URL: "blob:preview"}, false},
		{"pending file", ItemImage{UID: "u1", Name: "new.jpg", LocalData: []byte("x")}, false},
		{"stored but bytes attached", ItemImage{PublicID: "a", URL: "https://x/a.jpg", LocalData: []byte("x")}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.img.Persisted(); got != c.want {
				t.Errorf("Persisted() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestOrder_StatusIs(t *testing.T) {
	o := Order{Status: "delivered"}
	if !o.StatusIs(OrderStatusDelivered) {
		t.Error("StatusIs must compare case-insensitively")
	}
	if o.StatusIs(OrderStatusPending) {
		t.Error("StatusIs must not match a different status")
	}
}
