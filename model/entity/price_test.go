package entity

import "testing"

func TestPriceConfig_DiscountPercent(t *testing.T) {
	cases := []struct {
		name     string
		original float64
		discount float64
		want     string
	}{
		{"twenty percent", 100, 80, "20.0%"},
		{"fractional", 11495, 9655, "16.0%"},
		{"no discount", 100, 100, "0.0%"},
		{"zero original", 0, 80, "0.0%"},
		{"negative discounted", 100, -5, "0.0%"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := PriceConfig{OriginalPrice: c.original, DiscountedPrice: c.discount}
			if got := p.DiscountPercent(); got != c.want {
				t.Errorf("DiscountPercent() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestPriceConfig_Savings(t *testing.T) {
	p := PriceConfig{OriginalPrice: 100, DiscountedPrice: 80}
	if got := p.Savings(); got != 20.00 {
		t.Errorf("Savings() = %v, want 20.00", got)
	}
	p = PriceConfig{OriginalPrice: 99.999, DiscountedPrice: 33.333}
	if got := p.Savings(); got != 66.67 {
		t.Errorf("Savings() = %v, want 66.67", got)
	}
	p = PriceConfig{OriginalPrice: 0, DiscountedPrice: 80}
	if got := p.Savings(); got != 0 {
		t.Errorf("Savings() = %v, want 0", got)
	}
}
