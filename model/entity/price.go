package entity

import (
	"fmt"
	"math"
)

// PriceConfig is the single active price configuration. The discount
// percentage and savings are never stored; they are recomputed from the two
// price fields on every use.
type PriceConfig struct {
	ID              string  `json:"_id,omitempty"`
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Active          bool    `json:"active,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}

// DiscountPercent derives the discount from the price pair, formatted with
// one decimal, e.g. "20.0%". Returns "0.0%" when the pair is not usable.
func (p PriceConfig) DiscountPercent() string {
	if p.OriginalPrice <= 0 || p.DiscountedPrice < 0 {
		return "0.0%"
	}
	pct := (p.OriginalPrice - p.DiscountedPrice) / p.OriginalPrice * 100
	return fmt.Sprintf("%.1f%%", pct)
}

// Savings derives the absolute saving from the price pair, rounded to cents.
func (p PriceConfig) Savings() float64 {
	if p.OriginalPrice <= 0 {
		return 0
	}
	return math.Round((p.OriginalPrice-p.DiscountedPrice)*100) / 100
}
