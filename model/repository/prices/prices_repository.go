package prices

import (
	"context"
	"net/url"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// PricesRepository performs price-configuration calls against the backend.
type PricesRepository struct {
	api *backend.Client
}

func NewPricesRepository(api *backend.Client) *PricesRepository {
	return &PricesRepository{api: api}
}

type priceEnvelope struct {
	Price entity.PriceConfig `json:"price"`
}

// Active fetches the currently active price configuration.
func (r *PricesRepository) Active(ctx context.Context) (entity.PriceConfig, error) {
	var env priceEnvelope
	if err := r.api.GetJSON(ctx, "/prices/active", &env); err != nil {
		return entity.PriceConfig{}, err
	}
	return env.Price, nil
}

// UpdateRequest carries the price pair; the discount is always derived, never
// sent or stored.
type UpdateRequest struct {
	OriginalPrice   float64 `json:"originalPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
}

// Update replaces a price configuration by id.
func (r *PricesRepository) Update(ctx context.Context, id string, req UpdateRequest) (entity.PriceConfig, error) {
	var env priceEnvelope
	if err := r.api.PutJSON(ctx, "/prices/"+url.PathEscape(id), req, &env); err != nil {
		return entity.PriceConfig{}, err
	}
	return env.Price, nil
}
