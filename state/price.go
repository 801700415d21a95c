package state

import (
	"context"

	entity "kyuna.GO/model/entity"
	pricesRepo "kyuna.GO/model/repository/prices"
)

// PriceModule holds the single active price configuration. There is no
// collection here; the slice's selected slot carries the record.
type PriceModule struct {
	*Module[entity.PriceConfig]
	repo *pricesRepo.PricesRepository
}

func NewPriceModule(repo *pricesRepo.PricesRepository) *PriceModule {
	return &PriceModule{
		Module: NewModule(Config[entity.PriceConfig]{
			ID:      func(p entity.PriceConfig) string { return p.ID },
			HasMore: func(entity.Pagination) bool { return false },
		}),
		repo: repo,
	}
}

// Load fetches the active price configuration.
func (m *PriceModule) Load(ctx context.Context) (entity.PriceConfig, error) {
	m.Dispatch(SetLoading[entity.PriceConfig]{Loading: true})
	price, err := m.repo.Active(ctx)
	if err != nil {
		m.Dispatch(SetLoading[entity.PriceConfig]{Loading: false})
		return entity.PriceConfig{}, err
	}
	m.Dispatch(SetSelected[entity.PriceConfig]{Item: price})
	m.Dispatch(SetLoading[entity.PriceConfig]{Loading: false})
	return price, nil
}

// Update replaces the price pair and folds the returned record in.
func (m *PriceModule) Update(ctx context.Context, id string, req pricesRepo.UpdateRequest) (entity.PriceConfig, error) {
	m.Dispatch(SetLoading[entity.PriceConfig]{Loading: true})
	price, err := m.repo.Update(ctx, id, req)
	if err != nil {
		m.Dispatch(SetLoading[entity.PriceConfig]{Loading: false})
		return entity.PriceConfig{}, err
	}
	m.Dispatch(SetSelected[entity.PriceConfig]{Item: price})
	m.Dispatch(SetLoading[entity.PriceConfig]{Loading: false})
	return price, nil
}

// Current returns the last loaded price configuration, if any.
func (m *PriceModule) Current() (entity.PriceConfig, bool) {
	snap := m.Snapshot()
	if snap.Selected == nil {
		return entity.PriceConfig{}, false
	}
	return *snap.Selected, true
}
