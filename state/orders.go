package state

import (
	"context"
	"sync"

	entity "kyuna.GO/model/entity"
	ordersRepo "kyuna.GO/model/repository/orders"
)

// OrdersModule binds the generic slice to the orders repository. Orders use
// the currentPage/totalPages has-more convention, unlike the other lists.
type OrdersModule struct {
	*Module[entity.Order]
	repo *ordersRepo.OrdersRepository

	ovMu     sync.Mutex
	overview *entity.OrdersOverview
}

func NewOrdersModule(repo *ordersRepo.OrdersRepository) *OrdersModule {
	return &OrdersModule{
		Module: NewModule(Config[entity.Order]{
			ID:      func(o entity.Order) string { return o.ID },
			HasMore: HasMorePageCount,
		}),
		repo: repo,
	}
}

// Load fetches one page. Orders have no search endpoint.
func (m *OrdersModule) Load(ctx context.Context, page int, appendTo bool) (Slice[entity.Order], error) {
	return m.List(ctx, func(ctx context.Context, page int, _ string) (ListPage[entity.Order], error) {
		orders, pg, err := m.repo.List(ctx, page)
		return ListPage[entity.Order]{Items: orders, Page: pg}, err
	}, page, appendTo, "")
}

// UpdateStatus moves an order to a new status and folds the result in.
func (m *OrdersModule) UpdateStatus(ctx context.Context, id, status string) (entity.Order, error) {
	updated, err := m.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entity.Order{}, err
	}
	m.Dispatch(UpdateByID[entity.Order]{Item: updated})
	return updated, nil
}

// Cancel cancels an order with a reason and folds the result in.
func (m *OrdersModule) Cancel(ctx context.Context, id, reason string) (entity.Order, error) {
	cancelled, err := m.repo.Cancel(ctx, id, reason)
	if err != nil {
		return entity.Order{}, err
	}
	m.Dispatch(UpdateByID[entity.Order]{Item: cancelled})
	return cancelled, nil
}

// LoadOverview fetches the aggregate order stats into the module.
func (m *OrdersModule) LoadOverview(ctx context.Context) (entity.OrdersOverview, error) {
	ov, err := m.repo.Overview(ctx)
	if err != nil {
		return entity.OrdersOverview{}, err
	}
	m.ovMu.Lock()
	m.overview = &ov
	m.ovMu.Unlock()
	return ov, nil
}

// Overview returns the last loaded stats, if any.
func (m *OrdersModule) Overview() (entity.OrdersOverview, bool) {
	m.ovMu.Lock()
	defer m.ovMu.Unlock()
	if m.overview == nil {
		return entity.OrdersOverview{}, false
	}
	return *m.overview, true
}
