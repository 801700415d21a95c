package orders

import (
	"context"
	"fmt"
	"net/url"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// OrdersRepository performs order calls against the backend. Orders are
// read, status-updated and cancelled here; never created or deleted.
type OrdersRepository struct {
	api *backend.Client
}

func NewOrdersRepository(api *backend.Client) *OrdersRepository {
	return &OrdersRepository{api: api}
}

type listEnvelope struct {
	Orders     []entity.Order    `json:"orders"`
	Pagination entity.Pagination `json:"pagination"`
}

// List fetches one page of orders.
func (r *OrdersRepository) List(ctx context.Context, page int) ([]entity.Order, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	var env listEnvelope
	if err := r.api.GetJSON(ctx, fmt.Sprintf("/orders?page=%d", page), &env); err != nil {
		return nil, entity.Pagination{}, err
	}
	return env.Orders, env.Pagination, nil
}

type orderEnvelope struct {
	Order entity.Order `json:"order"`
}

// UpdateStatus moves an order to a new status.
func (r *OrdersRepository) UpdateStatus(ctx context.Context, id, status string) (entity.Order, error) {
	body := map[string]string{"status": status}
	var env orderEnvelope
	if err := r.api.PutJSON(ctx, "/orders/"+url.PathEscape(id)+"/status", body, &env); err != nil {
		return entity.Order{}, err
	}
	return env.Order, nil
}

// Cancel cancels an order on the customer's behalf, recording the reason.
func (r *OrdersRepository) Cancel(ctx context.Context, id, reason string) (entity.Order, error) {
	body := map[string]string{"reason": reason}
	var env orderEnvelope
	if err := r.api.PutJSON(ctx, "/orders/"+url.PathEscape(id)+"/admin-cancel", body, &env); err != nil {
		return entity.Order{}, err
	}
	return env.Order, nil
}

// Overview fetches the aggregate order statistics.
func (r *OrdersRepository) Overview(ctx context.Context) (entity.OrdersOverview, error) {
	var out entity.OrdersOverview
	if err := r.api.GetJSON(ctx, "/orders/stats/overview", &out); err != nil {
		return entity.OrdersOverview{}, err
	}
	return out, nil
}
