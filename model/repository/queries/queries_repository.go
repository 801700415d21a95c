package queries

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// QueriesRepository performs support-query calls against the backend admin
// endpoints.
type QueriesRepository struct {
	api *backend.Client
}

func NewQueriesRepository(api *backend.Client) *QueriesRepository {
	return &QueriesRepository{api: api}
}

// List fetches one page of support queries. Like categories, the list has
// shipped under both "data" and "queries" keys.
func (r *QueriesRepository) List(ctx context.Context, page int) ([]entity.SupportQuery, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	var raw map[string]interface{}
	if err := r.api.GetJSON(ctx, fmt.Sprintf("/queries/admin/all?page=%d", page), &raw); err != nil {
		return nil, entity.Pagination{}, err
	}

	list := raw["data"]
	if list == nil {
		list = raw["queries"]
	}
	var out []entity.SupportQuery
	if list != nil {
		if err := decodeLoose(list, &out); err != nil {
			return nil, entity.Pagination{}, fmt.Errorf("queries: decode list: %w", err)
		}
	}

	var page2 entity.Pagination
	if p, ok := raw["pagination"]; ok && p != nil {
		if err := decodeLoose(p, &page2); err != nil {
			return nil, entity.Pagination{}, fmt.Errorf("queries: decode pagination: %w", err)
		}
	}
	return out, page2, nil
}

// decodeLoose folds already-unmarshalled JSON into a struct by its json
// tags. Weak typing because numbers arrive as float64.
func decodeLoose(in, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

type queryEnvelope struct {
	Query entity.SupportQuery `json:"query"`
}

// UpdateRequest carries the mutable ticket fields.
type UpdateRequest struct {
	Status   string   `json:"status,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Update mutates a single query.
func (r *QueriesRepository) Update(ctx context.Context, id string, req UpdateRequest) (entity.SupportQuery, error) {
	var env queryEnvelope
	if err := r.api.PutJSON(ctx, "/queries/admin/"+url.PathEscape(id), req, &env); err != nil {
		return entity.SupportQuery{}, err
	}
	return env.Query, nil
}

// BulkUpdate moves a set of queries to one status.
func (r *QueriesRepository) BulkUpdate(ctx context.Context, ids []string, status string) error {
	body := map[string]interface{}{"ids": ids, "status": status}
	return r.api.PutJSON(ctx, "/queries/admin/bulk-update", body, nil)
}

type statsEnvelope struct {
	Statistics *entity.QueryStats `json:"statistics"`
	entity.QueryStats
}

// Stats fetches the aggregate query statistics. The backend has returned the
// numbers both nested under "statistics" and at the root.
func (r *QueriesRepository) Stats(ctx context.Context) (entity.QueryStats, error) {
	var env statsEnvelope
	if err := r.api.GetJSON(ctx, "/queries/admin/stats", &env); err != nil {
		return entity.QueryStats{}, err
	}
	if env.Statistics != nil {
		return *env.Statistics, nil
	}
	return env.QueryStats, nil
}
