package categories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mitchellh/mapstructure"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// CategoriesRepository performs category calls against the backend.
type CategoriesRepository struct {
	api *backend.Client
}

func NewCategoriesRepository(api *backend.Client) *CategoriesRepository {
	return &CategoriesRepository{api: api}
}

// List fetches one page of categories. The backend has shipped the list
// under both "data" and "categories" keys, so the envelope is folded loosely
// instead of bound to one shape.
func (r *CategoriesRepository) List(ctx context.Context, page, limit int, search, sort string) ([]entity.Category, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 100
	}
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	if search != "" {
		q.Set("search", search)
	}
	if sort != "" {
		q.Set("sort", sort)
	}

	var raw map[string]interface{}
	if err := r.api.GetJSON(ctx, "/categories?"+q.Encode(), &raw); err != nil {
		return nil, entity.Pagination{}, err
	}
	return decodeListEnvelope(raw)
}

func decodeListEnvelope(raw map[string]interface{}) ([]entity.Category, entity.Pagination, error) {
	list := raw["data"]
	if list == nil {
		list = raw["categories"]
	}

	var cats []entity.Category
	if list != nil {
		if err := decodeLoose(list, &cats); err != nil {
			return nil, entity.Pagination{}, fmt.Errorf("categories: decode list: %w", err)
		}
	}

	var page entity.Pagination
	if p, ok := raw["pagination"]; ok && p != nil {
		if err := decodeLoose(p, &page); err != nil {
			return nil, entity.Pagination{}, fmt.Errorf("categories: decode pagination: %w", err)
		}
	}
	return cats, page, nil
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

type categoryEnvelope struct {
	Category entity.Category `json:"category"`
}

// Get fetches a single category by id.
func (r *CategoriesRepository) Get(ctx context.Context, id string) (entity.Category, error) {
	var env categoryEnvelope
	if err := r.api.GetJSON(ctx, "/categories/"+url.PathEscape(id), &env); err != nil {
		return entity.Category{}, err
	}
	return env.Category, nil
}

// Create posts a new category.
func (r *CategoriesRepository) Create(ctx context.Context, payload entity.Category) (entity.Category, error) {
	var env categoryEnvelope
	if err := r.api.PostJSON(ctx, "/categories", payload, &env); err != nil {
		return entity.Category{}, err
	}
	return env.Category, nil
}

// Update replaces a category by id.
func (r *CategoriesRepository) Update(ctx context.Context, id string, payload entity.Category) (entity.Category, error) {
	var env categoryEnvelope
	if err := r.api.PutJSON(ctx, "/categories/"+url.PathEscape(id), payload, &env); err != nil {
		return entity.Category{}, err
	}
	if env.Category.ID == "" {
		env.Category = payload
		env.Category.ID = id
	}
	return env.Category, nil
}

// Delete removes a category by id.
func (r *CategoriesRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/categories/"+url.PathEscape(id), nil)
}
