package items

import (
	"context"
	"fmt"
	"net/url"

	"kyuna.GO/backend"
	entity "kyuna.GO/model/entity"
)

// ItemsRepository performs catalog item calls against the backend.
type ItemsRepository struct {
	api *backend.Client
}

func NewItemsRepository(api *backend.Client) *ItemsRepository {
	return &ItemsRepository{api: api}
}

const searchPageSize = 15

type listEnvelope struct {
	Items      []entity.Item     `json:"items"`
	Pagination entity.Pagination `json:"pagination"`
}

// List fetches one page of items. A non-empty search term switches to the
// search endpoint, which pages with a fixed limit of 15. Both reads are
// public, no token attached.
func (r *ItemsRepository) List(ctx context.Context, page int, term string) ([]entity.Item, entity.Pagination, error) {
	if page < 1 {
		page = 1
	}
	var path string
	if term != "" {
		q := url.Values{}
		q.Set("q", term)
		q.Set("page", fmt.Sprint(page))
		q.Set("limit", fmt.Sprint(searchPageSize))
		path = "/items/search?" + q.Encode()
	} else {
		path = fmt.Sprintf("/items?page=%d", page)
	}

	var env listEnvelope
	if err := r.api.GetJSONPublic(ctx, path, &env); err != nil {
		return nil, entity.Pagination{}, err
	}
	return env.Items, env.Pagination, nil
}

type itemEnvelope struct {
	Item entity.Item `json:"item"`
}

// Get fetches a single item by id.
func (r *ItemsRepository) Get(ctx context.Context, id string) (entity.Item, error) {
	var env itemEnvelope
	if err := r.api.GetJSONPublic(ctx, "/items/"+url.PathEscape(id), &env); err != nil {
		return entity.Item{}, err
	}
	return env.Item, nil
}

// Create posts a new item.
func (r *ItemsRepository) Create(ctx context.Context, payload entity.Item) (entity.Item, error) {
	var env itemEnvelope
	if err := r.api.PostJSON(ctx, "/items", payload, &env); err != nil {
		return entity.Item{}, err
	}
	return env.Item, nil
}

// Update replaces an item by id.
func (r *ItemsRepository) Update(ctx context.Context, id string, payload entity.Item) (entity.Item, error) {
	var env itemEnvelope
	if err := r.api.PutJSON(ctx, "/items/"+url.PathEscape(id), payload, &env); err != nil {
		return entity.Item{}, err
	}
	if env.Item.ID == "" {
		// Some backend builds return the item at the response root.
		env.Item = payload
		env.Item.ID = id
	}
	return env.Item, nil
}

// Delete removes an item by id.
func (r *ItemsRepository) Delete(ctx context.Context, id string) error {
	return r.api.Delete(ctx, "/items/"+url.PathEscape(id), nil)
}

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadImage pushes file bytes to backend image storage and returns the
// stored image reference.
func (r *ItemsRepository) UploadImage(ctx context.Context, filename string, data []byte) (entity.ItemImage, error) {
	var res uploadResponse
	if err := r.api.UploadMultipart(ctx, "/image/upload", "image", filename, data, &res); err != nil {
		return entity.ItemImage{}, err
	}
	return entity.ItemImage{Name: filename, URL: res.URL, PublicID: res.PublicID}, nil
}

// DeleteImage removes a stored image by its public id (filename part only,
// the backend expects the last path segment).
func (r *ItemsRepository) DeleteImage(ctx context.Context, publicID string) error {
	return r.api.Delete(ctx, "/image/delete/"+url.PathEscape(publicID), nil)
}
