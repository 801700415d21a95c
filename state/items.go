package state

import (
	"context"

	entity "kyuna.GO/model/entity"
	itemsRepo "kyuna.GO/model/repository/items"
)

// ItemsModule binds the generic slice to the items repository.
type ItemsModule struct {
	*Module[entity.Item]
	repo *itemsRepo.ItemsRepository
}

func NewItemsModule(repo *itemsRepo.ItemsRepository) *ItemsModule {
	return &ItemsModule{
		Module: NewModule(Config[entity.Item]{
			ID:      func(i entity.Item) string { return i.ID },
			HasMore: HasMoreNextPageFlag,
		}),
		repo: repo,
	}
}

// Load fetches one page; a non-empty term goes through item search.
func (m *ItemsModule) Load(ctx context.Context, page int, appendTo bool, term string) (Slice[entity.Item], error) {
	return m.List(ctx, func(ctx context.Context, page int, term string) (ListPage[entity.Item], error) {
		items, pg, err := m.repo.List(ctx, page, term)
		return ListPage[entity.Item]{Items: items, Page: pg}, err
	}, page, appendTo, term)
}

// GetByID fills the selected-item slot without touching the list.
func (m *ItemsModule) GetByID(ctx context.Context, id string) (entity.Item, error) {
	it, err := m.repo.Get(ctx, id)
	if err != nil {
		return entity.Item{}, err
	}
	m.Dispatch(SetSelected[entity.Item]{Item: it})
	return it, nil
}

// Create posts a new item. The creation response is the whole payload, so
// the list root is replaced rather than prepended; callers re-load page 1 to
// show the full catalog again.
func (m *ItemsModule) Create(ctx context.Context, payload entity.Item) (entity.Item, error) {
	created, err := m.repo.Create(ctx, payload)
	if err != nil {
		return entity.Item{}, err
	}
	m.Dispatch(ReplaceAll[entity.Item]{Items: []entity.Item{created}})
	return created, nil
}

// Update replaces the matching list entry in place.
func (m *ItemsModule) Update(ctx context.Context, id string, payload entity.Item) (entity.Item, error) {
	updated, err := m.repo.Update(ctx, id, payload)
	if err != nil {
		return entity.Item{}, err
	}
	m.Dispatch(UpdateByID[entity.Item]{Item: updated})
	return updated, nil
}

// Delete removes the matching list entry.
func (m *ItemsModule) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.Dispatch(RemoveByID[entity.Item]{ID: id})
	return nil
}

// UploadImage and DeleteImage pass through to the repository; image storage
// has no slice state.
func (m *ItemsModule) UploadImage(ctx context.Context, filename string, data []byte) (entity.ItemImage, error) {
	return m.repo.UploadImage(ctx, filename, data)
}

func (m *ItemsModule) DeleteImage(ctx context.Context, publicID string) error {
	return m.repo.DeleteImage(ctx, publicID)
}
