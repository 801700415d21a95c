package state

import (
	"context"

	"kyuna.GO/config"
	entity "kyuna.GO/model/entity"
	catRepo "kyuna.GO/model/repository/categories"
)

// CategoriesModule binds the generic slice to the categories repository.
type CategoriesModule struct {
	*Module[entity.Category]
	repo *catRepo.CategoriesRepository
	sort string
}

func NewCategoriesModule(repo *catRepo.CategoriesRepository) *CategoriesModule {
	return &CategoriesModule{
		Module: NewModule(Config[entity.Category]{
			ID:      func(c entity.Category) string { return c.ID },
			HasMore: HasMoreNextPageFlag,
		}),
		repo: repo,
	}
}

// SetSort fixes the sort key used by subsequent loads.
func (m *CategoriesModule) SetSort(sort string) { m.sort = sort }

// Load fetches one page, search term optional.
func (m *CategoriesModule) Load(ctx context.Context, page int, appendTo bool, search string) (Slice[entity.Category], error) {
	limit := 100
	if config.AppConfig != nil {
		limit = config.AppConfig.CategoriesPageSize
	}
	return m.List(ctx, func(ctx context.Context, page int, term string) (ListPage[entity.Category], error) {
		cats, pg, err := m.repo.List(ctx, page, limit, term, m.sort)
		return ListPage[entity.Category]{Items: cats, Page: pg}, err
	}, page, appendTo, search)
}

// GetByID fills the selected-category slot.
func (m *CategoriesModule) GetByID(ctx context.Context, id string) (entity.Category, error) {
	cat, err := m.repo.Get(ctx, id)
	if err != nil {
		return entity.Category{}, err
	}
	m.Dispatch(SetSelected[entity.Category]{Item: cat})
	return cat, nil
}

// Create posts a new category and optimistically prepends it.
func (m *CategoriesModule) Create(ctx context.Context, payload entity.Category) (entity.Category, error) {
	created, err := m.repo.Create(ctx, payload)
	if err != nil {
		return entity.Category{}, err
	}
	m.Dispatch(Prepend[entity.Category]{Item: created})
	return created, nil
}

// Update replaces the matching list entry in place.
func (m *CategoriesModule) Update(ctx context.Context, id string, payload entity.Category) (entity.Category, error) {
	updated, err := m.repo.Update(ctx, id, payload)
	if err != nil {
		return entity.Category{}, err
	}
	m.Dispatch(UpdateByID[entity.Category]{Item: updated})
	return updated, nil
}

// Delete filters the matching entry out of the list.
func (m *CategoriesModule) Delete(ctx context.Context, id string) error {
	if err := m.repo.Delete(ctx, id); err != nil {
		return err
	}
	m.Dispatch(RemoveByID[entity.Category]{ID: id})
	return nil
}
