package state

import (
	"context"
	"sync"

	entity "kyuna.GO/model/entity"
	queriesRepo "kyuna.GO/model/repository/queries"
)

// QueriesModule binds the generic slice to the support-queries repository.
type QueriesModule struct {
	*Module[entity.SupportQuery]
	repo *queriesRepo.QueriesRepository

	statsMu sync.Mutex
	stats   *entity.QueryStats
}

func NewQueriesModule(repo *queriesRepo.QueriesRepository) *QueriesModule {
	return &QueriesModule{
		Module: NewModule(Config[entity.SupportQuery]{
			ID:      func(q entity.SupportQuery) string { return q.ID },
			HasMore: HasMoreNextPageFlag,
		}),
		repo: repo,
	}
}

// Load fetches one page of queries.
func (m *QueriesModule) Load(ctx context.Context, page int, appendTo bool) (Slice[entity.SupportQuery], error) {
	return m.List(ctx, func(ctx context.Context, page int, _ string) (ListPage[entity.SupportQuery], error) {
		qs, pg, err := m.repo.List(ctx, page)
		return ListPage[entity.SupportQuery]{Items: qs, Page: pg}, err
	}, page, appendTo, "")
}

// Update mutates one query and folds the result in.
func (m *QueriesModule) Update(ctx context.Context, id string, req queriesRepo.UpdateRequest) (entity.SupportQuery, error) {
	updated, err := m.repo.Update(ctx, id, req)
	if err != nil {
		return entity.SupportQuery{}, err
	}
	m.Dispatch(UpdateByID[entity.SupportQuery]{Item: updated})
	return updated, nil
}

// BulkUpdate moves a set of queries to one status and folds each affected
// entry into the list locally.
func (m *QueriesModule) BulkUpdate(ctx context.Context, ids []string, status string) error {
	if err := m.repo.BulkUpdate(ctx, ids, status); err != nil {
		return err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	for _, q := range m.Snapshot().Items {
		if wanted[q.ID] {
			q.Status = status
			m.Dispatch(UpdateByID[entity.SupportQuery]{Item: q})
		}
	}
	return nil
}

// LoadStats fetches the aggregate query statistics into the module.
func (m *QueriesModule) LoadStats(ctx context.Context) (entity.QueryStats, error) {
	st, err := m.repo.Stats(ctx)
	if err != nil {
		return entity.QueryStats{}, err
	}
	m.statsMu.Lock()
	m.stats = &st
	m.statsMu.Unlock()
	return st, nil
}

// Stats returns the last loaded statistics, if any.
func (m *QueriesModule) Stats() (entity.QueryStats, bool) {
	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	if m.stats == nil {
		return entity.QueryStats{}, false
	}
	return *m.stats, true
}
