package state

import (
	"kyuna.GO/backend"
	authRepo "kyuna.GO/model/repository/auth"
	catRepo "kyuna.GO/model/repository/categories"
	itemsRepo "kyuna.GO/model/repository/items"
	ordersRepo "kyuna.GO/model/repository/orders"
	pricesRepo "kyuna.GO/model/repository/prices"
	queriesRepo "kyuna.GO/model/repository/queries"
)

// Store aggregates the per-resource modules into the one object the views
// see. One store exists per operator session; its backend client carries
// that session's token.
type Store struct {
	Items      *ItemsModule
	Categories *CategoriesModule
	Orders     *OrdersModule
	Queries    *QueriesModule
	Price      *PriceModule
	Auth       *authRepo.AuthRepository
}

// NewStore wires every module to one backend client.
func NewStore(api *backend.Client) *Store {
	return &Store{
		Items:      NewItemsModule(itemsRepo.NewItemsRepository(api)),
		Categories: NewCategoriesModule(catRepo.NewCategoriesRepository(api)),
		Orders:     NewOrdersModule(ordersRepo.NewOrdersRepository(api)),
		Queries:    NewQueriesModule(queriesRepo.NewQueriesRepository(api)),
		Price:      NewPriceModule(pricesRepo.NewPricesRepository(api)),
		Auth:       authRepo.NewAuthRepository(api),
	}
}
