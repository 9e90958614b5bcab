package repository

import "context"

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos interface {
	Users() UserRepository
	Customers() CustomerRepository
	Suppliers() SupplierRepository
	Categories() CategoryRepository
	Articles() ArticleRepository
	Warehouses() WarehouseRepository
	Stock() StockRepository
	Movements() MovementRepository
	Orders() OrderRepository
	Codes() CodeGenerator
}

// TxRunner ejecuta fn dentro de una transacción de BD, pasando repositorios
// atados a esa transacción. Commit si fn devuelve nil; rollback completo ante
// cualquier error, de modo que nunca sea observable una actualización parcial
// de stock, diario u orden.
type TxRunner interface {
	Tx(ctx context.Context, fn func(r TxRepos) error) error
}
