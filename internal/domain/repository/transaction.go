package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on
// a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every operation inside an Execute callback shares the same connection.
type RepositoryFactory interface {
	ClientRepo() ClientRepository
	RoleRepo() RoleRepository
	PermissionRepo() PermissionRepository
	CategoryRepo() CategoryRepository
	CurrencyRepo() CurrencyRepository
	ProductRepo() ProductRepository
	DocumentRepo() DocumentRepository
	CharacteristicRepo() CharacteristicRepository
	CartRepo() CartRepository
	CartItemRepo() CartItemRepository
	OrderRepo() OrderRepository
	OrderItemRepo() OrderItemRepository
	SupportRepo() SupportRepository
	GlobalVarRepo() GlobalVarRepository
}
