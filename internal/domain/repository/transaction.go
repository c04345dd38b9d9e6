package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// Every paired (ledger, status) mutation in the system runs through Execute so
// a failed status write rolls the debit or credit back with it.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RefreshTokenRepo() RefreshTokenRepository
	PlantRepo() PlantRepository
	WateringRepo() WateringRepository
	PaymentRepo() PaymentRepository
	SettingsRepo() SettingsRepository
}
