package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
// Every public ledger write runs inside exactly one Execute call, so a rejected
// precondition rolls back with zero observable mutation.
type TransactionManager interface {
	// Execute runs a function within a serializable database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// IdentityRepo returns an IdentityRepository instance bound to the current transaction.
	IdentityRepo() IdentityRepository

	// AssetRepo returns an AssetRepository instance bound to the current transaction.
	AssetRepo() AssetRepository

	// TransferRepo returns a TransferRepository instance bound to the current transaction.
	TransferRepo() TransferRepository
}
