package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group writes without depending on a specific database driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the transaction is aborted,
	// otherwise it is committed. Repository calls inside fn must use txCtx.
	Execute(ctx context.Context, fn func(txCtx context.Context, repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository

	NotificationRepo() NotificationRepository

	PostRepo() PostRepository

	CommentRepo() CommentRepository
}
