package mongo

import (
	"context"

	"devconnects/config"
	"devconnects/internal/domain/repository"
	"devconnects/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager implements the domain's TransactionManager interface with MongoDB sessions.
type mongoTransactionManager struct {
	client          *mongo.Client
	factory         *mongoRepositoryFactory
	useTransactions bool
}

// mongoRepositoryFactory hands out repositories bound to the database. The session travels in the
// context passed to each call, so the same repositories serve transactional and plain callers.
type mongoRepositoryFactory struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	posts         repository.PostRepository
	comments      repository.CommentRepository
}

func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return f.users
}

func (f *mongoRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return f.notifications
}

func (f *mongoRepositoryFactory) PostRepo() repository.PostRepository {
	return f.posts
}

func (f *mongoRepositoryFactory) CommentRepo() repository.CommentRepository {
	return f.comments
}

// NewTransactionManager is the constructor for mongoTransactionManager.
// With mongo.useTransactions off, fn runs without a session, for standalone servers that reject transactions.
func NewTransactionManager(client *mongo.Client, db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		client: client,
		factory: &mongoRepositoryFactory{
			users:         NewUserRepository(db),
			notifications: NewNotificationRepository(db),
			posts:         NewPostRepository(db),
			comments:      NewCommentRepository(db),
		},
		useTransactions: cfg.Mongo.UseTransactions,
	}
}

// Execute runs fn in a transaction. The driver retries fn on transient transaction errors,
// so fn must not have side effects outside the database.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(txCtx context.Context, repoFactory repository.RepositoryFactory) error) error {
	if !tm.useTransactions {
		return fn(ctx, tm.factory)
	}

	session, err := tm.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx, tm.factory)
	})

	return err
}
