package mongo

import (
	"context"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type notificationRepository struct {
	notifications *mongo.Collection
	summaries     summaryLoader
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{
		notifications: db.Collection(model.NotificationsCollection),
		summaries:     newSummaryLoader(db),
	}
}

func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if n.ID.IsZero() {
		n.ID = entity.NewID()
	}
	now := timestamp()
	n.CreatedAt, n.UpdatedAt = now, now

	if _, err := repo.notifications.InsertOne(ctx, model.FromNotificationEntity(n)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	return nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Notification, error) {
	var doc model.NotificationDocument
	if err := repo.notifications.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notification")
	}

	return repo.populate(ctx, &doc)
}

func (repo *notificationRepository) ListByRecipient(ctx context.Context, recipientID entity.ID) ([]*entity.Notification, error) {
	cursor, err := repo.notifications.Find(ctx,
		bson.M{"to": recipientID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notifications")
	}

	var docs []model.NotificationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode notifications")
	}

	ids := make([]entity.ID, 0, len(docs)+1)
	ids = append(ids, recipientID)
	for i := range docs {
		ids = append(ids, docs[i].From)
	}
	users, err := repo.summaries.load(ctx, ids...)
	if err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, 0, len(docs))
	for i := range docs {
		notifications = append(notifications, docs[i].ToEntity(users))
	}

	return notifications, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id, recipientID entity.ID) (*entity.Notification, error) {
	var doc model.NotificationDocument
	err := repo.notifications.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "to": recipientID},
		bson.M{"$set": bson.M{"read": true, "updatedAt": timestamp()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to mark notification read")
	}

	return repo.populate(ctx, &doc)
}

func (repo *notificationRepository) Delete(ctx context.Context, id, recipientID entity.ID) error {
	result, err := repo.notifications.DeleteOne(ctx, bson.M{"_id": id, "to": recipientID})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete notification")
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) populate(ctx context.Context, doc *model.NotificationDocument) (*entity.Notification, error) {
	users, err := repo.summaries.load(ctx, doc.From, doc.To)
	if err != nil {
		return nil, err
	}

	return doc.ToEntity(users), nil
}
