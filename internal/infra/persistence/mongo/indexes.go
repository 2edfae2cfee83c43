package mongo

import (
	"context"

	"devconnects/internal/errors"
	"devconnects/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var collectionIndexes = map[string][]mongo.IndexModel{
	model.UsersCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_unique")},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_name_unique")},
	},
	model.MessagesCollection: {
		{
			Keys:    bson.D{{Key: "sender", Value: 1}, {Key: "receiver", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("messages_conversation"),
		},
		{
			Keys:    bson.D{{Key: "receiver", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("messages_receiver_recent"),
		},
	},
	model.NotificationsCollection: {
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("notifications_recipient")},
	},
	model.PostsCollection: {
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("posts_author")},
		{Keys: bson.D{{Key: "likes", Value: 1}}, Options: options.Index().SetName("posts_likes")},
	},
	model.CommentsCollection: {
		{Keys: bson.D{{Key: "post", Value: 1}, {Key: "createdAt", Value: 1}}, Options: options.Index().SetName("comments_post")},
	},
}

// EnsureIndexes creates the indexes every repository relies on. Existing indexes are left untouched.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, indexes := range collectionIndexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
