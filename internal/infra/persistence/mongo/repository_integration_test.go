package mongo

import (
	"context"
	"testing"
	"time"

	"devconnects/config"
	"devconnects/internal/domain/entity"
	"devconnects/internal/domain/repository"
	"devconnects/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupMongo starts a single-node replica set so transactions are available.
func setupMongo(t *testing.T) (*mongo.Client, *mongo.Database) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetTimeout(10*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database("devconnects_test")
	require.NoError(t, EnsureIndexes(ctx, db))

	return client, db
}

func createUser(t *testing.T, repo repository.UserRepository, name string) *entity.User {
	t.Helper()

	user := &entity.User{Name: name, Email: name + "@example.com", PasswordHash: "hash", DOB: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestMongoRepositories(t *testing.T) {
	client, db := setupMongo(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	messages := NewMessageRepository(db)
	notifications := NewNotificationRepository(db)
	posts := NewPostRepository(db)
	comments := NewCommentRepository(db)

	ada := createUser(t, users, "ada")
	bob := createUser(t, users, "bob")
	cy := createUser(t, users, "cy")

	t.Run("unique email and name", func(t *testing.T) {
		err := users.Create(ctx, &entity.User{Name: "ada2", Email: "ada@example.com"})
		assert.True(t, errors.Is(err, repository.ErrDuplicateUser))

		err = users.Create(ctx, &entity.User{Name: "ada", Email: "other@example.com"})
		assert.True(t, errors.Is(err, repository.ErrDuplicateUser))
	})

	t.Run("find user", func(t *testing.T) {
		found, err := users.FindByEmail(ctx, " ada@example.com ")
		require.NoError(t, err)
		assert.Equal(t, ada.ID, found.ID)
		assert.Equal(t, "hash", found.PasswordHash)

		_, err = users.FindByID(ctx, entity.NewID())
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	})

	t.Run("follow runs in a transaction", func(t *testing.T) {
		tm := NewTransactionManager(client, db, &config.Config{Mongo: &config.MongoConfig{UseTransactions: true}})

		err := tm.Execute(ctx, func(txCtx context.Context, f repository.RepositoryFactory) error {
			return f.UserRepo().Follow(txCtx, ada.ID, bob.ID)
		})
		require.NoError(t, err)

		follower, _ := users.FindByID(ctx, ada.ID)
		followee, _ := users.FindByID(ctx, bob.ID)
		assert.Equal(t, []entity.ID{bob.ID}, follower.Following)
		assert.Equal(t, []entity.ID{ada.ID}, followee.Followers)

		// An aborted transaction leaves both sides untouched.
		err = tm.Execute(ctx, func(txCtx context.Context, f repository.RepositoryFactory) error {
			if err := f.UserRepo().Follow(txCtx, ada.ID, cy.ID); err != nil {
				return err
			}
			return f.UserRepo().Follow(txCtx, entity.NewID(), cy.ID)
		})
		assert.True(t, errors.Is(err, repository.ErrUserNotFound))

		follower, _ = users.FindByID(ctx, ada.ID)
		assert.False(t, follower.IsFollowing(cy.ID))

		require.NoError(t, users.Unfollow(ctx, ada.ID, bob.ID))
		follower, _ = users.FindByID(ctx, ada.ID)
		assert.Empty(t, follower.Following)
	})

	t.Run("conversation history and chat partners", func(t *testing.T) {
		send := func(from, to *entity.User, text string) *entity.Message {
			m := &entity.Message{Sender: from.Summary(), Receiver: to.Summary(), Text: text}
			require.NoError(t, messages.Create(ctx, m))
			return m
		}

		first := send(ada, bob, "hi bob")
		send(bob, ada, "hi ada")
		send(ada, cy, "hey cy")
		send(bob, cy, "unrelated")

		stored, err := messages.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", stored.Receiver.Name)
		assert.Equal(t, "ada@example.com", stored.Sender.Email)

		history, err := messages.FindConversation(ctx, bob.ID, ada.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "hi bob", history[0].Text)
		assert.Equal(t, "hi ada", history[1].Text)

		partners, err := messages.ListChatPartners(ctx, ada.ID)
		require.NoError(t, err)
		require.Len(t, partners, 2)
		assert.Equal(t, cy.ID, partners[0].ID)
		assert.Equal(t, "hey cy", partners[0].LastMessage)
		assert.Equal(t, bob.ID, partners[1].ID)
		assert.Equal(t, "hi ada", partners[1].LastMessage)
	})

	t.Run("notifications are scoped to the recipient", func(t *testing.T) {
		n := &entity.Notification{From: ada.Summary(), To: bob.Summary(), Type: entity.NotificationFollow}
		require.NoError(t, notifications.Create(ctx, n))

		listed, err := notifications.ListByRecipient(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "ada", listed[0].From.Name)

		_, err = notifications.MarkRead(ctx, n.ID, cy.ID)
		assert.True(t, errors.Is(err, repository.ErrNotificationNotFound))

		read, err := notifications.MarkRead(ctx, n.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, read.Read)

		require.NoError(t, notifications.Delete(ctx, n.ID, bob.ID))
		assert.True(t, errors.Is(notifications.Delete(ctx, n.ID, bob.ID), repository.ErrNotificationNotFound))
	})

	t.Run("posts likes and comments", func(t *testing.T) {
		p := &entity.Post{Author: ada.Summary(), Title: "Go", Content: "channels"}
		require.NoError(t, posts.Create(ctx, p))

		likes, liked, err := posts.ToggleLike(ctx, p.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, liked)
		assert.Equal(t, []entity.ID{bob.ID}, likes)

		likes, liked, err = posts.ToggleLike(ctx, p.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, liked)
		assert.Empty(t, likes)

		_, _, err = posts.ToggleLike(ctx, entity.NewID(), bob.ID)
		assert.True(t, errors.Is(err, repository.ErrPostNotFound))

		c := &entity.Comment{User: bob.Summary(), PostID: p.ID, Text: "nice"}
		require.NoError(t, comments.Create(ctx, c))
		require.NoError(t, posts.AddComment(ctx, p.ID, c.ID))

		updated, err := comments.UpdateText(ctx, c.ID, "very nice")
		require.NoError(t, err)
		assert.Equal(t, "very nice", updated.Text)
		assert.Equal(t, "bob", updated.User.Name)

		listed, err := comments.ListByPost(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, listed, 1)

		page, total, err := posts.List(ctx, entity.PostFilter{AuthorID: ada.ID}, entity.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, page, 1)
		assert.Equal(t, []entity.ID{c.ID}, page[0].Comments)
		assert.Equal(t, "ada", page[0].Author.Name)

		require.NoError(t, posts.RemoveComment(ctx, p.ID, c.ID))
		require.NoError(t, comments.Delete(ctx, c.ID))
		require.NoError(t, posts.Delete(ctx, p.ID))
		_, err = posts.FindByID(ctx, p.ID)
		assert.True(t, errors.Is(err, repository.ErrPostNotFound))
	})
}
