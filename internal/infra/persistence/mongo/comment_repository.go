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

type commentRepository struct {
	comments  *mongo.Collection
	summaries summaryLoader
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{
		comments:  db.Collection(model.CommentsCollection),
		summaries: newSummaryLoader(db),
	}
}

func (repo *commentRepository) Create(ctx context.Context, c *entity.Comment) error {
	if c.ID.IsZero() {
		c.ID = entity.NewID()
	}
	now := timestamp()
	c.CreatedAt, c.UpdatedAt = now, now

	if _, err := repo.comments.InsertOne(ctx, model.FromCommentEntity(c)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Comment, error) {
	var doc model.CommentDocument
	if err := repo.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comment")
	}

	return repo.populate(ctx, &doc)
}

func (repo *commentRepository) ListByPost(ctx context.Context, postID entity.ID) ([]*entity.Comment, error) {
	cursor, err := repo.comments.Find(ctx,
		bson.M{"post": postID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	var docs []model.CommentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode comments")
	}

	authors := make([]entity.ID, 0, len(docs))
	for i := range docs {
		authors = append(authors, docs[i].User)
	}
	users, err := repo.summaries.load(ctx, authors...)
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, docs[i].ToEntity(users))
	}

	return comments, nil
}

func (repo *commentRepository) UpdateText(ctx context.Context, id entity.ID, text string) (*entity.Comment, error) {
	var doc model.CommentDocument
	err := repo.comments.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"text": text, "updatedAt": timestamp()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	return repo.populate(ctx, &doc)
}

func (repo *commentRepository) Delete(ctx context.Context, id entity.ID) error {
	result, err := repo.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comment")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

func (repo *commentRepository) populate(ctx context.Context, doc *model.CommentDocument) (*entity.Comment, error) {
	users, err := repo.summaries.load(ctx, doc.User)
	if err != nil {
		return nil, err
	}

	return doc.ToEntity(users), nil
}
