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

type postRepository struct {
	posts     *mongo.Collection
	summaries summaryLoader
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *mongo.Database) repository.PostRepository {
	return &postRepository{
		posts:     db.Collection(model.PostsCollection),
		summaries: newSummaryLoader(db),
	}
}

func (repo *postRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.ID.IsZero() {
		p.ID = entity.NewID()
	}
	now := timestamp()
	p.CreatedAt, p.UpdatedAt = now, now

	if _, err := repo.posts.InsertOne(ctx, model.FromPostEntity(p)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	return nil
}

func (repo *postRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Post, error) {
	var doc model.PostDocument
	if err := repo.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find post")
	}

	users, err := repo.summaries.load(ctx, doc.Author)
	if err != nil {
		return nil, err
	}

	return doc.ToEntity(users), nil
}

func (repo *postRepository) List(ctx context.Context, filter entity.PostFilter, page entity.PageRequest) ([]*entity.Post, int64, error) {
	query := bson.M{}
	if !filter.AuthorID.IsZero() {
		query["author"] = filter.AuthorID
	}
	if !filter.LikedBy.IsZero() {
		query["likes"] = filter.LikedBy
	}

	total, err := repo.posts.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count posts")
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	if page.Limit > 0 {
		findOptions.SetSkip(page.Skip()).SetLimit(int64(page.Limit))
	}

	cursor, err := repo.posts.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list posts")
	}

	var docs []model.PostDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to decode posts")
	}

	authors := make([]entity.ID, 0, len(docs))
	for i := range docs {
		authors = append(authors, docs[i].Author)
	}
	users, err := repo.summaries.load(ctx, authors...)
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].ToEntity(users))
	}

	return posts, total, nil
}

func (repo *postRepository) Update(ctx context.Context, p *entity.Post) error {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	p.UpdatedAt = timestamp()

	result, err := repo.posts.UpdateOne(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{
			"title":     p.Title,
			"content":   p.Content,
			"images":    images,
			"updatedAt": p.UpdatedAt,
		}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}
	if result.MatchedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func (repo *postRepository) Delete(ctx context.Context, id entity.ID) error {
	result, err := repo.posts.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete post")
	}
	if result.DeletedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// ToggleLike flips the like in a single pipeline update so concurrent toggles cannot duplicate an entry.
func (repo *postRepository) ToggleLike(ctx context.Context, postID, userID entity.ID) ([]entity.ID, bool, error) {
	likes := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, likes}},
				bson.M{"$setDifference": bson.A{likes, bson.A{userID}}},
				bson.M{"$concatArrays": bson.A{likes, bson.A{userID}}},
			}},
		}}},
	}

	var doc model.PostDocument
	err := repo.posts.FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		update,
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetProjection(bson.M{"likes": 1}),
	).Decode(&doc)
	if err != nil {
		if isNotFound(err) {
			return nil, false, repository.ErrPostNotFound
		}

		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to toggle like")
	}

	post := doc.ToEntity(nil)

	return post.Likes, post.LikedBy(userID), nil
}

func (repo *postRepository) AddComment(ctx context.Context, postID, commentID entity.ID) error {
	return repo.updateComments(ctx, postID, bson.M{"$push": bson.M{"comments": commentID}})
}

func (repo *postRepository) RemoveComment(ctx context.Context, postID, commentID entity.ID) error {
	return repo.updateComments(ctx, postID, bson.M{"$pull": bson.M{"comments": commentID}})
}

func (repo *postRepository) updateComments(ctx context.Context, postID entity.ID, update bson.M) error {
	result, err := repo.posts.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update post comments")
	}
	if result.MatchedCount == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}
