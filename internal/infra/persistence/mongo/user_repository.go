package mongo

import (
	"context"
	"strings"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository implements repository.UserRepository on the users collection.
type userRepository struct {
	users     *mongo.Collection
	summaries summaryLoader
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users:     db.Collection(model.UsersCollection),
		summaries: newSummaryLoader(db),
	}
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = entity.NewID()
	}
	now := timestamp()
	user.CreatedAt, user.UpdatedAt = now, now
	user.Email = strings.TrimSpace(user.Email)

	if _, err := repo.users.InsertOne(ctx, model.FromUserEntity(user)); err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateUser
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) FindByID(ctx context.Context, id entity.ID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": strings.TrimSpace(email)})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return doc.ToEntity(), nil
}

func (repo *userRepository) List(ctx context.Context, exclude []entity.ID) ([]*entity.User, error) {
	filter := bson.M{}
	if len(exclude) > 0 {
		filter["_id"] = bson.M{"$nin": exclude}
	}

	cursor, err := repo.users.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	var docs []model.UserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].ToEntity())
	}

	return users, nil
}

// FindSummaries keeps the order of ids.
func (repo *userRepository) FindSummaries(ctx context.Context, ids []entity.ID) ([]entity.UserSummary, error) {
	byID, err := repo.summaries.load(ctx, ids...)
	if err != nil {
		return nil, err
	}

	summaries := make([]entity.UserSummary, 0, len(byID))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			summaries = append(summaries, s)
			delete(byID, id)
		}
	}

	return summaries, nil
}

func (repo *userRepository) UpdateProfile(ctx context.Context, id entity.ID, update *entity.ProfileUpdate) (*entity.User, error) {
	set := bson.M{"updatedAt": timestamp()}
	for field, value := range map[string]*string{
		"avatar":   update.Avatar,
		"about":    update.About,
		"location": update.Location,
		"linkedin": update.LinkedIn,
		"github":   update.GitHub,
		"websites": update.Website,
	} {
		if value != nil {
			set[field] = *value
		}
	}
	if update.Experience != nil {
		set["experience"] = model.FromExperienceEntities(update.Experience)
	}

	var doc model.UserDocument
	err := repo.users.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	return doc.ToEntity(), nil
}

func (repo *userRepository) Follow(ctx context.Context, followerID, followeeID entity.ID) error {
	return repo.updateFollowSets(ctx, "$addToSet", followerID, followeeID)
}

func (repo *userRepository) Unfollow(ctx context.Context, followerID, followeeID entity.ID) error {
	return repo.updateFollowSets(ctx, "$pull", followerID, followeeID)
}

// updateFollowSets applies op to both sides of the edge. Callers wanting atomicity run it inside a transaction.
func (repo *userRepository) updateFollowSets(ctx context.Context, op string, followerID, followeeID entity.ID) error {
	now := timestamp()

	sides := []struct {
		id    entity.ID
		field string
		other entity.ID
	}{
		{id: followerID, field: "following", other: followeeID},
		{id: followeeID, field: "followers", other: followerID},
	}

	for _, side := range sides {
		result, err := repo.users.UpdateOne(ctx,
			bson.M{"_id": side.id},
			bson.M{op: bson.M{side.field: side.other}, "$set": bson.M{"updatedAt": now}},
		)
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update "+side.field)
		}
		if result.MatchedCount == 0 {
			return repository.ErrUserNotFound
		}
	}

	return nil
}
