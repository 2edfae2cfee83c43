package mongo

import (
	"context"

	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// summaryLoader resolves user references to their display fields, one query per call.
type summaryLoader struct {
	users *mongo.Collection
}

func newSummaryLoader(db *mongo.Database) summaryLoader {
	return summaryLoader{users: db.Collection(model.UsersCollection)}
}

func (l summaryLoader) load(ctx context.Context, ids ...entity.ID) (map[entity.ID]entity.UserSummary, error) {
	unique := make([]entity.ID, 0, len(ids))
	seen := make(map[entity.ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id.IsZero() {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	summaries := make(map[entity.ID]entity.UserSummary, len(unique))
	if len(unique) == 0 {
		return summaries, nil
	}

	cursor, err := l.users.Find(ctx,
		bson.M{"_id": bson.M{"$in": unique}},
		options.Find().SetProjection(model.SummaryProjection),
	)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load user summaries")
	}

	var docs []model.UserSummaryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode user summaries")
	}

	for i := range docs {
		summaries[docs[i].ID] = docs[i].ToEntity()
	}

	return summaries, nil
}
