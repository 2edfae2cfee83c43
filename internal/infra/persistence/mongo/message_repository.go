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

type messageRepository struct {
	messages  *mongo.Collection
	summaries summaryLoader
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{
		messages:  db.Collection(model.MessagesCollection),
		summaries: newSummaryLoader(db),
	}
}

func (repo *messageRepository) Create(ctx context.Context, m *entity.Message) error {
	if m.ID.IsZero() {
		m.ID = entity.NewID()
	}
	now := timestamp()
	m.CreatedAt, m.UpdatedAt = now, now

	if _, err := repo.messages.InsertOne(ctx, model.FromMessageEntity(m)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	return nil
}

func (repo *messageRepository) FindByID(ctx context.Context, id entity.ID) (*entity.Message, error) {
	var doc model.MessageDocument
	if err := repo.messages.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find message")
	}

	users, err := repo.summaries.load(ctx, doc.Sender, doc.Receiver)
	if err != nil {
		return nil, err
	}

	return doc.ToEntity(users), nil
}

// FindConversation orders by createdAt, then _id so messages stored within the same millisecond keep insertion order.
func (repo *messageRepository) FindConversation(ctx context.Context, a, b entity.ID) ([]*entity.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender": a, "receiver": b},
		bson.M{"sender": b, "receiver": a},
	}}
	sort := bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

	cursor, err := repo.messages.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find conversation")
	}

	var docs []model.MessageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode conversation")
	}

	users, err := repo.summaries.load(ctx, a, b)
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.Message, 0, len(docs))
	for i := range docs {
		messages = append(messages, docs[i].ToEntity(users))
	}

	return messages, nil
}

func (repo *messageRepository) ListChatPartners(ctx context.Context, userID entity.ID) ([]*entity.ChatPartner, error) {
	cursor, err := repo.messages.Aggregate(ctx, chatPartnersPipeline(userID))
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate chat partners")
	}

	var docs []model.ChatPartnerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode chat partners")
	}

	partners := make([]*entity.ChatPartner, 0, len(docs))
	for i := range docs {
		partners = append(partners, docs[i].ToEntity())
	}

	return partners, nil
}

// chatPartnersPipeline groups userID's messages by counterpart, keeping the newest message of each conversation.
func chatPartnersPipeline(userID entity.ID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"sender": userID},
			bson.M{"receiver": userID},
		}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$sender", userID}},
				"$receiver",
				"$sender",
			}},
			"lastMessage": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UsersCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$project", Value: bson.M{
			"_id":             "$user._id",
			"name":            "$user.name",
			"email":           "$user.email",
			"avatar":          "$user.avatar",
			"lastMessage":     "$lastMessage.text",
			"lastMessageTime": "$lastMessage.createdAt",
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "lastMessageTime", Value: -1}}}},
	}
}
