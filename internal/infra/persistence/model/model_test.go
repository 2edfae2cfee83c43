package model

import (
	"testing"
	"time"

	"devconnects/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUserDocument_StoredFieldNames(t *testing.T) {
	u := &entity.User{ID: entity.NewID(), Name: "ada", Email: "ada@example.com", PasswordHash: "hash", Website: "https://ada.dev"}

	raw, err := bson.Marshal(FromUserEntity(u))
	require.NoError(t, err)

	var stored bson.M
	require.NoError(t, bson.Unmarshal(raw, &stored))
	assert.Equal(t, "hash", stored["password"])
	assert.Equal(t, "https://ada.dev", stored["websites"])
	assert.Equal(t, bson.A{}, stored["followers"])
}

func TestUserDocument_ToEntityNeverReturnsNilSlices(t *testing.T) {
	u := (&UserDocument{ID: entity.NewID()}).ToEntity()

	assert.NotNil(t, u.Followers)
	assert.NotNil(t, u.Following)
	assert.NotNil(t, u.Experience)
	assert.Nil(t, (*UserDocument)(nil).ToEntity())
}

func TestMessageDocument_PopulatesKnownUsers(t *testing.T) {
	sender := entity.UserSummary{ID: entity.NewID(), Name: "ada", Email: "ada@example.com"}
	deleted := entity.NewID()
	doc := &MessageDocument{ID: entity.NewID(), Sender: sender.ID, Receiver: deleted, Text: "hi", CreatedAt: time.Now()}

	m := doc.ToEntity(map[entity.ID]entity.UserSummary{sender.ID: sender})

	assert.Equal(t, sender, m.Sender)
	assert.Equal(t, entity.UserSummary{ID: deleted}, m.Receiver)
	assert.Equal(t, "hi", m.Text)
}
