package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationRoomID_IsOrderIndependent(t *testing.T) {
	a := NewID().Hex()
	b := NewID().Hex()

	assert.Equal(t, ConversationRoomID(a, b), ConversationRoomID(b, a))

	first, second, ok := ConversationParticipants(ConversationRoomID(a, b))
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{a, b}, []string{first, second})
}

func TestConversationParticipants_RejectsNonPairs(t *testing.T) {
	valid := NewID().Hex()

	for _, roomID := range []string{"", "lobby", valid, valid + "_", "x_" + valid} {
		_, _, ok := ConversationParticipants(roomID)
		assert.False(t, ok, roomID)
	}
}

func TestParseID(t *testing.T) {
	id := NewID()

	parsed, ok := ParseID(" " + id.Hex() + " ")
	assert.True(t, ok)
	assert.Equal(t, id, parsed)

	_, ok = ParseID("not-an-id")
	assert.False(t, ok)
}

func TestUser_IsFollowing(t *testing.T) {
	target := NewID()
	u := &User{Following: []ID{NewID(), target}}

	assert.True(t, u.IsFollowing(target))
	assert.False(t, u.IsFollowing(NewID()))
}
