// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the identity of every stored record. Its string form is a 24 character hex string.
type ID = primitive.ObjectID

// NilID is the zero identity.
var NilID = primitive.NilObjectID

// NewID allocates a fresh identity.
func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID parses the hex form of an identity. ok is false for malformed input.
func ParseID(hex string) (id ID, ok bool) {
	parsed, err := primitive.ObjectIDFromHex(strings.TrimSpace(hex))
	if err != nil {
		return NilID, false
	}

	return parsed, true
}

// ConversationRoomID is the room shared by both participants of a direct conversation:
// the two ids sorted and joined with "_".
func ConversationRoomID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)

	return pair[0] + "_" + pair[1]
}

// ConversationParticipants splits a conversation room id. ok is false when roomID is not a pair of ids.
func ConversationParticipants(roomID string) (a, b string, ok bool) {
	a, b, found := strings.Cut(roomID, "_")
	if !found {
		return "", "", false
	}
	if _, valid := ParseID(a); !valid {
		return "", "", false
	}
	if _, valid := ParseID(b); !valid {
		return "", "", false
	}

	return a, b, true
}
