package entity

import (
	"time"
)

// Message is a direct message between two users. Messages are immutable once stored.
type Message struct {
	ID        ID          `json:"_id"`
	Sender    UserSummary `json:"sender"`
	Receiver  UserSummary `json:"receiver"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// RoomID is the conversation room both participants of m share.
func (m *Message) RoomID() string {
	return ConversationRoomID(m.Sender.ID.Hex(), m.Receiver.ID.Hex())
}

// ChatPartner is a user the caller has exchanged messages with, with the latest message of that conversation.
type ChatPartner struct {
	ID              ID        `json:"_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Avatar          string    `json:"avatar,omitempty"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}
