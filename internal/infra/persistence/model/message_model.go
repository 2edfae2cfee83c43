package model

import (
	"time"

	"devconnects/internal/domain/entity"
)

type MessageDocument struct {
	ID        entity.ID `bson:"_id"`
	Sender    entity.ID `bson:"sender"`
	Receiver  entity.ID `bson:"receiver"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *MessageDocument) ToEntity(users map[entity.ID]entity.UserSummary) *entity.Message {
	return &entity.Message{
		ID:        d.ID,
		Sender:    Summary(users, d.Sender),
		Receiver:  Summary(users, d.Receiver),
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromMessageEntity(m *entity.Message) *MessageDocument {
	return &MessageDocument{
		ID:        m.ID,
		Sender:    m.Sender.ID,
		Receiver:  m.Receiver.ID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ChatPartnerDocument is one row of the chat partners aggregation.
type ChatPartnerDocument struct {
	ID              entity.ID `bson:"_id"`
	Name            string    `bson:"name"`
	Email           string    `bson:"email"`
	Avatar          string    `bson:"avatar,omitempty"`
	LastMessage     string    `bson:"lastMessage"`
	LastMessageTime time.Time `bson:"lastMessageTime"`
}

func (d *ChatPartnerDocument) ToEntity() *entity.ChatPartner {
	return &entity.ChatPartner{
		ID:              d.ID,
		Name:            d.Name,
		Email:           d.Email,
		Avatar:          d.Avatar,
		LastMessage:     d.LastMessage,
		LastMessageTime: d.LastMessageTime,
	}
}
