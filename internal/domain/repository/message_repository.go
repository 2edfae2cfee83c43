package repository

import (
	"context"
	"errors"

	"devconnects/internal/domain/entity"
)

// ErrMessageNotFound is returned when no message matches the lookup.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists direct messages. Messages are never updated or deleted.
type MessageRepository interface {
	// Create stores m, using only the ids of m.Sender and m.Receiver, and assigns ID and timestamps.
	Create(ctx context.Context, m *entity.Message) error

	// FindByID returns the message with sender and receiver display fields resolved.
	FindByID(ctx context.Context, id entity.ID) (*entity.Message, error)

	// FindConversation returns every message between a and b in either direction, oldest first.
	FindConversation(ctx context.Context, a, b entity.ID) ([]*entity.Message, error)

	// ListChatPartners returns everyone userID has exchanged messages with, most recent conversation first.
	ListChatPartners(ctx context.Context, userID entity.ID) ([]*entity.ChatPartner, error)
}
