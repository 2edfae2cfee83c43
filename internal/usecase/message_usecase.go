package usecase

import (
	"context"

	"devconnects/internal/domain/entity"
)

// MessageUsecase is the direct message delivery path.
type MessageUsecase interface {
	// Send stores the message, then pushes it to connected clients. Push failures never fail Send.
	Send(ctx context.Context, senderID, receiverID, text string) (*entity.Message, error)

	// History returns the full conversation between userID and otherID, oldest first.
	History(ctx context.Context, userID, otherID string) ([]*entity.Message, error)

	// ChatPartners lists everyone userID has exchanged messages with, most recent first.
	ChatPartners(ctx context.Context, userID string) ([]*entity.ChatPartner, error)
}
