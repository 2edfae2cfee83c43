package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "devconnects/internal/delivery/context"
	"devconnects/internal/domain/entity"
	domainerrors "devconnects/internal/domain/errors"
	"devconnects/internal/domain/repository"
	"devconnects/internal/domain/service"
	"devconnects/internal/usecase"

	"go.uber.org/fx"
)

type messageService struct {
	messageRepo repository.MessageRepository
	pusher      service.RealtimePusher
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for the message service, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Pusher      service.RealtimePusher
	Logger      *slog.Logger
}

func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		pusher:      params.Pusher,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send persists first; the push runs only once the message is durable.
func (srv *messageService) Send(ctx context.Context, senderID, receiverID, text string) (*entity.Message, error) {
	sender, err := parseUserID(senderID)
	if err != nil {
		return nil, err
	}
	receiver, err := parseUserID(receiverID)
	if err != nil {
		return nil, err
	}

	// Stored verbatim; clients render message text as text, so markup and code survive.
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("text is required")
	}

	message := &entity.Message{
		Sender:   entity.UserSummary{ID: sender},
		Receiver: entity.UserSummary{ID: receiver},
		Text:     text,
	}
	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("Failed to store message", slog.String("senderID", senderID), slog.String("receiverID", receiverID), slog.Any("error", err))

		return nil, mapRepoError(err, "failed to store message")
	}

	populated, err := srv.messageRepo.FindByID(ctx, message.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to reload stored message", slog.String("messageID", message.ID.Hex()), slog.Any("error", err))
		populated = message
	}

	report, err := srv.pusher.PushMessage(ctx, populated)
	if err != nil {
		srv.log(ctx).Warn("Failed to push message", slog.String("messageID", message.ID.Hex()), slog.Any("error", err))
	} else {
		srv.log(ctx).Debug("Message pushed",
			slog.String("messageID", message.ID.Hex()),
			slog.Bool("receiverOnline", report.ReceiverOnline),
			slog.Int("delivered", report.Delivered),
		)
	}

	return populated, nil
}

func (srv *messageService) History(ctx context.Context, userID, otherID string) ([]*entity.Message, error) {
	a, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}
	b, err := parseUserID(otherID)
	if err != nil {
		return nil, err
	}

	messages, err := srv.messageRepo.FindConversation(ctx, a, b)
	if err != nil {
		return nil, mapRepoError(err, "failed to load conversation")
	}

	return messages, nil
}

func (srv *messageService) ChatPartners(ctx context.Context, userID string) ([]*entity.ChatPartner, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return nil, err
	}

	partners, err := srv.messageRepo.ListChatPartners(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "failed to list chat partners")
	}

	return partners, nil
}
