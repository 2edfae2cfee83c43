package service

import (
	"context"

	"devconnects/internal/domain/entity"
)

// PushReport summarises one best-effort push.
type PushReport struct {
	ReceiverOnline bool // The receiver had a presence entry when the push was attempted.
	Delivered      int  // Frames queued across all targeted connections.
}

// RealtimePusher delivers events to connected clients. Pushes are best-effort:
// callers persist first and only log push errors.
type RealtimePusher interface {
	// PushMessage notifies the receiver, the conversation room and the sender's other connections of m.
	PushMessage(ctx context.Context, m *entity.Message) (PushReport, error)

	// PushNotification notifies the recipient of n if they are online.
	PushNotification(ctx context.Context, n *entity.Notification) (PushReport, error)
}
