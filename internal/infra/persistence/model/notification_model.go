package model

import (
	"time"

	"devconnects/internal/domain/entity"
)

type NotificationDocument struct {
	ID        entity.ID `bson:"_id"`
	From      entity.ID `bson:"from"`
	To        entity.ID `bson:"to"`
	Type      string    `bson:"type"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *NotificationDocument) ToEntity(users map[entity.ID]entity.UserSummary) *entity.Notification {
	return &entity.Notification{
		ID:        d.ID,
		From:      Summary(users, d.From),
		To:        Summary(users, d.To),
		Type:      entity.NotificationType(d.Type),
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromNotificationEntity(n *entity.Notification) *NotificationDocument {
	return &NotificationDocument{
		ID:        n.ID,
		From:      n.From.ID,
		To:        n.To.ID,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
