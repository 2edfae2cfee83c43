package model

import (
	"time"

	"devconnects/internal/domain/entity"
)

type CommentDocument struct {
	ID        entity.ID `bson:"_id"`
	User      entity.ID `bson:"user"`
	Post      entity.ID `bson:"post"`
	Text      string    `bson:"text"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func (d *CommentDocument) ToEntity(users map[entity.ID]entity.UserSummary) *entity.Comment {
	return &entity.Comment{
		ID:        d.ID,
		User:      Summary(users, d.User),
		PostID:    d.Post,
		Text:      d.Text,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromCommentEntity(c *entity.Comment) *CommentDocument {
	return &CommentDocument{
		ID:        c.ID,
		User:      c.User.ID,
		Post:      c.PostID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
