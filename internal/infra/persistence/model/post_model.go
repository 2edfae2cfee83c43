package model

import (
	"time"

	"devconnects/internal/domain/entity"
)

type PostDocument struct {
	ID        entity.ID   `bson:"_id"`
	Author    entity.ID   `bson:"author"`
	Title     string      `bson:"title"`
	Content   string      `bson:"content"`
	Images    []string    `bson:"images"`
	Likes     []entity.ID `bson:"likes"`
	Comments  []entity.ID `bson:"comments"`
	CreatedAt time.Time   `bson:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt"`
}

func (d *PostDocument) ToEntity(users map[entity.ID]entity.UserSummary) *entity.Post {
	images := d.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Post{
		ID:        d.ID,
		Author:    Summary(users, d.Author),
		Title:     d.Title,
		Content:   d.Content,
		Images:    images,
		Likes:     nonNilIDs(d.Likes),
		Comments:  nonNilIDs(d.Comments),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromPostEntity(p *entity.Post) *PostDocument {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &PostDocument{
		ID:        p.ID,
		Author:    p.Author.ID,
		Title:     p.Title,
		Content:   p.Content,
		Images:    images,
		Likes:     nonNilIDs(p.Likes),
		Comments:  nonNilIDs(p.Comments),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
