// Package model holds the BSON documents stored in MongoDB and their mapping to domain entities.
package model

import (
	"time"

	"devconnects/internal/domain/entity"
)

// Collection names.
const (
	UsersCollection         = "users"
	MessagesCollection      = "messages"
	NotificationsCollection = "notifications"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
)

// UserDocument is the stored form of a user. Follow lists hold ids only.
type UserDocument struct {
	ID         entity.ID            `bson:"_id"`
	Name       string               `bson:"name"`
	Email      string               `bson:"email"`
	Password   string               `bson:"password,omitempty"`
	DOB        time.Time            `bson:"dob"`
	Avatar     string               `bson:"avatar,omitempty"`
	About      string               `bson:"about,omitempty"`
	Location   string               `bson:"location,omitempty"`
	LinkedIn   string               `bson:"linkedin,omitempty"`
	GitHub     string               `bson:"github,omitempty"`
	Website    string               `bson:"websites,omitempty"`
	Experience []ExperienceDocument `bson:"experience"`
	Followers  []entity.ID          `bson:"followers"`
	Following  []entity.ID          `bson:"following"`
	CreatedAt  time.Time            `bson:"createdAt"`
	UpdatedAt  time.Time            `bson:"updatedAt"`
}

type ExperienceDocument struct {
	Title       string     `bson:"title"`
	Company     string     `bson:"company"`
	Description string     `bson:"description,omitempty"`
	From        time.Time  `bson:"from"`
	To          *time.Time `bson:"to,omitempty"`
}

// UserSummaryDocument is the projection used to populate references.
type UserSummaryDocument struct {
	ID     entity.ID `bson:"_id"`
	Name   string    `bson:"name"`
	Email  string    `bson:"email"`
	Avatar string    `bson:"avatar,omitempty"`
}

// SummaryProjection selects the UserSummaryDocument fields.
var SummaryProjection = map[string]int{"_id": 1, "name": 1, "email": 1, "avatar": 1}

func (d *UserSummaryDocument) ToEntity() entity.UserSummary {
	return entity.UserSummary{ID: d.ID, Name: d.Name, Email: d.Email, Avatar: d.Avatar}
}

// ToEntity converts d. Nil slices become empty so they encode as [] rather than null.
func (d *UserDocument) ToEntity() *entity.User {
	if d == nil {
		return nil
	}

	experience := make([]entity.Experience, 0, len(d.Experience))
	for _, e := range d.Experience {
		experience = append(experience, entity.Experience(e))
	}

	return &entity.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		DOB:          d.DOB,
		Avatar:       d.Avatar,
		About:        d.About,
		Location:     d.Location,
		LinkedIn:     d.LinkedIn,
		GitHub:       d.GitHub,
		Website:      d.Website,
		Experience:   experience,
		Followers:    nonNilIDs(d.Followers),
		Following:    nonNilIDs(d.Following),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// FromUserEntity converts u for insertion.
func FromUserEntity(u *entity.User) *UserDocument {
	if u == nil {
		return nil
	}

	return &UserDocument{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.PasswordHash,
		DOB:        u.DOB,
		Avatar:     u.Avatar,
		About:      u.About,
		Location:   u.Location,
		LinkedIn:   u.LinkedIn,
		GitHub:     u.GitHub,
		Website:    u.Website,
		Experience: FromExperienceEntities(u.Experience),
		Followers:  nonNilIDs(u.Followers),
		Following:  nonNilIDs(u.Following),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func FromExperienceEntities(experience []entity.Experience) []ExperienceDocument {
	docs := make([]ExperienceDocument, 0, len(experience))
	for _, e := range experience {
		docs = append(docs, ExperienceDocument(e))
	}

	return docs
}

// Summary returns the summary resolved for id, or a bare id when the user no longer exists.
func Summary(users map[entity.ID]entity.UserSummary, id entity.ID) entity.UserSummary {
	if s, ok := users[id]; ok {
		return s
	}

	return entity.UserSummary{ID: id}
}

func nonNilIDs(ids []entity.ID) []entity.ID {
	if ids == nil {
		return []entity.ID{}
	}

	return ids
}
