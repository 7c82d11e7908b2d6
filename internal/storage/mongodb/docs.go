package mongodb

import (
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document shapes. Field names match the collections the site has always
// used; _id holds the entity UUID as a string. Page content is kept as the
// raw JSON text so the payload round-trips byte-identical with the
// relational backend.

type userDoc struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	CreatedAt time.Time `bson:"createdAt"`
}

type pageDoc struct {
	ID           string    `bson:"_id"`
	PageKey      string    `bson:"pageKey"`
	Title        string    `bson:"title"`
	Content      string    `bson:"content,omitempty"`
	IsPublished  bool      `bson:"isPublished"`
	LastModified time.Time `bson:"lastModified"`
	ModifiedBy   *string   `bson:"modifiedBy,omitempty"`
}

type announcementDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Content     string    `bson:"content"`
	IsPublished bool      `bson:"isPublished"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedBy   *string   `bson:"createdBy,omitempty"`
}

type staffDoc struct {
	ID         string `bson:"_id"`
	Name       string `bson:"name"`
	Position   string `bson:"position"`
	Department string `bson:"department,omitempty"`
	Email      string `bson:"email,omitempty"`
	Phone      string `bson:"phone,omitempty"`
	ImageURL   string `bson:"imageUrl,omitempty"`
	IsActive   bool   `bson:"isActive"`
	Order      int    `bson:"order"`
}

type eventDoc struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	EventDate   time.Time `bson:"eventDate"`
	Location    string    `bson:"location,omitempty"`
	IsPublished bool      `bson:"isPublished"`
	CreatedAt   time.Time `bson:"createdAt"`
	CreatedBy   *string   `bson:"createdBy,omitempty"`
}

type settingDoc struct {
	ID           string    `bson:"_id"`
	Key          string    `bson:"key"`
	Value        string    `bson:"value"`
	Description  string    `bson:"description,omitempty"`
	LastModified time.Time `bson:"lastModified"`
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func stringPtrToUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

func (d userDoc) entity() (entity.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.User{}, err
	}
	return entity.User{
		ID:        id,
		Username:  d.Username,
		Password:  d.Password,
		Role:      d.Role,
		CreatedAt: d.CreatedAt,
	}, nil
}

func (d pageDoc) entity() (entity.ContentPage, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.ContentPage{}, err
	}
	var content datatypes.JSON
	if d.Content != "" {
		content = datatypes.JSON(d.Content)
	}
	return entity.ContentPage{
		ID:           id,
		PageKey:      d.PageKey,
		Title:        d.Title,
		Content:      content,
		IsPublished:  d.IsPublished,
		LastModified: d.LastModified,
		ModifiedBy:   stringPtrToUUID(d.ModifiedBy),
	}, nil
}

func (d announcementDoc) entity() (entity.Announcement, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Announcement{}, err
	}
	return entity.Announcement{
		ID:          id,
		Title:       d.Title,
		Content:     d.Content,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   stringPtrToUUID(d.CreatedBy),
	}, nil
}

func (d staffDoc) entity() (entity.StaffMember, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.StaffMember{}, err
	}
	return entity.StaffMember{
		ID:         id,
		Name:       d.Name,
		Position:   d.Position,
		Department: d.Department,
		Email:      d.Email,
		Phone:      d.Phone,
		ImageURL:   d.ImageURL,
		IsActive:   d.IsActive,
		Order:      d.Order,
	}, nil
}

func (d eventDoc) entity() (entity.Event, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.Event{}, err
	}
	return entity.Event{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		EventDate:   d.EventDate,
		Location:    d.Location,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   stringPtrToUUID(d.CreatedBy),
	}, nil
}

func (d settingDoc) entity() (entity.SiteSetting, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return entity.SiteSetting{}, err
	}
	return entity.SiteSetting{
		ID:           id,
		Key:          d.Key,
		Value:        d.Value,
		Description:  d.Description,
		LastModified: d.LastModified,
	}, nil
}
