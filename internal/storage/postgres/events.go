package postgres

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) GetAllEvents(ctx context.Context) ([]entity.Event, error) {
	var list []entity.Event
	if err := s.db.WithContext(ctx).Order("event_date DESC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetPublishedEvents(ctx context.Context) ([]entity.Event, error) {
	var list []entity.Event
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("event_date DESC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) CreateEvent(ctx context.Context, e *entity.Event) error {
	return translate(s.db.WithContext(ctx).Create(e).Error)
}

func (s *Store) UpdateEvent(ctx context.Context, id uuid.UUID, upd storage.EventUpdate) (*entity.Event, error) {
	var e entity.Event
	if err := s.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.EventDate != nil {
		e.EventDate = *upd.EventDate
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.IsPublished != nil {
		e.IsPublished = *upd.IsPublished
	}

	if err := s.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&entity.Event{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
