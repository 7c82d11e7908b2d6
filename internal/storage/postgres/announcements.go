package postgres

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	var list []entity.Announcement
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetPublishedAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	var list []entity.Announcement
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) CreateAnnouncement(ctx context.Context, a *entity.Announcement) error {
	return translate(s.db.WithContext(ctx).Create(a).Error)
}

func (s *Store) UpdateAnnouncement(ctx context.Context, id uuid.UUID, upd storage.AnnouncementUpdate) (*entity.Announcement, error) {
	var a entity.Announcement
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if upd.Title != nil {
		a.Title = *upd.Title
	}
	if upd.Content != nil {
		a.Content = *upd.Content
	}
	if upd.IsPublished != nil {
		a.IsPublished = *upd.IsPublished
	}

	if err := s.db.WithContext(ctx).Save(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *Store) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&entity.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
