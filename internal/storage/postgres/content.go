package postgres

import (
	"context"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) GetContentPage(ctx context.Context, pageKey string) (*entity.ContentPage, error) {
	var p entity.ContentPage
	if err := s.db.WithContext(ctx).Where("page_key = ?", pageKey).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *Store) GetAllContentPages(ctx context.Context) ([]entity.ContentPage, error) {
	var pages []entity.ContentPage
	if err := s.db.WithContext(ctx).Order("last_modified DESC").Find(&pages).Error; err != nil {
		return nil, translate(err)
	}
	return pages, nil
}

func (s *Store) CreateContentPage(ctx context.Context, p *entity.ContentPage) error {
	return translate(s.db.WithContext(ctx).Create(p).Error)
}

func (s *Store) UpdateContentPage(ctx context.Context, id uuid.UUID, upd storage.ContentPageUpdate) (*entity.ContentPage, error) {
	var p entity.ContentPage
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Content != nil {
		p.Content = upd.Content
	}
	if upd.IsPublished != nil {
		p.IsPublished = *upd.IsPublished
	}
	if upd.ModifiedBy != nil {
		p.ModifiedBy = upd.ModifiedBy
	}
	p.LastModified = time.Now().UTC()

	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}
