package postgres

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
)

func (s *Store) GetAllStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	var list []entity.StaffMember
	if err := s.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) GetActiveStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	var list []entity.StaffMember
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (s *Store) CreateStaffMember(ctx context.Context, m *entity.StaffMember) error {
	return translate(s.db.WithContext(ctx).Create(m).Error)
}

func (s *Store) UpdateStaffMember(ctx context.Context, id uuid.UUID, upd storage.StaffMemberUpdate) (*entity.StaffMember, error) {
	var m entity.StaffMember
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Position != nil {
		m.Position = *upd.Position
	}
	if upd.Department != nil {
		m.Department = *upd.Department
	}
	if upd.Email != nil {
		m.Email = *upd.Email
	}
	if upd.Phone != nil {
		m.Phone = *upd.Phone
	}
	if upd.ImageURL != nil {
		m.ImageURL = *upd.ImageURL
	}
	if upd.IsActive != nil {
		m.IsActive = *upd.IsActive
	}
	if upd.Order != nil {
		m.Order = *upd.Order
	}

	if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (s *Store) DeleteStaffMember(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&entity.StaffMember{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
