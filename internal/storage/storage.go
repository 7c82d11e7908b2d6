package storage

import (
	"context"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Sentinel errors shared by every backend. Callers match with errors.Is; the
// route layer maps them to 404 and 400 respectively.
var (
	ErrNotFound  = apperror.ErrNotFound
	ErrDuplicate = apperror.ErrDuplicate
)

// Storage is the single contract both backends implement. Identifiers are
// opaque UUIDs end-to-end; no backend-specific id shape crosses this
// boundary.
//
// Ordering contracts:
//   - announcements: newest first by createdAt
//   - events: newest first by eventDate
//   - staff: ascending order, then name
//   - settings: ascending key
type Storage interface {
	// Users
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	CreateUser(ctx context.Context, u *entity.User) error

	// Content pages
	GetContentPage(ctx context.Context, pageKey string) (*entity.ContentPage, error)
	GetAllContentPages(ctx context.Context) ([]entity.ContentPage, error)
	CreateContentPage(ctx context.Context, p *entity.ContentPage) error
	UpdateContentPage(ctx context.Context, id uuid.UUID, upd ContentPageUpdate) (*entity.ContentPage, error)

	// Announcements
	GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	GetPublishedAnnouncements(ctx context.Context) ([]entity.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *entity.Announcement) error
	UpdateAnnouncement(ctx context.Context, id uuid.UUID, upd AnnouncementUpdate) (*entity.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error

	// Staff members
	GetAllStaffMembers(ctx context.Context) ([]entity.StaffMember, error)
	GetActiveStaffMembers(ctx context.Context) ([]entity.StaffMember, error)
	CreateStaffMember(ctx context.Context, s *entity.StaffMember) error
	UpdateStaffMember(ctx context.Context, id uuid.UUID, upd StaffMemberUpdate) (*entity.StaffMember, error)
	DeleteStaffMember(ctx context.Context, id uuid.UUID) error

	// Events
	GetAllEvents(ctx context.Context) ([]entity.Event, error)
	GetPublishedEvents(ctx context.Context) ([]entity.Event, error)
	CreateEvent(ctx context.Context, e *entity.Event) error
	UpdateEvent(ctx context.Context, id uuid.UUID, upd EventUpdate) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// Site settings
	GetAllSiteSettings(ctx context.Context) ([]entity.SiteSetting, error)
	GetSiteSetting(ctx context.Context, key string) (*entity.SiteSetting, error)
	UpdateSiteSetting(ctx context.Context, key, value string) (*entity.SiteSetting, error)

	// Name identifies the active backend ("postgres" or "mongodb").
	Name() string
	Ping(ctx context.Context) error
}

// Update structs carry partial mutations: nil fields are left untouched.
// Two concurrent updates to the same record are last-writer-wins.

type ContentPageUpdate struct {
	Title       *string
	Content     datatypes.JSON
	IsPublished *bool
	ModifiedBy  *uuid.UUID
}

type AnnouncementUpdate struct {
	Title       *string
	Content     *string
	IsPublished *bool
}

type StaffMemberUpdate struct {
	Name       *string
	Position   *string
	Department *string
	Email      *string
	Phone      *string
	ImageURL   *string
	IsActive   *bool
	Order      *int
}

type EventUpdate struct {
	Title       *string
	Description *string
	EventDate   *time.Time
	Location    *string
	IsPublished *bool
}
