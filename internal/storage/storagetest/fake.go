// Package storagetest provides an in-memory implementation of the storage
// contract for handler and middleware tests.
package storagetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
)

type Fake struct {
	mu            sync.Mutex
	users         map[uuid.UUID]entity.User
	pages         map[uuid.UUID]entity.ContentPage
	announcements map[uuid.UUID]entity.Announcement
	staff         map[uuid.UUID]entity.StaffMember
	events        map[uuid.UUID]entity.Event
	settings      map[uuid.UUID]entity.SiteSetting
}

var _ storage.Storage = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		users:         make(map[uuid.UUID]entity.User),
		pages:         make(map[uuid.UUID]entity.ContentPage),
		announcements: make(map[uuid.UUID]entity.Announcement),
		staff:         make(map[uuid.UUID]entity.StaffMember),
		events:        make(map[uuid.UUID]entity.Event),
		settings:      make(map[uuid.UUID]entity.SiteSetting),
	}
}

func (f *Fake) Name() string                   { return "fake" }
func (f *Fake) Ping(ctx context.Context) error { return nil }

// Users

func (f *Fake) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (f *Fake) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *Fake) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (f *Fake) CreateUser(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return storage.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	f.users[u.ID] = *u
	return nil
}

// Content pages

func (f *Fake) GetContentPage(ctx context.Context, pageKey string) (*entity.ContentPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pages {
		if p.PageKey == pageKey {
			p := p
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *Fake) GetAllContentPages(ctx context.Context) ([]entity.ContentPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.ContentPage, 0, len(f.pages))
	for _, p := range f.pages {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].LastModified.After(list[j].LastModified) })
	return list, nil
}

func (f *Fake) CreateContentPage(ctx context.Context, p *entity.ContentPage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.pages {
		if existing.PageKey == p.PageKey {
			return storage.ErrDuplicate
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.LastModified.IsZero() {
		p.LastModified = time.Now().UTC()
	}
	f.pages[p.ID] = *p
	return nil
}

func (f *Fake) UpdateContentPage(ctx context.Context, id uuid.UUID, upd storage.ContentPageUpdate) (*entity.ContentPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pages[id]
	if !ok {
		return nil, storage.ErrNotFound
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
	f.pages[id] = p
	return &p, nil
}

// Announcements

func (f *Fake) GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return f.listAnnouncements(false), nil
}

func (f *Fake) GetPublishedAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return f.listAnnouncements(true), nil
}

func (f *Fake) listAnnouncements(publishedOnly bool) []entity.Announcement {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.Announcement, 0, len(f.announcements))
	for _, a := range f.announcements {
		if publishedOnly && !a.IsPublished {
			continue
		}
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list
}

func (f *Fake) CreateAnnouncement(ctx context.Context, a *entity.Announcement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	f.announcements[a.ID] = *a
	return nil
}

func (f *Fake) UpdateAnnouncement(ctx context.Context, id uuid.UUID, upd storage.AnnouncementUpdate) (*entity.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.announcements[id]
	if !ok {
		return nil, storage.ErrNotFound
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
	f.announcements[id] = a
	return &a, nil
}

func (f *Fake) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.announcements[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.announcements, id)
	return nil
}

// Staff members

func (f *Fake) GetAllStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	return f.listStaff(false), nil
}

func (f *Fake) GetActiveStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	return f.listStaff(true), nil
}

func (f *Fake) listStaff(activeOnly bool) []entity.StaffMember {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.StaffMember, 0, len(f.staff))
	for _, m := range f.staff {
		if activeOnly && !m.IsActive {
			continue
		}
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Order != list[j].Order {
			return list[i].Order < list[j].Order
		}
		return list[i].Name < list[j].Name
	})
	return list
}

func (f *Fake) CreateStaffMember(ctx context.Context, m *entity.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.staff[m.ID] = *m
	return nil
}

func (f *Fake) UpdateStaffMember(ctx context.Context, id uuid.UUID, upd storage.StaffMemberUpdate) (*entity.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.staff[id]
	if !ok {
		return nil, storage.ErrNotFound
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
	f.staff[id] = m
	return &m, nil
}

func (f *Fake) DeleteStaffMember(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.staff[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.staff, id)
	return nil
}

// Events

func (f *Fake) GetAllEvents(ctx context.Context) ([]entity.Event, error) {
	return f.listEvents(false), nil
}

func (f *Fake) GetPublishedEvents(ctx context.Context) ([]entity.Event, error) {
	return f.listEvents(true), nil
}

func (f *Fake) listEvents(publishedOnly bool) []entity.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.Event, 0, len(f.events))
	for _, e := range f.events {
		if publishedOnly && !e.IsPublished {
			continue
		}
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].EventDate.After(list[j].EventDate) })
	return list
}

func (f *Fake) CreateEvent(ctx context.Context, e *entity.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	f.events[e.ID] = *e
	return nil
}

func (f *Fake) UpdateEvent(ctx context.Context, id uuid.UUID, upd storage.EventUpdate) (*entity.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.events[id]
	if !ok {
		return nil, storage.ErrNotFound
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
	f.events[id] = e
	return &e, nil
}

func (f *Fake) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

// Site settings

func (f *Fake) GetAllSiteSettings(ctx context.Context) ([]entity.SiteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]entity.SiteSetting, 0, len(f.settings))
	for _, s := range f.settings {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Key < list[j].Key })
	return list, nil
}

func (f *Fake) GetSiteSetting(ctx context.Context, key string) (*entity.SiteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.settings {
		if s.Key == key {
			s := s
			return &s, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *Fake) UpdateSiteSetting(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.settings {
		if s.Key == key {
			s.Value = value
			s.LastModified = time.Now().UTC()
			f.settings[id] = s
			return &s, nil
		}
	}
	s := entity.SiteSetting{
		ID:           uuid.New(),
		Key:          key,
		Value:        value,
		LastModified: time.Now().UTC(),
	}
	f.settings[s.ID] = s
	return &s, nil
}
