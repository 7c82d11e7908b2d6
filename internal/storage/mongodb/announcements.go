package mongodb

import (
	"context"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) findAnnouncements(ctx context.Context, filter bson.M) ([]entity.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.announcements.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	var docs []announcementDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]entity.Announcement, 0, len(docs))
	for _, doc := range docs {
		a, err := doc.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func (s *Store) GetAllAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return s.findAnnouncements(ctx, bson.M{})
}

func (s *Store) GetPublishedAnnouncements(ctx context.Context) ([]entity.Announcement, error) {
	return s.findAnnouncements(ctx, bson.M{"isPublished": true})
}

func (s *Store) CreateAnnouncement(ctx context.Context, a *entity.Announcement) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	doc := announcementDoc{
		ID:          a.ID.String(),
		Title:       a.Title,
		Content:     a.Content,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   uuidPtrToString(a.CreatedBy),
	}
	_, err := s.announcements.InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) UpdateAnnouncement(ctx context.Context, id uuid.UUID, upd storage.AnnouncementUpdate) (*entity.Announcement, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}

	filter := bson.M{"_id": id.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc announcementDoc
	var err error
	if len(set) == 0 {
		err = s.announcements.FindOne(ctx, filter).Decode(&doc)
	} else {
		err = s.announcements.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	}
	if err != nil {
		return nil, translate(err)
	}

	a, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	res, err := s.announcements.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
