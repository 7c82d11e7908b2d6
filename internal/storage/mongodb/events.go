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

func (s *Store) findEvents(ctx context.Context, filter bson.M) ([]entity.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "eventDate", Value: -1}})
	cur, err := s.events.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	var docs []eventDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]entity.Event, 0, len(docs))
	for _, doc := range docs {
		e, err := doc.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func (s *Store) GetAllEvents(ctx context.Context) ([]entity.Event, error) {
	return s.findEvents(ctx, bson.M{})
}

func (s *Store) GetPublishedEvents(ctx context.Context) ([]entity.Event, error) {
	return s.findEvents(ctx, bson.M{"isPublished": true})
}

func (s *Store) CreateEvent(ctx context.Context, e *entity.Event) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	doc := eventDoc{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		Location:    e.Location,
		IsPublished: e.IsPublished,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   uuidPtrToString(e.CreatedBy),
	}
	_, err := s.events.InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) UpdateEvent(ctx context.Context, id uuid.UUID, upd storage.EventUpdate) (*entity.Event, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.EventDate != nil {
		set["eventDate"] = *upd.EventDate
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}

	filter := bson.M{"_id": id.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc eventDoc
	var err error
	if len(set) == 0 {
		err = s.events.FindOne(ctx, filter).Decode(&doc)
	} else {
		err = s.events.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	}
	if err != nil {
		return nil, translate(err)
	}

	e, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Store) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	res, err := s.events.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
