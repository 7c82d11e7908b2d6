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

func (s *Store) GetContentPage(ctx context.Context, pageKey string) (*entity.ContentPage, error) {
	var doc pageDoc
	if err := s.pages.FindOne(ctx, bson.M{"pageKey": pageKey}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	p, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetAllContentPages(ctx context.Context) ([]entity.ContentPage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastModified", Value: -1}})
	cur, err := s.pages.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	var docs []pageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	pages := make([]entity.ContentPage, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.entity()
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

func (s *Store) CreateContentPage(ctx context.Context, p *entity.ContentPage) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.LastModified.IsZero() {
		p.LastModified = time.Now().UTC()
	}

	doc := pageDoc{
		ID:           p.ID.String(),
		PageKey:      p.PageKey,
		Title:        p.Title,
		Content:      string(p.Content),
		IsPublished:  p.IsPublished,
		LastModified: p.LastModified,
		ModifiedBy:   uuidPtrToString(p.ModifiedBy),
	}
	_, err := s.pages.InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) UpdateContentPage(ctx context.Context, id uuid.UUID, upd storage.ContentPageUpdate) (*entity.ContentPage, error) {
	set := bson.M{"lastModified": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = string(upd.Content)
	}
	if upd.IsPublished != nil {
		set["isPublished"] = *upd.IsPublished
	}
	if upd.ModifiedBy != nil {
		set["modifiedBy"] = upd.ModifiedBy.String()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc pageDoc
	err := s.pages.FindOneAndUpdate(ctx, bson.M{"_id": id.String()}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}

	p, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &p, nil
}
