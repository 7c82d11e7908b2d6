package mongodb

import (
	"context"
	"time"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) GetAllSiteSettings(ctx context.Context) ([]entity.SiteSetting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})
	cur, err := s.settings.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	var docs []settingDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]entity.SiteSetting, 0, len(docs))
	for _, doc := range docs {
		setting, err := doc.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, setting)
	}
	return list, nil
}

func (s *Store) GetSiteSetting(ctx context.Context, key string) (*entity.SiteSetting, error) {
	var doc settingDoc
	if err := s.settings.FindOne(ctx, bson.M{"key": key}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	setting, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// UpdateSiteSetting upserts by key so it works whether the setting exists or
// not; _id is only assigned on insert.
func (s *Store) UpdateSiteSetting(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	update := bson.M{
		"$set": bson.M{
			"value":        value,
			"lastModified": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id": uuid.New().String(),
			"key": key,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc settingDoc
	err := s.settings.FindOneAndUpdate(ctx, bson.M{"key": key}, update, opts).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}

	setting, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
