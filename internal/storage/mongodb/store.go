// Package mongodb implements the storage contract on MongoDB with the
// official driver. Documents carry the same UUID identifiers as the
// relational backend, stored as the string _id, so no ObjectID ever crosses
// the storage boundary.
package mongodb

import (
	"context"
	"errors"

	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Store struct {
	db            *mongo.Database
	users         *mongo.Collection
	pages         *mongo.Collection
	announcements *mongo.Collection
	staff         *mongo.Collection
	events        *mongo.Collection
	settings      *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		db:            db,
		users:         db.Collection("users"),
		pages:         db.Collection("content_pages"),
		announcements: db.Collection("announcements"),
		staff:         db.Collection("staff_members"),
		events:        db.Collection("events"),
		settings:      db.Collection("site_settings"),
	}
}

// EnsureIndexes creates the unique and sort indexes the contract relies on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_username"),
	})
	if err != nil {
		return err
	}

	_, err = s.pages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pageKey", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_pages_page_key"),
	})
	if err != nil {
		return err
	}

	_, err = s.settings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_settings_key"),
	})
	if err != nil {
		return err
	}

	_, err = s.announcements.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("idx_announcements_created"),
	})
	if err != nil {
		return err
	}

	_, err = s.events.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "eventDate", Value: -1}},
		Options: options.Index().SetName("idx_events_date"),
	})
	if err != nil {
		return err
	}

	_, err = s.staff.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetName("idx_staff_order_name"),
	})
	return err
}

func (s *Store) Name() string { return "mongodb" }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

// translate maps driver errors onto the storage sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return storage.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return storage.ErrDuplicate
	default:
		return err
	}
}
