package mongodb

import (
	"context"

	"github.com/Suvay/sjnhs-web-draft/internal/entity"
	"github.com/Suvay/sjnhs-web-draft/internal/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (s *Store) findStaffMembers(ctx context.Context, filter bson.M) ([]entity.StaffMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cur, err := s.staff.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cur.Close(ctx)

	var docs []staffDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	list := make([]entity.StaffMember, 0, len(docs))
	for _, doc := range docs {
		m, err := doc.entity()
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, nil
}

func (s *Store) GetAllStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	return s.findStaffMembers(ctx, bson.M{})
}

func (s *Store) GetActiveStaffMembers(ctx context.Context) ([]entity.StaffMember, error) {
	return s.findStaffMembers(ctx, bson.M{"isActive": true})
}

func (s *Store) CreateStaffMember(ctx context.Context, m *entity.StaffMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	doc := staffDoc{
		ID:         m.ID.String(),
		Name:       m.Name,
		Position:   m.Position,
		Department: m.Department,
		Email:      m.Email,
		Phone:      m.Phone,
		ImageURL:   m.ImageURL,
		IsActive:   m.IsActive,
		Order:      m.Order,
	}
	_, err := s.staff.InsertOne(ctx, doc)
	return translate(err)
}

func (s *Store) UpdateStaffMember(ctx context.Context, id uuid.UUID, upd storage.StaffMemberUpdate) (*entity.StaffMember, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}

	filter := bson.M{"_id": id.String()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc staffDoc
	var err error
	if len(set) == 0 {
		err = s.staff.FindOne(ctx, filter).Decode(&doc)
	} else {
		err = s.staff.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	}
	if err != nil {
		return nil, translate(err)
	}

	m, err := doc.entity()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) DeleteStaffMember(ctx context.Context, id uuid.UUID) error {
	res, err := s.staff.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
