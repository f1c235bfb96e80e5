package dao

import (
	"context"
	"errors"
	"time"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// userRepository implements domain.UserRepository.
type userRepository struct {
	dao *Dao
}

// NewUserRepository creates a UserRepository instance.
func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	user := &domain.User{
		ID:             m.ID.Hex(),
		Username:       m.Username,
		Password:       m.Password,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}
	for _, id := range m.Notes {
		user.Notes = append(user.Notes, id.Hex())
	}
	for _, id := range m.SharedNotes {
		user.SharedNotes = append(user.SharedNotes, id.Hex())
	}
	return user
}

func (r *userRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m model.User
	err := r.dao.users().FindOne(ctx, bson.M{"username": username, "isActive": true}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	m := &model.User{
		Username:       user.Username,
		Password:       user.Password,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Notes:          []bson.ObjectID{},
		SharedNotes:    []bson.ObjectID{},
		IsActive:       true,
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	result, err := r.dao.users().InsertOne(ctx, m)
	if err != nil {
		return nil, err
	}

	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return nil, mongo.ErrNilDocument
	}
	m.ID = oid
	return r.toDomain(m), nil
}

// AppendSharedNote pushes the note id onto the user's shared set and
// stamps the modification time in the same update. The author's record
// and the note itself are untouched.
func (r *userRepository) AppendSharedNote(ctx context.Context, userID, noteID string) error {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrNotFound
	}
	nid, err := bson.ObjectIDFromHex(noteID)
	if err != nil {
		return domain.ErrNotFound
	}

	result, err := r.dao.users().UpdateOne(ctx,
		bson.M{"_id": uid, "isActive": true},
		bson.M{
			"$push": bson.M{"sharedNotes": nid},
			"$set":  bson.M{"_lastModifiedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
