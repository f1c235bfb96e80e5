package dao

import (
	"context"
	"errors"
	"time"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// noteRepository implements domain.NoteRepository.
type noteRepository struct {
	dao *Dao
}

// NewNoteRepository creates a NoteRepository instance.
func NewNoteRepository(dao *Dao) domain.NoteRepository {
	return &noteRepository{dao: dao}
}

func (r *noteRepository) toDomain(m *model.Note) *domain.Note {
	if m == nil {
		return nil
	}
	return &domain.Note{
		ID:             m.ID.Hex(),
		Author:         m.Author.Hex(),
		Title:          m.Title,
		Body:           m.Body,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}
}

func (r *noteRepository) GetActiveByID(ctx context.Context, id string) (*domain.Note, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var m model.Note
	err = r.dao.notes().FindOne(ctx, bson.M{"_id": oid, "isActive": true}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// Create inserts the note document and appends its id to the author's
// owned list inside one transaction. If the owner-list update cannot be
// applied the insert is rolled back, so no orphan note ever becomes
// visible.
func (r *noteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	author, err := bson.ObjectIDFromHex(note.Author)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	m := &model.Note{
		Author:         author,
		Title:          note.Title,
		Body:           note.Body,
		IsActive:       true,
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	err = r.dao.WithinTransaction(ctx, func(ctx context.Context) error {
		result, err := r.dao.notes().InsertOne(ctx, m)
		if err != nil {
			return err
		}
		oid, ok := result.InsertedID.(bson.ObjectID)
		if !ok {
			return mongo.ErrNilDocument
		}
		m.ID = oid

		update, err := r.dao.users().UpdateOne(ctx,
			bson.M{"_id": author, "isActive": true},
			bson.M{
				"$push": bson.M{"notes": oid},
				"$set":  bson.M{"_lastModifiedAt": now},
			},
		)
		if err != nil {
			return err
		}
		if update.MatchedCount == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// ListActiveByIDs fetches the active notes among ids, sorted by id so the
// same database state always yields the same result.
func (r *noteRepository) ListActiveByIDs(ctx context.Context, ids []string) ([]*domain.Note, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := bson.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return []*domain.Note{}, nil
	}

	cursor, err := r.dao.notes().Find(ctx,
		bson.M{"_id": bson.M{"$in": oids}, "isActive": true},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeAll(ctx, cursor)
}

func (r *noteRepository) SetInactive(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	result, err := r.dao.notes().UpdateOne(ctx,
		bson.M{"_id": oid, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "_lastModifiedAt": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *noteRepository) UpdateFields(ctx context.Context, id string, update domain.NoteUpdate) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	set := bson.M{"_lastModifiedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Body != nil {
		set["body"] = *update.Body
	}

	result, err := r.dao.notes().UpdateOne(ctx,
		bson.M{"_id": oid, "isActive": true},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SearchByAuthor runs a $text match against the title/body index, scoped
// to active notes owned by authorID. Shared notes are outside the search
// scope.
func (r *noteRepository) SearchByAuthor(ctx context.Context, authorID, query string) ([]*domain.Note, error) {
	author, err := bson.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	cursor, err := r.dao.notes().Find(ctx, bson.M{
		"author":   author,
		"isActive": true,
		"$text":    bson.M{"$search": query},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return r.decodeAll(ctx, cursor)
}

func (r *noteRepository) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Note, error) {
	notes := []*domain.Note{}
	for cursor.Next(ctx) {
		var m model.Note
		if err := cursor.Decode(&m); err != nil {
			return nil, err
		}
		notes = append(notes, r.toDomain(&m))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
