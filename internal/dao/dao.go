// Package dao implements the repositories on top of MongoDB.
package dao

import (
	"context"

	"github.com/notefold/notes-service/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// Dao bundles the Mongo handles the repositories share. It implements
// domain.TxManager; it holds no per-request state and no cache, so every
// read reflects the committed state at call time.
type Dao struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func New(client *mongo.Client, database string, logger *zap.Logger) *Dao {
	return &Dao{
		client: client,
		db:     client.Database(database),
		logger: logger,
	}
}

func (d *Dao) users() *mongo.Collection {
	return d.db.Collection(model.CollectionUsers)
}

func (d *Dao) notes() *mongo.Collection {
	return d.db.Collection(model.CollectionNotes)
}

// WithinTransaction runs fn inside one Mongo session transaction. Every
// operation issued with the callback context joins the transaction; a
// concurrent reader observes either all of its writes or none.
func (d *Dao) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := d.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, fn(ctx)
	})
	return err
}

// EnsureNoteTextIndex provisions the full-text index over note title and
// body that SearchByAuthor queries against. Safe to call on every start.
func (d *Dao) EnsureNoteTextIndex(ctx context.Context) error {
	_, err := d.notes().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "body", Value: "text"},
		},
	})
	return err
}
