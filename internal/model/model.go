// Package model defines the persistence documents stored in MongoDB.
// Field names mirror the collection documents, including the underscore
// prefixed audit timestamps.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CollectionUsers and CollectionNotes name the two collections the
// service owns.
const (
	CollectionUsers = "users"
	CollectionNotes = "notes"
)

// User is a user document. Notes holds the ids of notes the user
// authored; SharedNotes holds ids of notes owned by others that were
// granted to this user. An id appears in exactly one user's Notes list
// but may appear in any number of SharedNotes sets.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty"`
	Username       string          `bson:"username"`
	Password       string          `bson:"password"`
	FirstName      string          `bson:"firstName"`
	LastName       string          `bson:"lastName"`
	Notes          []bson.ObjectID `bson:"notes"`
	SharedNotes    []bson.ObjectID `bson:"sharedNotes"`
	IsActive       bool            `bson:"isActive"`
	CreatedAt      time.Time       `bson:"_createdAt"`
	LastModifiedAt time.Time       `bson:"_lastModifiedAt"`
}

// Note is a note document. Author never changes after creation; sharing
// grants access without transferring ownership.
type Note struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Author         bson.ObjectID `bson:"author"`
	Title          string        `bson:"title"`
	Body           string        `bson:"body"`
	IsActive       bool          `bson:"isActive"`
	CreatedAt      time.Time     `bson:"_createdAt"`
	LastModifiedAt time.Time     `bson:"_lastModifiedAt"`
}
