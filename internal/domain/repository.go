package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no active document
// matches. The service layer maps it onto the error taxonomy; callers
// match with errors.Is.
var ErrNotFound = errors.New("not found")

// UserRepository is the credential store contract. Lookups resolve the
// login key; services never address users by raw id, the identity always
// arrives through authentication.
type UserRepository interface {
	// GetActiveByUsername fetches an active user by login key.
	GetActiveByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new user document.
	Create(ctx context.Context, user *User) (*User, error)

	// AppendSharedNote appends a note id to the user's shared set and
	// stamps the modification time.
	AppendSharedNote(ctx context.Context, userID, noteID string) error
}

// NoteRepository is the note store contract.
type NoteRepository interface {
	// GetActiveByID fetches an active note by id.
	GetActiveByID(ctx context.Context, id string) (*Note, error)

	// Create inserts the note and appends its id to the author's owned
	// list in one atomic unit. A note must never become visible without
	// its owner reference.
	Create(ctx context.Context, note *Note) (*Note, error)

	// ListActiveByIDs fetches the active notes among ids. The result is
	// deterministic for one database state; the order itself is not part
	// of the contract.
	ListActiveByIDs(ctx context.Context, ids []string) ([]*Note, error)

	// SetInactive soft-deletes the note and stamps the modification time.
	SetInactive(ctx context.Context, id string) error

	// UpdateFields merges the provided fields and stamps the modification
	// time.
	UpdateFields(ctx context.Context, id string, update NoteUpdate) error

	// SearchByAuthor runs a full-text match over title and body, limited
	// to active notes owned by authorID.
	SearchByAuthor(ctx context.Context, authorID, query string) ([]*Note, error)
}

// TxManager scopes a function to one all-or-nothing transaction. Every
// repository call made with the callback context joins the transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
