package domain

import (
	"github.com/notefold/notes-service/pkg/code"
)

// Access-control evaluator. These predicates are the single source of
// truth for authorization: every mutating operation must pass through
// them before touching storage. They are pure and never touch the
// database themselves.

// CanRead returns nil iff the identity authored the note or the note was
// shared with it.
func CanRead(identity *User, note *Note) error {
	if identity.ID == note.Author {
		return nil
	}
	if identity.HasSharedNote(note.ID) {
		return nil
	}
	return code.ErrorForbiddenAccess
}

// CanWrite returns nil iff the identity authored the note. Write covers
// update, delete and share initiation.
func CanWrite(identity *User, note *Note) error {
	if identity.ID == note.Author {
		return nil
	}
	return code.ErrorForbiddenAccess
}

// CanShare validates a share of note to recipient. The author cannot be
// the recipient, and a note already in the recipient's shared set cannot
// be granted twice.
func CanShare(note *Note, recipient *User) error {
	if recipient.ID == note.Author {
		return code.ErrorCannotShareWithSelf
	}
	if recipient.HasSharedNote(note.ID) {
		return code.ErrorAlreadyShared
	}
	return nil
}
