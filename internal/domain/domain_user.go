// Package domain defines the domain models, the repository contracts and
// the access-control evaluator.
package domain

import "time"

// User is the user domain model. Password holds the hex encoded argon2id
// digest, never a plaintext password.
type User struct {
	ID             string
	Username       string
	Password       string
	FirstName      string
	LastName       string
	Notes          []string
	SharedNotes    []string
	IsActive       bool
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// HasSharedNote reports whether the note id was granted to the user.
func (u *User) HasSharedNote(noteID string) bool {
	for _, id := range u.SharedNotes {
		if id == noteID {
			return true
		}
	}
	return false
}

// AccessibleNoteIDs returns the union of owned and shared note ids.
func (u *User) AccessibleNoteIDs() []string {
	ids := make([]string, 0, len(u.Notes)+len(u.SharedNotes))
	ids = append(ids, u.Notes...)
	ids = append(ids, u.SharedNotes...)
	return ids
}
