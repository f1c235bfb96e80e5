package domain

import "time"

// Note is the note domain model. Author is the owning user id and is
// immutable after creation.
type Note struct {
	ID             string
	Author         string
	Title          string
	Body           string
	IsActive       bool
	CreatedAt      time.Time
	LastModifiedAt time.Time
}

// NoteUpdate carries the partial fields of an update. Nil means the field
// is left untouched.
type NoteUpdate struct {
	Title *string
	Body  *string
}

// IsEmpty reports whether the update would be a no-op write.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Body == nil
}
