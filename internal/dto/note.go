package dto

import (
	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/pkg/timex"

	"github.com/jinzhu/copier"
)

// NoteCreateRequest carries the create-note parameters.
type NoteCreateRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// NoteUpdateRequest carries the partial update. At least one field must
// be present; an empty update is rejected before it reaches the
// repository.
type NoteUpdateRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

// IsEmpty reports whether no field was provided.
func (r *NoteUpdateRequest) IsEmpty() bool {
	return r.Title == nil && r.Body == nil
}

// NoteShareRequest names the recipient by username.
type NoteShareRequest struct {
	ShareWith string `json:"share_with" binding:"required,email"`
}

// SearchRequest carries the full-text query.
type SearchRequest struct {
	Q string `form:"q" binding:"required"`
}

// NoteCreatedDTO is the create-note response payload.
type NoteCreatedDTO struct {
	NoteID string `json:"note_id"`
}

// NoteDTO is the serialized form of one note.
type NoteDTO struct {
	ID             string     `json:"id"`
	Author         string     `json:"author"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	CreatedAt      timex.Time `json:"created_at"`
	LastModifiedAt timex.Time `json:"last_modified_at"`
}

// NotesDTO wraps a note list.
type NotesDTO struct {
	Notes []*NoteDTO `json:"notes"`
}

// NewNoteDTO maps a domain note onto its response form.
func NewNoteDTO(note *domain.Note) *NoteDTO {
	if note == nil {
		return nil
	}
	d := &NoteDTO{}
	_ = copier.CopyWithOption(d, note, copier.Option{Converters: timeConverters})
	return d
}

// NewNotesDTO maps a note list.
func NewNotesDTO(notes []*domain.Note) *NotesDTO {
	out := &NotesDTO{Notes: make([]*NoteDTO, 0, len(notes))}
	for _, note := range notes {
		out.Notes = append(out.Notes, NewNoteDTO(note))
	}
	return out
}
