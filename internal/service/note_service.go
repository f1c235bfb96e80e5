package service

import (
	"context"
	"errors"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/dto"
	"github.com/notefold/notes-service/pkg/code"

	"go.uber.org/zap"
)

// ShareRecipientNotExistsMsg is the recipient-specific not-found message
// used by Share.
const ShareRecipientNotExistsMsg = "The user you are trying to share the note with doesn't exist."

// NoteService composes the access evaluator and the repositories into
// the note operations. Every mutation routes through the evaluator
// before touching storage.
type NoteService interface {
	// Create inserts a note owned by identity.
	Create(ctx context.Context, identity *domain.User, params *dto.NoteCreateRequest) (*dto.NoteCreatedDTO, error)

	// Get returns one note (read access required) when noteID is set, or
	// all notes accessible to identity when noteID is empty.
	Get(ctx context.Context, identity *domain.User, noteID string) (*dto.NotesDTO, error)

	// Update merges the provided fields into a note identity authored.
	Update(ctx context.Context, identity *domain.User, noteID string, params *dto.NoteUpdateRequest) error

	// Delete soft-deletes a note identity authored.
	Delete(ctx context.Context, identity *domain.User, noteID string) error

	// Share grants read access on a note to another user.
	Share(ctx context.Context, identity *domain.User, noteID string, params *dto.NoteShareRequest) error

	// Search runs a full-text query over the notes identity owns. Shared
	// notes are excluded from the search scope on purpose.
	Search(ctx context.Context, identity *domain.User, query string) (*dto.NotesDTO, error)
}

type noteService struct {
	noteRepo domain.NoteRepository
	userRepo domain.UserRepository
	tx       domain.TxManager
	logger   *zap.Logger
}

// NewNoteService creates a NoteService instance.
func NewNoteService(noteRepo domain.NoteRepository, userRepo domain.UserRepository, tx domain.TxManager, logger *zap.Logger) NoteService {
	return &noteService{
		noteRepo: noteRepo,
		userRepo: userRepo,
		tx:       tx,
		logger:   logger,
	}
}

// storageErr maps unexpected repository failures to the opaque storage
// error. Not-found conditions must be handled before calling this.
func (s *noteService) storageErr(op string, err error) error {
	s.logger.Error("noteService storage failure", zap.String("op", op), zap.Error(err))
	return code.ErrorDBQuery
}

func (s *noteService) Create(ctx context.Context, identity *domain.User, params *dto.NoteCreateRequest) (*dto.NoteCreatedDTO, error) {
	note := &domain.Note{
		Author: identity.ID,
		Title:  params.Title,
		Body:   params.Body,
	}

	created, err := s.noteRepo.Create(ctx, note)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, code.ErrorDocumentNotExists
	}
	if err != nil {
		return nil, s.storageErr("create", err)
	}

	return &dto.NoteCreatedDTO{NoteID: created.ID}, nil
}

func (s *noteService) Get(ctx context.Context, identity *domain.User, noteID string) (*dto.NotesDTO, error) {
	if noteID != "" {
		note, err := s.noteRepo.GetActiveByID(ctx, noteID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, code.ErrorDocumentNotExists
		}
		if err != nil {
			return nil, s.storageErr("get", err)
		}
		if err := domain.CanRead(identity, note); err != nil {
			return nil, err
		}
		return dto.NewNotesDTO([]*domain.Note{note}), nil
	}

	notes, err := s.noteRepo.ListActiveByIDs(ctx, identity.AccessibleNoteIDs())
	if err != nil {
		return nil, s.storageErr("list", err)
	}
	return dto.NewNotesDTO(notes), nil
}

func (s *noteService) Update(ctx context.Context, identity *domain.User, noteID string, params *dto.NoteUpdateRequest) error {
	if params.IsEmpty() {
		return code.ErrorInvalidParams.WithDetails("at least one of title, body is required")
	}

	update := domain.NoteUpdate{Title: params.Title, Body: params.Body}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		note, err := s.noteRepo.GetActiveByID(ctx, noteID)
		if err != nil {
			return err
		}
		if err := domain.CanWrite(identity, note); err != nil {
			return err
		}
		return s.noteRepo.UpdateFields(ctx, note.ID, update)
	})
	return s.mapMutationErr("update", err)
}

func (s *noteService) Delete(ctx context.Context, identity *domain.User, noteID string) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		note, err := s.noteRepo.GetActiveByID(ctx, noteID)
		if err != nil {
			return err
		}
		if err := domain.CanWrite(identity, note); err != nil {
			return err
		}
		return s.noteRepo.SetInactive(ctx, note.ID)
	})
	return s.mapMutationErr("delete", err)
}

// Share grants params.ShareWith read access to noteID. The duplicate
// check is a read against the recipient's shared set, not linearized
// with the append: two concurrent identical shares can both pass it.
// Kept as the documented weak guarantee.
func (s *noteService) Share(ctx context.Context, identity *domain.User, noteID string, params *dto.NoteShareRequest) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		note, err := s.noteRepo.GetActiveByID(ctx, noteID)
		if err != nil {
			return err
		}
		if err := domain.CanWrite(identity, note); err != nil {
			return err
		}

		recipient, err := s.userRepo.GetActiveByUsername(ctx, params.ShareWith)
		if errors.Is(err, domain.ErrNotFound) {
			return code.ErrorDocumentNotExists.WithMsg(ShareRecipientNotExistsMsg)
		}
		if err != nil {
			return err
		}

		if err := domain.CanShare(note, recipient); err != nil {
			return err
		}
		return s.userRepo.AppendSharedNote(ctx, recipient.ID, note.ID)
	})
	return s.mapMutationErr("share", err)
}

func (s *noteService) Search(ctx context.Context, identity *domain.User, query string) (*dto.NotesDTO, error) {
	notes, err := s.noteRepo.SearchByAuthor(ctx, identity.ID, query)
	if err != nil {
		return nil, s.storageErr("search", err)
	}
	return dto.NewNotesDTO(notes), nil
}

// mapMutationErr translates transaction outcomes onto the error
// taxonomy: raw not-found becomes DocumentNotExists, registered codes
// pass through, anything else is an opaque storage failure.
func (s *noteService) mapMutationErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return code.ErrorDocumentNotExists
	}
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		return err
	}
	return s.storageErr(op, err)
}
