package service

import (
	"context"
	"errors"
	"testing"

	"github.com/notefold/notes-service/internal/domain"
	"github.com/notefold/notes-service/internal/dto"
	"github.com/notefold/notes-service/pkg/code"

	"go.uber.org/zap"
)

type mockNoteRepo struct {
	domain.NoteRepository
	notes       map[string]*domain.Note
	nextID      string
	updates     map[string]domain.NoteUpdate
	inactiveIDs []string
}

func newMockNoteRepo(notes ...*domain.Note) *mockNoteRepo {
	m := &mockNoteRepo{
		notes:   map[string]*domain.Note{},
		updates: map[string]domain.NoteUpdate{},
	}
	for _, n := range notes {
		m.notes[n.ID] = n
	}
	return m
}

func (m *mockNoteRepo) GetActiveByID(ctx context.Context, id string) (*domain.Note, error) {
	n, ok := m.notes[id]
	if !ok || !n.IsActive {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

func (m *mockNoteRepo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	created := *note
	created.ID = m.nextID
	created.IsActive = true
	m.notes[created.ID] = &created
	return &created, nil
}

func (m *mockNoteRepo) ListActiveByIDs(ctx context.Context, ids []string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, id := range ids {
		if n, ok := m.notes[id]; ok && n.IsActive {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNoteRepo) SetInactive(ctx context.Context, id string) error {
	n, ok := m.notes[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.IsActive = false
	m.inactiveIDs = append(m.inactiveIDs, id)
	return nil
}

func (m *mockNoteRepo) UpdateFields(ctx context.Context, id string, update domain.NoteUpdate) error {
	n, ok := m.notes[id]
	if !ok {
		return domain.ErrNotFound
	}
	if update.Title != nil {
		n.Title = *update.Title
	}
	if update.Body != nil {
		n.Body = *update.Body
	}
	m.updates[id] = update
	return nil
}

func (m *mockNoteRepo) SearchByAuthor(ctx context.Context, authorID, query string) ([]*domain.Note, error) {
	var out []*domain.Note
	for _, n := range m.notes {
		if n.IsActive && n.Author == authorID {
			out = append(out, n)
		}
	}
	return out, nil
}

type mockUserRepo struct {
	domain.UserRepository
	users   map[string]*domain.User
	granted map[string][]string
}

func newMockUserRepo(users ...*domain.User) *mockUserRepo {
	m := &mockUserRepo{
		users:   map[string]*domain.User{},
		granted: map[string][]string{},
	}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

func (m *mockUserRepo) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, ok := m.users[username]
	if !ok || !u.IsActive {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) AppendSharedNote(ctx context.Context, userID, noteID string) error {
	for _, u := range m.users {
		if u.ID == userID {
			u.SharedNotes = append(u.SharedNotes, noteID)
			m.granted[userID] = append(m.granted[userID], noteID)
			return nil
		}
	}
	return domain.ErrNotFound
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newNoteServiceForTest(noteRepo *mockNoteRepo, userRepo *mockUserRepo) NoteService {
	return NewNoteService(noteRepo, userRepo, passthroughTx{}, zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestNoteServiceCreateAndGet(t *testing.T) {
	ctx := context.Background()
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true}

	noteRepo := newMockNoteRepo()
	noteRepo.nextID = "n1"
	svc := newNoteServiceForTest(noteRepo, newMockUserRepo(alice))

	created, err := svc.Create(ctx, alice, &dto.NoteCreateRequest{Title: "Groceries", Body: "milk, eggs"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.NoteID != "n1" {
		t.Fatalf("Create id = %q, want n1", created.NoteID)
	}

	got, err := svc.Get(ctx, alice, "n1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Notes) != 1 || got.Notes[0].Title != "Groceries" {
		t.Errorf("Get returned %+v", got.Notes)
	}
}

func TestNoteServiceGetAllUsesAccessibleSet(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Note{ID: "n1", Author: "ua", Title: "mine", IsActive: true}
	shared := &domain.Note{ID: "n2", Author: "ub", Title: "theirs", IsActive: true}
	foreign := &domain.Note{ID: "n3", Author: "ub", Title: "hidden", IsActive: true}

	alice := &domain.User{
		ID: "ua", Username: "a@x.com", IsActive: true,
		Notes:       []string{"n1"},
		SharedNotes: []string{"n2"},
	}

	svc := newNoteServiceForTest(newMockNoteRepo(owned, shared, foreign), newMockUserRepo(alice))

	got, err := svc.Get(ctx, alice, "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Notes) != 2 {
		t.Fatalf("Get returned %d notes, want 2", len(got.Notes))
	}
	for _, n := range got.Notes {
		if n.ID == "n3" {
			t.Error("foreign note leaked into the accessible set")
		}
	}
}

func TestNoteServiceShareGrantsReadOnly(t *testing.T) {
	ctx := context.Background()
	note := &domain.Note{ID: "n1", Author: "ua", Title: "Groceries", IsActive: true}
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true, Notes: []string{"n1"}}
	bob := &domain.User{ID: "ub", Username: "b@x.com", IsActive: true}

	noteRepo := newMockNoteRepo(note)
	userRepo := newMockUserRepo(alice, bob)
	svc := newNoteServiceForTest(noteRepo, userRepo)

	if err := svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "b@x.com"}); err != nil {
		t.Fatalf("Share failed: %v", err)
	}
	if len(userRepo.granted["ub"]) != 1 || userRepo.granted["ub"][0] != "n1" {
		t.Fatalf("grant not recorded: %v", userRepo.granted)
	}

	// Recipient may read.
	if _, err := svc.Get(ctx, bob, "n1"); err != nil {
		t.Errorf("recipient Get failed: %v", err)
	}

	// Recipient may not write.
	err := svc.Update(ctx, bob, "n1", &dto.NoteUpdateRequest{Title: strPtr("stolen")})
	if !errors.Is(err, code.ErrorForbiddenAccess) {
		t.Errorf("recipient Update = %v, want forbidden", err)
	}
	err = svc.Delete(ctx, bob, "n1")
	if !errors.Is(err, code.ErrorForbiddenAccess) {
		t.Errorf("recipient Delete = %v, want forbidden", err)
	}

	// Re-granting the same note fails.
	err = svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "b@x.com"})
	if !errors.Is(err, code.ErrorAlreadyShared) {
		t.Errorf("second Share = %v, want already shared", err)
	}
}

func TestNoteServiceShareEdgeCases(t *testing.T) {
	ctx := context.Background()
	note := &domain.Note{ID: "n1", Author: "ua", IsActive: true}
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true, Notes: []string{"n1"}}
	bob := &domain.User{ID: "ub", Username: "b@x.com", IsActive: true}

	svc := newNoteServiceForTest(newMockNoteRepo(note), newMockUserRepo(alice, bob))

	// Sharing with oneself is rejected.
	err := svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "a@x.com"})
	if !errors.Is(err, code.ErrorCannotShareWithSelf) {
		t.Errorf("self Share = %v, want cannot share with self", err)
	}

	// Unknown recipient surfaces its dedicated message.
	err = svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "ghost@x.com"})
	if !errors.Is(err, code.ErrorDocumentNotExists) {
		t.Fatalf("ghost Share = %v, want document not exists", err)
	}
	var codeErr *code.Code
	if !errors.As(err, &codeErr) || codeErr.Msg() != ShareRecipientNotExistsMsg {
		t.Errorf("ghost Share msg = %v, want recipient message", err)
	}

	// Only the author may initiate a share.
	err = svc.Share(ctx, bob, "n1", &dto.NoteShareRequest{ShareWith: "b@x.com"})
	if !errors.Is(err, code.ErrorForbiddenAccess) {
		t.Errorf("non-author Share = %v, want forbidden", err)
	}
}

func TestNoteServiceUpdate(t *testing.T) {
	ctx := context.Background()
	note := &domain.Note{ID: "n1", Author: "ua", Title: "old", Body: "body", IsActive: true}
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true, Notes: []string{"n1"}}

	noteRepo := newMockNoteRepo(note)
	svc := newNoteServiceForTest(noteRepo, newMockUserRepo(alice))

	// An empty update never reaches the repository.
	err := svc.Update(ctx, alice, "n1", &dto.NoteUpdateRequest{})
	if !errors.Is(err, code.ErrorInvalidParams) {
		t.Fatalf("empty Update = %v, want invalid params", err)
	}
	if len(noteRepo.updates) != 0 {
		t.Fatal("empty update reached the repository")
	}

	// Partial update touches only the provided field.
	if err := svc.Update(ctx, alice, "n1", &dto.NoteUpdateRequest{Title: strPtr("new")}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if note.Title != "new" || note.Body != "body" {
		t.Errorf("after update: title=%q body=%q", note.Title, note.Body)
	}
}

func TestNoteServiceDeleteIsTerminal(t *testing.T) {
	ctx := context.Background()
	note := &domain.Note{ID: "n1", Author: "ua", IsActive: true}
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true, Notes: []string{"n1"}}

	svc := newNoteServiceForTest(newMockNoteRepo(note), newMockUserRepo(alice))

	if err := svc.Delete(ctx, alice, "n1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Every later operation sees not-found, including a second delete.
	if _, err := svc.Get(ctx, alice, "n1"); !errors.Is(err, code.ErrorDocumentNotExists) {
		t.Errorf("Get after delete = %v, want document not exists", err)
	}
	if err := svc.Update(ctx, alice, "n1", &dto.NoteUpdateRequest{Title: strPtr("x")}); !errors.Is(err, code.ErrorDocumentNotExists) {
		t.Errorf("Update after delete = %v, want document not exists", err)
	}
	if err := svc.Delete(ctx, alice, "n1"); !errors.Is(err, code.ErrorDocumentNotExists) {
		t.Errorf("second Delete = %v, want document not exists", err)
	}
	if err := svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "b@x.com"}); !errors.Is(err, code.ErrorDocumentNotExists) {
		t.Errorf("Share after delete = %v, want document not exists", err)
	}
}

func noteIDSet(notes *dto.NotesDTO) map[string]bool {
	ids := map[string]bool{}
	for _, n := range notes.Notes {
		ids[n.ID] = true
	}
	return ids
}

func TestNoteServiceListReadsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	n1 := &domain.Note{ID: "n1", Author: "ua", IsActive: true}
	n2 := &domain.Note{ID: "n2", Author: "ub", IsActive: true}
	alice := &domain.User{
		ID: "ua", Username: "a@x.com", IsActive: true,
		Notes:       []string{"n1"},
		SharedNotes: []string{"n2"},
	}

	svc := newNoteServiceForTest(newMockNoteRepo(n1, n2), newMockUserRepo(alice))

	first, err := svc.Get(ctx, alice, "")
	if err != nil {
		t.Fatalf("first Get failed: %v", err)
	}
	second, err := svc.Get(ctx, alice, "")
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}

	firstIDs, secondIDs := noteIDSet(first), noteIDSet(second)
	if len(firstIDs) != 2 || len(secondIDs) != len(firstIDs) {
		t.Fatalf("list reads differ in size: %v vs %v", firstIDs, secondIDs)
	}
	for id := range firstIDs {
		if !secondIDs[id] {
			t.Errorf("note %q present in first read, absent in second", id)
		}
	}
}

func TestNoteServiceDeleteExcludedFromListFetch(t *testing.T) {
	ctx := context.Background()
	note := &domain.Note{ID: "n1", Author: "ua", Title: "Groceries", IsActive: true}
	alice := &domain.User{ID: "ua", Username: "a@x.com", IsActive: true, Notes: []string{"n1"}}
	bob := &domain.User{ID: "ub", Username: "b@x.com", IsActive: true}

	svc := newNoteServiceForTest(newMockNoteRepo(note), newMockUserRepo(alice, bob))

	if err := svc.Share(ctx, alice, "n1", &dto.NoteShareRequest{ShareWith: "b@x.com"}); err != nil {
		t.Fatalf("Share failed: %v", err)
	}

	// Both the owner and the recipient see the note in their list fetch.
	for _, u := range []*domain.User{alice, bob} {
		got, err := svc.Get(ctx, u, "")
		if err != nil {
			t.Fatalf("Get for %s failed: %v", u.Username, err)
		}
		if !noteIDSet(got)["n1"] {
			t.Fatalf("note missing from %s's list before delete", u.Username)
		}
	}

	if err := svc.Delete(ctx, alice, "n1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// After the soft delete the note vanishes from both lists, even
	// though the id is still referenced by both user documents.
	for _, u := range []*domain.User{alice, bob} {
		got, err := svc.Get(ctx, u, "")
		if err != nil {
			t.Fatalf("Get for %s after delete failed: %v", u.Username, err)
		}
		if noteIDSet(got)["n1"] {
			t.Errorf("deleted note still in %s's list", u.Username)
		}
	}
}

func TestNoteServiceSearchScopedToAuthor(t *testing.T) {
	ctx := context.Background()
	mine := &domain.Note{ID: "n1", Author: "ua", Title: "groceries", IsActive: true}
	sharedWithMe := &domain.Note{ID: "n2", Author: "ub", Title: "groceries too", IsActive: true}

	alice := &domain.User{
		ID: "ua", Username: "a@x.com", IsActive: true,
		Notes:       []string{"n1"},
		SharedNotes: []string{"n2"},
	}

	svc := newNoteServiceForTest(newMockNoteRepo(mine, sharedWithMe), newMockUserRepo(alice))

	got, err := svc.Search(ctx, alice, "groceries")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got.Notes) != 1 || got.Notes[0].ID != "n1" {
		t.Errorf("Search returned %+v, want only the owned note", got.Notes)
	}
}
