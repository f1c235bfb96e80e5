package domain

import (
	"errors"
	"testing"

	"github.com/notefold/notes-service/pkg/code"
)

func TestCanRead(t *testing.T) {
	note := &Note{ID: "n1", Author: "u1", IsActive: true}

	tests := []struct {
		name     string
		identity *User
		wantErr  error
	}{
		{
			name:     "author can read",
			identity: &User{ID: "u1", Notes: []string{"n1"}},
			wantErr:  nil,
		},
		{
			name:     "recipient can read",
			identity: &User{ID: "u2", SharedNotes: []string{"n1"}},
			wantErr:  nil,
		},
		{
			name:     "stranger cannot read",
			identity: &User{ID: "u3"},
			wantErr:  code.ErrorForbiddenAccess,
		},
		{
			name:     "share of another note grants nothing",
			identity: &User{ID: "u4", SharedNotes: []string{"n2"}},
			wantErr:  code.ErrorForbiddenAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanRead(tt.identity, note)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanRead() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanWrite(t *testing.T) {
	note := &Note{ID: "n1", Author: "u1", IsActive: true}

	tests := []struct {
		name     string
		identity *User
		wantErr  error
	}{
		{
			name:     "author can write",
			identity: &User{ID: "u1", Notes: []string{"n1"}},
			wantErr:  nil,
		},
		{
			name:     "recipient cannot write",
			identity: &User{ID: "u2", SharedNotes: []string{"n1"}},
			wantErr:  code.ErrorForbiddenAccess,
		},
		{
			name:     "stranger cannot write",
			identity: &User{ID: "u3"},
			wantErr:  code.ErrorForbiddenAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanWrite(tt.identity, note)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanWrite() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCanShare(t *testing.T) {
	note := &Note{ID: "n1", Author: "u1", IsActive: true}

	tests := []struct {
		name      string
		recipient *User
		wantErr   error
	}{
		{
			name:      "fresh recipient",
			recipient: &User{ID: "u2"},
			wantErr:   nil,
		},
		{
			name:      "author as recipient",
			recipient: &User{ID: "u1", Notes: []string{"n1"}},
			wantErr:   code.ErrorCannotShareWithSelf,
		},
		{
			name:      "already granted",
			recipient: &User{ID: "u2", SharedNotes: []string{"n1"}},
			wantErr:   code.ErrorAlreadyShared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanShare(note, tt.recipient)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanShare() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAccessibleNoteIDs(t *testing.T) {
	u := &User{
		ID:          "u1",
		Notes:       []string{"n1", "n2"},
		SharedNotes: []string{"n3"},
	}

	got := u.AccessibleNoteIDs()
	want := []string{"n1", "n2", "n3"}
	if len(got) != len(want) {
		t.Fatalf("AccessibleNoteIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AccessibleNoteIDs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
