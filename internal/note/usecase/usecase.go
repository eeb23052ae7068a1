package usecase

import (
	"context"

	"notekeeper-backend/internal/note/domain"
)

// NoteUsecase defines the interface for note business logic. userID always
// comes from the authenticated identity.
type NoteUsecase interface {
	// AddNote creates a note owned by userID
	AddNote(ctx context.Context, userID uint, req AddNoteRequest) (*domain.Note, error)

	// ListNotes returns one page of the user's notes and the page actually used
	ListNotes(ctx context.Context, userID uint, page domain.Page) ([]*domain.Note, domain.Page, error)

	// ListAllNotes returns every note of the user
	ListAllNotes(ctx context.Context, userID uint) ([]*domain.Note, error)

	// DeleteNote deletes a note of the user; another user's note is not found
	DeleteNote(ctx context.Context, userID, noteID uint) error

	// SearchNotes finds the user's notes whose title or content contain query
	SearchNotes(ctx context.Context, userID uint, query string) ([]*domain.Note, error)
}

// AddNoteRequest represents the fields of a new note
type AddNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
}
