package repository

import (
	"context"

	"notekeeper-backend/internal/note/domain"
)

// NoteRepository defines the interface for note data access. Every method
// is scoped to the owning user.
type NoteRepository interface {
	// Create stores a new note
	Create(ctx context.Context, note *domain.Note) error

	// ListByUser returns one page of the user's notes, newest id first
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Note, error)

	// ListAllByUser returns every note of the user
	ListAllByUser(ctx context.Context, userID uint) ([]*domain.Note, error)

	// DeleteByOwner deletes the note only if userID owns it and reports
	// how many rows went away
	DeleteByOwner(ctx context.Context, id, userID uint) (int64, error)

	// Search matches query as a case-insensitive substring of title or content
	Search(ctx context.Context, userID uint, query string) ([]*domain.Note, error)
}
