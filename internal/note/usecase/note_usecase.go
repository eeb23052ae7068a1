package usecase

import (
	"context"
	"strings"

	"notekeeper-backend/internal/note/domain"
	"notekeeper-backend/internal/note/repository"
	"notekeeper-backend/pkg/apperror"
	"notekeeper-backend/pkg/logutil"
)

// noteUsecase implements NoteUsecase interface
type noteUsecase struct {
	noteRepo repository.NoteRepository
}

// NewNoteUsecase creates a new instance of noteUsecase
func NewNoteUsecase(noteRepo repository.NoteRepository) NoteUsecase {
	return &noteUsecase{
		noteRepo: noteRepo,
	}
}

func (u *noteUsecase) AddNote(ctx context.Context, userID uint, req AddNoteRequest) (*domain.Note, error) {
	if req.Title == "" {
		return nil, apperror.Validation("Title is required")
	}
	if req.Content == "" {
		return nil, apperror.Validation("Content is required")
	}

	note := &domain.Note{
		Title:    req.Title,
		Content:  req.Content,
		IsPinned: req.IsPinned,
		UserID:   userID,
	}
	if err := u.noteRepo.Create(ctx, note); err != nil {
		return nil, apperror.Internal(err)
	}

	logutil.Component(ctx, "note").Debug().Uint("user_id", userID).Uint("note_id", note.ID).Msg("note added")
	return note, nil
}

func (u *noteUsecase) ListNotes(ctx context.Context, userID uint, page domain.Page) ([]*domain.Note, domain.Page, error) {
	page = page.Normalize()
	notes, err := u.noteRepo.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, page, apperror.Internal(err)
	}
	return notes, page, nil
}

func (u *noteUsecase) ListAllNotes(ctx context.Context, userID uint) ([]*domain.Note, error) {
	notes, err := u.noteRepo.ListAllByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notes, nil
}

func (u *noteUsecase) DeleteNote(ctx context.Context, userID, noteID uint) error {
	deleted, err := u.noteRepo.DeleteByOwner(ctx, noteID, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if deleted == 0 {
		return apperror.NotFound("Note not found")
	}

	logutil.Component(ctx, "note").Debug().Uint("user_id", userID).Uint("note_id", noteID).Msg("note deleted")
	return nil
}

func (u *noteUsecase) SearchNotes(ctx context.Context, userID uint, query string) ([]*domain.Note, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("Search query is required")
	}
	notes, err := u.noteRepo.Search(ctx, userID, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notes, nil
}
