package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"notekeeper-backend/internal/note/domain"
	"notekeeper-backend/internal/note/repository"
	"notekeeper-backend/internal/testutil"
	"notekeeper-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsecase(t *testing.T) NoteUsecase {
	t.Helper()
	return NewNoteUsecase(repository.NewGormNoteRepository(testutil.NewDB(t, &domain.Note{})))
}

func TestAddNote(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	note, err := uc.AddNote(ctx, 7, AddNoteRequest{Title: "t", Content: "c", IsPinned: true})
	require.NoError(t, err)
	assert.NotZero(t, note.ID)
	assert.Equal(t, uint(7), note.UserID)
	assert.True(t, note.IsPinned)

	_, err = uc.AddNote(ctx, 7, AddNoteRequest{Content: "c"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Equal(t, "Title is required", apperror.Message(err))

	_, err = uc.AddNote(ctx, 7, AddNoteRequest{Title: "t"})
	assert.Equal(t, "Content is required", apperror.Message(err))
}

func TestListNotes_OwnerIsolation(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.AddNote(ctx, 1, AddNoteRequest{Title: "a", Content: "a"})
		require.NoError(t, err)
		_, err = uc.AddNote(ctx, 2, AddNoteRequest{Title: "b", Content: "b"})
		require.NoError(t, err)
	}

	notes, page, err := uc.ListNotes(ctx, 1, domain.Page{})
	require.NoError(t, err)
	assert.Equal(t, domain.Page{Page: 1, Limit: 10}, page)
	require.Len(t, notes, 3)
	for _, n := range notes {
		assert.Equal(t, uint(1), n.UserID)
	}
	assert.Greater(t, notes[0].ID, notes[1].ID)

	notes, page, err = uc.ListNotes(ctx, 2, domain.Page{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	require.Len(t, notes, 1)
	assert.Equal(t, uint(2), notes[0].UserID)
}

func TestDeleteNote_ScopedByOwner(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	note, err := uc.AddNote(ctx, 1, AddNoteRequest{Title: "a", Content: "a"})
	require.NoError(t, err)

	err = uc.DeleteNote(ctx, 2, note.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, uc.DeleteNote(ctx, 1, note.ID))

	err = uc.DeleteNote(ctx, 1, note.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Note not found", apperror.Message(err))
}

func TestSearchNotes(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()

	_, err := uc.AddNote(ctx, 1, AddNoteRequest{Title: "test note", Content: "body"})
	require.NoError(t, err)

	notes, err := uc.SearchNotes(ctx, 1, "test")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = uc.SearchNotes(ctx, 1, "  ")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

type brokenRepo struct{ repository.NoteRepository }

func (brokenRepo) ListAllByUser(context.Context, uint) ([]*domain.Note, error) {
	return nil, errors.New("connection refused")
}

func TestListAllNotes_HidesStorageErrors(t *testing.T) {
	uc := NewNoteUsecase(brokenRepo{})

	_, err := uc.ListAllNotes(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Equal(t, "Internal Server Error", apperror.Message(err))
}

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, domain.Page{Page: 1, Limit: 10}, domain.Page{Page: -3, Limit: 0}.Normalize())
	assert.Equal(t, domain.Page{Page: 4, Limit: 100}, domain.Page{Page: 4, Limit: 5000}.Normalize())
	assert.Equal(t, 20, domain.Page{Page: 3, Limit: 10}.Offset())

	huge := domain.Page{Page: math.MaxInt, Limit: 100}.Normalize()
	assert.Less(t, huge.Page, math.MaxInt)
	assert.Positive(t, huge.Offset())
}

func TestListNotes_HugePageIsEmpty(t *testing.T) {
	uc := newUsecase(t)
	ctx := context.Background()
	_, err := uc.AddNote(ctx, 1, AddNoteRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	notes, used, err := uc.ListNotes(ctx, 1, domain.Page{Page: math.MaxInt, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, math.MaxInt/100+1, used.Page)
}
