package repository

import (
	"context"
	"strings"
	"time"

	"notekeeper-backend/internal/note/domain"
	"notekeeper-backend/pkg/database"

	"gorm.io/gorm"
)

// gormNoteRepository implements NoteRepository using GORM
type gormNoteRepository struct {
	db *gorm.DB
	// likeOp is ILIKE on postgres; sqlite LIKE already ignores ASCII case
	likeOp string
}

// NewGormNoteRepository creates a new GORM-based NoteRepository
func NewGormNoteRepository(db *gorm.DB) NoteRepository {
	likeOp := "LIKE"
	if database.IsPostgres(db) {
		likeOp = "ILIKE"
	}
	return &gormNoteRepository{db: db, likeOp: likeOp}
}

func (r *gormNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	note.CreatedAt = time.Now()
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *gormNoteRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*domain.Note, error) {
	notes := []*domain.Note{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) ListAllByUser(ctx context.Context, userID uint) ([]*domain.Note, error) {
	notes := []*domain.Note{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&notes).Error
	return notes, err
}

func (r *gormNoteRepository) DeleteByOwner(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Note{})
	return res.RowsAffected, res.Error
}

func (r *gormNoteRepository) Search(ctx context.Context, userID uint, query string) ([]*domain.Note, error) {
	pattern := "%" + escapeLike(query) + "%"
	cond := "(title " + r.likeOp + ` ? ESCAPE '\' OR content ` + r.likeOp + ` ? ESCAPE '\')`

	notes := []*domain.Note{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(cond, pattern, pattern).
		Order("id DESC").
		Find(&notes).Error
	return notes, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
