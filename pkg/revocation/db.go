package revocation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RevokedToken is a row of the shared revocation table.
type RevokedToken struct {
	TokenHash string    `gorm:"primaryKey;size:64"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}

// DBStore keeps revocations in the database, so every instance that shares
// the database sees the same revocations.
type DBStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{
		db:  db,
		now: time.Now,
	}
}

func (s *DBStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	row := &RevokedToken{
		TokenHash: fingerprint(token),
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: s.now().UTC(),
	}
	// Revoking the same token twice is not an error.
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_hash"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at"}),
	}).Create(row).Error
}

func (s *DBStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	var row RevokedToken
	err := s.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", fingerprint(token), s.now().UTC()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteExpired removes rows whose token has expired and returns how many
// were removed.
func (s *DBStore) DeleteExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now().UTC()).Delete(&RevokedToken{})
	return res.RowsAffected, res.Error
}
