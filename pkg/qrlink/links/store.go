package links

import (
	"errors"
	"time"

	"github.com/maxroyer/qrlink/pkg/qrlink/models"
	"gorm.io/gorm"
)

// Store wraps the links table. The unique index on short_code is the only
// arbiter for code collisions; Insert never checks for existence first, so
// concurrent creates racing on the same candidate are resolved by exactly
// one insert succeeding.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Insert atomically creates a link row. Returns ErrCodeTaken when the
// short code is already in use.
func (s *Store) Insert(link *models.Link) error {
	if err := s.db.Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCodeTaken
		}
		return err
	}
	return nil
}

// FindByCode returns the link for a short code, expired or not.
func (s *Store) FindByCode(code string) (*models.Link, error) {
	var link models.Link
	if err := s.db.Where("short_code = ?", code).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// List returns all links that are live at the given time, newest first.
func (s *Store) List(now time.Time) ([]models.Link, error) {
	var links []models.Link
	err := s.db.
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// Delete removes a link by ID. Reports whether a row was actually deleted.
func (s *Store) Delete(id string) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Link{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteExpired removes every row whose expiry is at or before now and
// returns the number of rows removed. Only logically dead rows are touched,
// so the range delete is safe to interleave with concurrent inserts and reads.
func (s *Store) DeleteExpired(now time.Time) (int64, error) {
	result := s.db.
		Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&models.Link{})
	return result.RowsAffected, result.Error
}
