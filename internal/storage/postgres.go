package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Conceptual-Machines/ikovsky-api/internal/models"
	"gorm.io/gorm"
)

// PostgresStore keeps songs in postgres through gorm
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, song *models.Song) error {
	if err := s.db.WithContext(ctx).Create(song).Error; err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (*models.Song, error) {
	var song models.Song
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&song).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSongNotFound, id)
		}
		return nil, fmt.Errorf("failed to get song: %w", err)
	}
	return &song, nil
}

func (s *PostgresStore) MarkSaved(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Model(&models.Song{}).Where("id = ?", id).Update("saved", true)
	if result.Error != nil {
		return fmt.Errorf("failed to save song: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrSongNotFound, id)
	}
	return nil
}
