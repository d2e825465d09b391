package repository

import (
	"context"
	"errors"
	"fmt"

	"songshelf/model"

	"gorm.io/gorm"
)

// ErrSongNotFound is returned when no song exists with the requested id.
var ErrSongNotFound = errors.New("song not found")

// SongRepository defines the interface for song data operations.
type SongRepository interface {
	CreateSong(ctx context.Context, song *model.Song) error
	GetSongByID(ctx context.Context, id int64) (*model.Song, error)
	GetAllSongs(ctx context.Context) ([]*model.Song, error)
	UpdateSong(ctx context.Context, id int64, title, artist string) (*model.Song, error)
	DeleteSong(ctx context.Context, id int64) error
}

// mysqlSongRepository implements SongRepository on GORM.
type mysqlSongRepository struct {
	db *gorm.DB
}

// NewMySQLSongRepository creates a new mysqlSongRepository.
func NewMySQLSongRepository(db *gorm.DB) SongRepository {
	return &mysqlSongRepository{db: db}
}

// CreateSong persists a new song and fills in its assigned id.
func (r *mysqlSongRepository) CreateSong(ctx context.Context, song *model.Song) error {
	if err := r.db.WithContext(ctx).Create(song).Error; err != nil {
		return fmt.Errorf("failed to create song: %w", err)
	}
	return nil
}

// GetSongByID retrieves a song by its primary key.
func (r *mysqlSongRepository) GetSongByID(ctx context.Context, id int64) (*model.Song, error) {
	var song model.Song
	err := r.db.WithContext(ctx).First(&song, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to query song %d: %w", id, err)
	}
	return &song, nil
}

// GetAllSongs retrieves every song in insertion order.
func (r *mysqlSongRepository) GetAllSongs(ctx context.Context) ([]*model.Song, error) {
	songs := make([]*model.Song, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}
	return songs, nil
}

// UpdateSong overwrites both fields of an existing song in place.
func (r *mysqlSongRepository) UpdateSong(ctx context.Context, id int64, title, artist string) (*model.Song, error) {
	var song model.Song
	err := r.db.WithContext(ctx).First(&song, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSongNotFound
		}
		return nil, fmt.Errorf("failed to query song %d for update: %w", id, err)
	}

	song.Title = title
	song.Artist = artist
	if err := r.db.WithContext(ctx).Save(&song).Error; err != nil {
		return nil, fmt.Errorf("failed to update song %d: %w", id, err)
	}
	return &song, nil
}

// DeleteSong removes a song by its primary key.
func (r *mysqlSongRepository) DeleteSong(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Song{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete song %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSongNotFound
	}
	return nil
}
