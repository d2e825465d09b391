package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"songshelf/logger"
	"songshelf/serializer"

	"github.com/go-redis/redis/v8"
)

const (
	songListKey = "songs:all"
	songListTTL = 5 * time.Minute
)

// SongListCache caches the rendered song collection in Redis. A nil client
// is allowed; every operation then degrades to a miss or a no-op.
type SongListCache struct {
	client *redis.Client
}

// NewSongListCache creates a song list cache on the given client. The client
// may be nil when Redis is unavailable.
func NewSongListCache(client *redis.Client) *SongListCache {
	return &SongListCache{client: client}
}

// GetSongList returns the cached song collection. The second result is false
// on a miss, including whenever the client is not connected.
func (c *SongListCache) GetSongList(ctx context.Context) ([]serializer.SongResponse, bool) {
	if c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, songListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Failed to read song list from cache", logger.ErrorField(err))
		}
		return nil, false
	}

	var songs []serializer.SongResponse
	if err := json.Unmarshal(data, &songs); err != nil {
		logger.Warn("Failed to decode cached song list", logger.ErrorField(err))
		return nil, false
	}
	return songs, true
}

// SetSongList stores the song collection with a TTL.
func (c *SongListCache) SetSongList(ctx context.Context, songs []serializer.SongResponse) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to marshal song list: %w", err)
	}

	if err := c.client.Set(ctx, songListKey, data, songListTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache song list: %w", err)
	}
	return nil
}

// InvalidateSongList drops the cached collection. Called after every write.
func (c *SongListCache) InvalidateSongList(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, songListKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate song list cache: %w", err)
	}
	return nil
}
