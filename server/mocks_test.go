package server

import (
	"context"
	"time"

	"songshelf/model"
	"songshelf/repository"
	"songshelf/serializer"
)

// mockSongRepo is an in-memory SongRepository preserving insertion order.
type mockSongRepo struct {
	songs  map[int64]*model.Song
	order  []int64
	nextID int64
}

func newMockSongRepo() *mockSongRepo {
	return &mockSongRepo{songs: make(map[int64]*model.Song)}
}

func (m *mockSongRepo) CreateSong(_ context.Context, song *model.Song) error {
	m.nextID++
	now := time.Now()
	stored := &model.Song{
		ID:        m.nextID,
		Title:     song.Title,
		Artist:    song.Artist,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.songs[stored.ID] = stored
	m.order = append(m.order, stored.ID)
	song.ID = stored.ID
	return nil
}

func (m *mockSongRepo) GetSongByID(_ context.Context, id int64) (*model.Song, error) {
	song, ok := m.songs[id]
	if !ok {
		return nil, repository.ErrSongNotFound
	}
	copied := *song
	return &copied, nil
}

func (m *mockSongRepo) GetAllSongs(_ context.Context) ([]*model.Song, error) {
	out := make([]*model.Song, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.songs[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (m *mockSongRepo) UpdateSong(_ context.Context, id int64, title, artist string) (*model.Song, error) {
	song, ok := m.songs[id]
	if !ok {
		return nil, repository.ErrSongNotFound
	}
	song.Title = title
	song.Artist = artist
	song.UpdatedAt = time.Now()
	copied := *song
	return &copied, nil
}

func (m *mockSongRepo) DeleteSong(_ context.Context, id int64) error {
	if _, ok := m.songs[id]; !ok {
		return repository.ErrSongNotFound
	}
	delete(m.songs, id)
	for i, ordered := range m.order {
		if ordered == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// mockSongCache is an in-memory SongCache recording every operation.
type mockSongCache struct {
	list          []serializer.SongResponse
	primed        bool
	sets          int
	invalidations int
}

func newMockSongCache() *mockSongCache {
	return &mockSongCache{}
}

func (m *mockSongCache) GetSongList(_ context.Context) ([]serializer.SongResponse, bool) {
	if !m.primed {
		return nil, false
	}
	return m.list, true
}

func (m *mockSongCache) SetSongList(_ context.Context, songs []serializer.SongResponse) error {
	m.list = songs
	m.primed = true
	m.sets++
	return nil
}

func (m *mockSongCache) InvalidateSongList(_ context.Context) error {
	m.list = nil
	m.primed = false
	m.invalidations++
	return nil
}

// mockUserRepo is an in-memory UserRepository.
type mockUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) CreateUser(user *model.User) (int64, error) {
	m.nextID++
	stored := *user
	stored.ID = m.nextID
	m.users[user.Username] = &stored
	return stored.ID, nil
}

func (m *mockUserRepo) GetUserByUsername(username string) (*model.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}
