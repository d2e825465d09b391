package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"songshelf/logger"
	"songshelf/repository"
	"songshelf/serializer"
)

// SongCache is the view of the song list cache the handlers consume.
// *cache.SongListCache satisfies it.
type SongCache interface {
	GetSongList(ctx context.Context) ([]serializer.SongResponse, bool)
	SetSongList(ctx context.Context, songs []serializer.SongResponse) error
	InvalidateSongList(ctx context.Context) error
}

// APIHandler handles all API requests.
type APIHandler struct {
	songRepo  repository.SongRepository
	userRepo  repository.UserRepository
	songCache SongCache
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	songCache SongCache,
) *APIHandler {
	return &APIHandler{
		songRepo:  songRepo,
		userRepo:  userRepo,
		songCache: songCache,
	}
}

// writeJSON renders v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response body", logger.ErrorField(err))
	}
}

// writeError renders an error message in the standard envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// GetUserIDFromContext extracts the user ID from the request context.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value("userID").(int64)
	if !ok {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// GetUsernameFromContext extracts the username from the request context.
func GetUsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value("username").(string)
	if !ok {
		return "", fmt.Errorf("username not found in context")
	}
	return username, nil
}
