package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"songshelf/logger"
	"songshelf/model"
	"songshelf/repository"
	"songshelf/serializer"

	"github.com/gorilla/mux"
)

func songNotFoundMessage(id int64) string {
	return fmt.Sprintf("Song with id: %d does not exist", id)
}

// GetSongsHandler returns the whole catalog in insertion order.
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := h.songCache.GetSongList(ctx); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	songs, err := h.songRepo.GetAllSongs(ctx)
	if err != nil {
		logger.Error("Failed to retrieve songs", logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve songs")
		return
	}

	wire := serializer.ToWireList(songs)
	if err := h.songCache.SetSongList(ctx, wire); err != nil {
		logger.Warn("Failed to cache song list", logger.ErrorField(err))
	}

	writeJSON(w, http.StatusOK, wire)
}

// CreateSongHandler validates the payload and persists a new song.
func (h *APIHandler) CreateSongHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username, _ := GetUsernameFromContext(ctx)

	payload, err := serializer.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, serializer.RequiredFieldsMessage)
		return
	}

	song := &model.Song{
		Title:  payload.Title,
		Artist: payload.Artist,
	}
	if err := h.songRepo.CreateSong(ctx, song); err != nil {
		logger.Error("Failed to create song",
			logger.String("title", payload.Title),
			logger.String("artist", payload.Artist),
			logger.ErrorField(err),
		)
		writeError(w, http.StatusInternalServerError, "Failed to create song")
		return
	}

	if err := h.songCache.InvalidateSongList(ctx); err != nil {
		logger.Warn("Failed to invalidate song list cache", logger.ErrorField(err))
	}

	logger.Info("Song created",
		logger.Int64("songId", song.ID),
		logger.String("song", song.Display()),
		logger.Int64("userId", userID),
		logger.String("username", username),
	)
	writeJSON(w, http.StatusCreated, serializer.ToWire(song))
}

// GetSongHandler returns a single song by id.
func (h *APIHandler) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	id, err := songIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	song, err := h.songRepo.GetSongByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			writeError(w, http.StatusNotFound, songNotFoundMessage(id))
			return
		}
		logger.Error("Failed to retrieve song", logger.Int64("songId", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to retrieve song")
		return
	}

	writeJSON(w, http.StatusOK, serializer.ToWire(song))
}

// UpdateSongHandler overwrites both fields of an existing song.
func (h *APIHandler) UpdateSongHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username, _ := GetUsernameFromContext(ctx)

	id, err := songIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	payload, err := serializer.Decode(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, serializer.RequiredFieldsMessage)
		return
	}

	song, err := h.songRepo.UpdateSong(ctx, id, payload.Title, payload.Artist)
	if err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			writeError(w, http.StatusNotFound, songNotFoundMessage(id))
			return
		}
		logger.Error("Failed to update song", logger.Int64("songId", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to update song")
		return
	}

	if err := h.songCache.InvalidateSongList(ctx); err != nil {
		logger.Warn("Failed to invalidate song list cache", logger.ErrorField(err))
	}

	logger.Info("Song updated",
		logger.Int64("songId", id),
		logger.String("song", song.Display()),
		logger.Int64("userId", userID),
		logger.String("username", username),
	)
	writeJSON(w, http.StatusOK, serializer.ToWire(song))
}

// DeleteSongHandler removes a song by id.
func (h *APIHandler) DeleteSongHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username, _ := GetUsernameFromContext(ctx)

	id, err := songIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid song ID")
		return
	}

	if err := h.songRepo.DeleteSong(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSongNotFound) {
			writeError(w, http.StatusNotFound, songNotFoundMessage(id))
			return
		}
		logger.Error("Failed to delete song", logger.Int64("songId", id), logger.ErrorField(err))
		writeError(w, http.StatusInternalServerError, "Failed to delete song")
		return
	}

	if err := h.songCache.InvalidateSongList(ctx); err != nil {
		logger.Warn("Failed to invalidate song list cache", logger.ErrorField(err))
	}

	logger.Info("Song deleted",
		logger.Int64("songId", id),
		logger.Int64("userId", userID),
		logger.String("username", username),
	)
	w.WriteHeader(http.StatusNoContent)
}

// songIDFromRequest parses the {id} path variable. The route pattern already
// constrains it to digits.
func songIDFromRequest(r *http.Request) (int64, error) {
	vars := mux.Vars(r)
	return strconv.ParseInt(vars["id"], 10, 64)
}
