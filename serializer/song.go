// Package serializer converts songs between their wire representation and the
// persisted entity, and validates incoming payloads.
package serializer

import (
	"encoding/json"
	"errors"
	"io"

	"songshelf/model"
)

// RequiredFieldsMessage is the client-facing message for rejected payloads.
const RequiredFieldsMessage = "Both title and artist are required to add a song"

// ErrValidation reports a payload with missing or empty required fields.
var ErrValidation = errors.New("song payload validation failed")

// SongPayload is the request body for creating or updating a song.
type SongPayload struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// SongResponse is the wire form of a song. The id is deliberately absent:
// create and update responses echo exactly what was submitted.
type SongResponse struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Decode reads a song payload from r and validates it. Malformed JSON and
// missing or empty fields both surface as ErrValidation.
func Decode(r io.Reader) (*SongPayload, error) {
	var payload SongPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, ErrValidation
	}
	if payload.Title == "" || payload.Artist == "" {
		return nil, ErrValidation
	}
	return &payload, nil
}

// ToWire converts a stored song to its response form.
func ToWire(song *model.Song) SongResponse {
	return SongResponse{
		Title:  song.Title,
		Artist: song.Artist,
	}
}

// ToWireList converts a slice of stored songs, preserving order. The result
// is never nil so an empty catalog encodes as [] rather than null.
func ToWireList(songs []*model.Song) []SongResponse {
	out := make([]SongResponse, 0, len(songs))
	for _, song := range songs {
		out = append(out, ToWire(song))
	}
	return out
}
