package model

import "testing"

func TestSongDisplay(t *testing.T) {
	song := &Song{
		Title:  "Ugandan anthem",
		Artist: "George William Kakoma",
	}

	want := "Ugandan anthem - George William Kakoma"
	if got := song.Display(); got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestSongTableName(t *testing.T) {
	if got := (Song{}).TableName(); got != "songs" {
		t.Errorf("TableName() = %q, want songs", got)
	}
}
