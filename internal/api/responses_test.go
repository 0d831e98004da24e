package api

import (
	"database/sql"
	"testing"
	"time"

	"github.com/fritter-app/fritter/internal/models"
)

func TestNewFreetResponse(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	f := models.Freet{
		ID:         5,
		AuthorID:   2,
		Content:    "hello",
		CreatedAt:  created,
		ModifiedAt: created.Add(time.Hour),
	}

	resp := newFreetResponse(f, "alice")
	if resp.Author != "alice" {
		t.Errorf("Expected author username substituted, got %q", resp.Author)
	}
	if resp.CircleName != "" {
		t.Errorf("Expected no circlename for a public freet, got %q", resp.CircleName)
	}
	if resp.DateCreated != "2024-03-01T10:00:00Z" {
		t.Errorf("Unexpected dateCreated: %s", resp.DateCreated)
	}

	f.CircleName = sql.NullString{String: "close-friends", Valid: true}
	resp = newFreetResponse(f, "alice")
	if resp.CircleName != "close-friends" {
		t.Errorf("Expected circlename in response, got %q", resp.CircleName)
	}
}

func TestNewMuteResponse(t *testing.T) {
	m := models.Mute{
		ID:        3,
		OwnerID:   1,
		Phrase:    sql.NullString{String: "spoiler", Valid: true},
		StartMins: sql.NullInt16{Int16: 22 * 60, Valid: true},
		EndMins:   sql.NullInt16{Int16: 2 * 60, Valid: true},
	}

	resp := newMuteResponse(m, "")
	if resp.Phrase != "spoiler" {
		t.Errorf("Expected phrase in response, got %q", resp.Phrase)
	}
	if resp.StartTime != "22:00" || resp.EndTime != "02:00" {
		t.Errorf("Expected window 22:00-02:00, got %s-%s", resp.StartTime, resp.EndTime)
	}
	if resp.DurationEnd != "" {
		t.Errorf("Expected no durationEnd, got %q", resp.DurationEnd)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		mins int
		want string
	}{
		{0, "00:00"},
		{90, "01:30"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.mins); got != tt.want {
			t.Errorf("formatClock(%d) = %s, want %s", tt.mins, got, tt.want)
		}
	}
}
