package api

import (
	"fmt"
	"time"

	"github.com/fritter-app/fritter/internal/models"
)

// FreetResponse is the external representation of a freet. The author's
// username stands in for the raw id.
type FreetResponse struct {
	ID           int64  `json:"id"`
	Author       string `json:"author"`
	Content      string `json:"content"`
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`
	CircleName   string `json:"circlename,omitempty"`
}

func newFreetResponse(f models.Freet, author string) FreetResponse {
	resp := FreetResponse{
		ID:           f.ID,
		Author:       author,
		Content:      f.Content,
		DateCreated:  f.CreatedAt.Format(time.RFC3339),
		DateModified: f.ModifiedAt.Format(time.RFC3339),
	}
	if f.CircleName.Valid {
		resp.CircleName = f.CircleName.String
	}
	return resp
}

// MuteResponse is the external representation of a mute rule
type MuteResponse struct {
	ID          int64  `json:"id"`
	Phrase      string `json:"phrase,omitempty"`
	Account     string `json:"account,omitempty"`
	CircleName  string `json:"circlename,omitempty"`
	DurationEnd string `json:"durationEnd,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

func newMuteResponse(m models.Mute, account string) MuteResponse {
	resp := MuteResponse{
		ID:         m.ID,
		Account:    account,
	}
	if m.Phrase.Valid {
		resp.Phrase = m.Phrase.String
	}
	if m.CircleName.Valid {
		resp.CircleName = m.CircleName.String
	}
	if m.DurationEnd.Valid {
		resp.DurationEnd = m.DurationEnd.Time.Format(time.RFC3339)
	}
	if m.StartMins.Valid && m.EndMins.Valid {
		resp.StartTime = formatClock(int(m.StartMins.Int16))
		resp.EndTime = formatClock(int(m.EndMins.Int16))
	}
	return resp
}

func formatClock(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
