package models

import (
	"database/sql"
	"errors"
	"time"
)

// ErrInertMute is returned when a mute carries none of the predicate
// fields (phrase, account, circle) and so could never match anything.
var ErrInertMute = errors.New("mute must contain a word/phrase, account, or circle")

// Mute represents one mute rule owned by a user. All predicate fields are
// optional and independently combinable. StartMins/EndMins describe a
// daily-recurring clock window in minutes since midnight; DurationEnd is an
// absolute expiry timestamp computed at creation.
type Mute struct {
	ID          int64          `gorm:"primaryKey;autoIncrement;column:id"`
	OwnerID     int64          `gorm:"not null;index:fritter_mutes_ix1;column:owner_id"`
	CreatedAt   time.Time      `gorm:"not null;column:created_at"`
	Phrase      sql.NullString `gorm:"type:varchar(140);column:phrase"`
	AccountID   sql.NullInt64  `gorm:"column:account_id"`
	CircleName  sql.NullString `gorm:"type:varchar(50);column:circle_name"`
	DurationEnd sql.NullTime   `gorm:"column:duration_end"`
	StartMins   sql.NullInt16  `gorm:"type:smallint;column:start_mins"`
	EndMins     sql.NullInt16  `gorm:"type:smallint;column:end_mins"`

	// Relationships
	Owner   *User `gorm:"foreignKey:OwnerID;references:ID"`
	Account *User `gorm:"foreignKey:AccountID;references:ID"`
}

// TableName specifies the table name for Mute
func (Mute) TableName() string {
	return "fritter_mutes"
}

// MuteParams carries the optional fields of a new mute. A zero AccountID
// means no account predicate; HasStart/HasEnd mark which window boundaries
// were supplied.
type MuteParams struct {
	Phrase      string
	AccountID   int64
	CircleName  string
	Duration    time.Duration
	HasDuration bool
	StartMins   int
	EndMins     int
	HasStart    bool
	HasEnd      bool
}

// NewMute builds a mute owned by ownerID. At least one of phrase, account,
// or circle must be set, otherwise ErrInertMute is returned. A window with
// only one boundary supplied is stored with neither, so the mute is
// time-unrestricted. Boundaries outside a day roll over into 0..1439.
// The expiry timestamp is snapshotted as now + duration.
func NewMute(ownerID int64, p MuteParams, now time.Time) (*Mute, error) {
	if p.Phrase == "" && p.AccountID == 0 && p.CircleName == "" {
		return nil, ErrInertMute
	}

	m := &Mute{
		OwnerID:   ownerID,
		CreatedAt: now,
	}
	if p.Phrase != "" {
		m.Phrase = sql.NullString{String: p.Phrase, Valid: true}
	}
	if p.AccountID != 0 {
		m.AccountID = sql.NullInt64{Int64: p.AccountID, Valid: true}
	}
	if p.CircleName != "" {
		m.CircleName = sql.NullString{String: p.CircleName, Valid: true}
	}
	if p.HasDuration {
		m.DurationEnd = sql.NullTime{Time: now.Add(p.Duration), Valid: true}
	}
	// A window needs both boundaries to be meaningful
	if p.HasStart && p.HasEnd {
		m.StartMins = sql.NullInt16{Int16: int16(normalizeMins(p.StartMins)), Valid: true}
		m.EndMins = sql.NullInt16{Int16: int16(normalizeMins(p.EndMins)), Valid: true}
	}

	return m, nil
}

const minutesPerDay = 24 * 60

// normalizeMins folds a minute offset into 0..1439. Negative offsets roll
// back from midnight, so -60 becomes 23:00.
func normalizeMins(mins int) int {
	mins %= minutesPerDay
	if mins < 0 {
		mins += minutesPerDay
	}
	return mins
}
