package models

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Freet content validation errors
var (
	ErrContentEmpty   = errors.New("freet content must not be empty")
	ErrContentTooLong = errors.New("freet content exceeds the maximum length")
)

// Freet represents a post
type Freet struct {
	ID         int64          `gorm:"primaryKey;autoIncrement;column:id"`
	AuthorID   int64          `gorm:"not null;index:fritter_freets_ix1;column:author_id"`
	Content    string         `gorm:"type:varchar(140);not null;column:content"`
	CreatedAt  time.Time      `gorm:"not null;column:created_at"`
	ModifiedAt time.Time      `gorm:"not null;column:modified_at"`
	CircleName sql.NullString `gorm:"type:varchar(50);column:circle_name"`

	// Relationships
	Author *User `gorm:"foreignKey:AuthorID;references:ID"`
}

// TableName specifies the table name for Freet
func (Freet) TableName() string {
	return "fritter_freets"
}

// ValidateContent checks freet content against the length bounds.
// Whitespace-only content counts as empty.
func ValidateContent(content string, maxLength int) error {
	if strings.TrimSpace(content) == "" {
		return ErrContentEmpty
	}
	if len([]rune(content)) > maxLength {
		return ErrContentTooLong
	}
	return nil
}

// NewFreet creates a freet for the given author. An empty circlename
// publishes to the author's public stream.
func NewFreet(authorID int64, content, circlename string, now time.Time) *Freet {
	f := &Freet{
		AuthorID:   authorID,
		Content:    content,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if circlename != "" {
		f.CircleName = sql.NullString{String: circlename, Valid: true}
	}
	return f
}
