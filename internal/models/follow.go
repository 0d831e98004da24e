package models

import (
	"time"
)

// Follow represents a directed follow relationship
type Follow struct {
	FollowerID  int64     `gorm:"primaryKey;column:follower"`
	FollowingID int64     `gorm:"primaryKey;column:following"`
	CreatedAt   time.Time `gorm:"not null;column:created_at"`

	// Relationships
	Follower  *User `gorm:"foreignKey:FollowerID;references:ID"`
	Following *User `gorm:"foreignKey:FollowingID;references:ID"`
}

// TableName specifies the table name for Follow
func (Follow) TableName() string {
	return "fritter_follows"
}
