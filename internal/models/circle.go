package models

// Circle represents one circle membership. A circle is the set of
// membership rows sharing (circle_name, owner); there is no separate
// circle record.
type Circle struct {
	ID         int64  `gorm:"primaryKey;autoIncrement;column:id"`
	CircleName string `gorm:"type:varchar(50);not null;uniqueIndex:fritter_circles_ux1;column:circle_name"`
	OwnerID    int64  `gorm:"not null;uniqueIndex:fritter_circles_ux1;column:owner_id"`
	MemberID   int64  `gorm:"not null;uniqueIndex:fritter_circles_ux1;index:fritter_circles_ix1;column:member_id"`

	// Relationships
	Owner  *User `gorm:"foreignKey:OwnerID;references:ID"`
	Member *User `gorm:"foreignKey:MemberID;references:ID"`
}

// TableName specifies the table name for Circle
func (Circle) TableName() string {
	return "fritter_circles"
}
