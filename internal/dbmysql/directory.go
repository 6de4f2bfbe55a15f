package dbmysql

import (
	"time"
)

// The directory tables are owned by the profile/group CRUD side of the
// platform; this subsystem only reads them.

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Handle    string    `gorm:"uniqueIndex;size:64" json:"handle"`
	Status    string    `gorm:"size:20;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Group struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:128" json:"name"`
	OwnerID   uint64    `gorm:"not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMember struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	GroupID  uint64    `gorm:"not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID   uint64    `gorm:"not null;uniqueIndex:idx_group_user" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

// OfficialChallenge is the catalog template a coach assigns from. Title and
// point value are copied into the assignment snapshot at assign time.
type OfficialChallenge struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	PointValue int       `gorm:"not null" json:"point_value"`
	SubmitLink string    `gorm:"size:512" json:"submit_link"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
