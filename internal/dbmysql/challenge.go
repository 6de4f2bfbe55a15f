package dbmysql

import (
	"time"
)

// ChallengeAssignment gives one official challenge to one group. PointValue
// and BonusAmount are snapshots taken at assignment time; later edits to the
// official challenge never reach an existing assignment. BonusPaid only ever
// flips false to true.
type ChallengeAssignment struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	GroupID     uint64     `gorm:"not null;index" json:"group_id"`
	ChallengeID uint64     `gorm:"not null" json:"challenge_id"`
	CreatorID   uint64     `gorm:"not null" json:"creator_id"`
	Title       string     `gorm:"size:255" json:"title"`
	SubmitLink  string     `gorm:"size:512" json:"submit_link"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	PointValue  int        `gorm:"not null" json:"point_value"`
	BonusAmount int        `gorm:"not null" json:"bonus_amount"`
	BonusPaid   bool       `gorm:"not null;default:false" json:"bonus_paid"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ChallengeSubmission records one member's submission for one assignment.
// The unique index carries the at-most-one-per-member guarantee; duplicate
// inserts surface as a conflict, not a silent no-op.
type ChallengeSubmission struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	AssignmentID   uint64    `gorm:"not null;uniqueIndex:idx_assignment_member" json:"assignment_id"`
	MemberID       uint64    `gorm:"not null;uniqueIndex:idx_assignment_member" json:"member_id"`
	SubmissionID   uint64    `gorm:"not null" json:"submission_id"`
	WithinDeadline bool      `gorm:"not null" json:"within_deadline"`
	PointsAwarded  int       `gorm:"not null" json:"points_awarded"`
	CreatedAt      time.Time `json:"created_at"`
}
