package dbmysql

import (
	"time"
)

// ScoreEntry is the one-row-per-athlete point ledger. Total always equals
// performance + discipline + responsibility; every write is an increment so
// concurrent credits from independent sources commute.
type ScoreEntry struct {
	AthleteID      uint64    `gorm:"primaryKey" json:"athlete_id"`
	Total          int       `gorm:"not null;default:0" json:"total"`
	Performance    int       `gorm:"not null;default:0" json:"performance"`
	Discipline     int       `gorm:"not null;default:0" json:"discipline"`
	Responsibility int       `gorm:"not null;default:0" json:"responsibility"`
	UpdatedAt      time.Time `json:"updated_at"`
}
