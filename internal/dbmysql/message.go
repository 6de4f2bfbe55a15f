package dbmysql

import (
	"time"

	"pitchside/internal/common"
)

// Message is a direct message between two accounts. Immutable except for
// deletion by its author.
type Message struct {
	ID          uint64             `gorm:"primaryKey" json:"id"`
	SenderID    uint64             `gorm:"not null;index:idx_direct_pair" json:"sender_id"`
	RecipientID uint64             `gorm:"not null;index:idx_direct_pair" json:"recipient_id"`
	Body        string             `gorm:"type:text" json:"body"`
	Kind        common.MessageKind `gorm:"size:40;default:'TEXT'" json:"kind"`
	CreatedAt   time.Time          `json:"created_at"`

	// Echoed back to the sender for optimistic reconciliation, never stored.
	CorrelationID string `gorm:"-" json:"correlation_id,omitempty"`
}

// GroupMessage is scoped to a group instead of a single recipient and also
// carries the system-generated challenge kinds.
type GroupMessage struct {
	ID        uint64             `gorm:"primaryKey" json:"id"`
	SenderID  uint64             `gorm:"not null;index" json:"sender_id"`
	GroupID   uint64             `gorm:"not null;index" json:"group_id"`
	Body      string             `gorm:"type:text" json:"body"`
	Kind      common.MessageKind `gorm:"size:40;default:'TEXT'" json:"kind"`
	CreatedAt time.Time          `json:"created_at"`

	CorrelationID string `gorm:"-" json:"correlation_id,omitempty"`
}
