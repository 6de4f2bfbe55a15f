package common

import (
	"fmt"
	"time"
)

type MessageKind string

const (
	KindText            MessageKind = "TEXT"
	KindSharedPost      MessageKind = "SHARED_POST"
	KindSharedProfile   MessageKind = "SHARED_PROFILE"
	KindSharedChallenge MessageKind = "SHARED_CHALLENGE"
	KindCardImage       MessageKind = "CARD_IMAGE"

	// System-generated group message kinds
	KindChallengeUpdate MessageKind = "GROUP_CHALLENGE_UPDATE"
	KindChallengeBonus  MessageKind = "GROUP_CHALLENGE_BONUS"
)

func ValidSendKind(kind MessageKind) bool {
	switch kind {
	case KindText, KindSharedPost, KindSharedProfile, KindSharedChallenge, KindCardImage:
		return true
	}
	return false
}

type EventType string

const (
	MessageCreatedEvent    EventType = "message.created"
	MessageDeletedEvent    EventType = "message.deleted"
	ChallengeProgressEvent EventType = "challenge.progress"
	ChallengeBonusEvent    EventType = "challenge.bonus"
)

// Event is what the fan-out channel carries. Topic is a user or group
// topic (see UserTopic/GroupTopic); Payload is one of the *Payload structs.
type Event struct {
	Type      EventType   `json:"type"`
	Topic     string      `json:"topic"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

func UserTopic(userID uint64) string {
	return fmt.Sprintf("user:%d", userID)
}

func GroupTopic(groupID uint64) string {
	return fmt.Sprintf("group:%d", groupID)
}

// MessagePayload describes a created direct or group message. Exactly one
// of RecipientID / GroupID is set.
type MessagePayload struct {
	ID            uint64      `json:"id"`
	SenderID      uint64      `json:"sender_id"`
	RecipientID   uint64      `json:"recipient_id,omitempty"`
	GroupID       uint64      `json:"group_id,omitempty"`
	Body          string      `json:"body"`
	Kind          MessageKind `json:"kind"`
	CreatedAt     time.Time   `json:"created_at"`
	CorrelationID string      `json:"correlation_id,omitempty"`
}

type DeletionPayload struct {
	MessageID uint64 `json:"message_id"`
	GroupID   uint64 `json:"group_id,omitempty"`
}

// ChallengeProgressPayload mirrors the body of a GROUP_CHALLENGE_UPDATE message.
type ChallengeProgressPayload struct {
	AssignmentID uint64     `json:"assignment_id"`
	GroupID      uint64     `json:"group_id"`
	Title        string     `json:"title"`
	Deadline     *time.Time `json:"deadline,omitempty"`
	PointValue   int        `json:"point_value"`
	Submitted    int        `json:"submitted"`
	Members      int        `json:"members"`
	SubmitLink   string     `json:"submit_link,omitempty"`
}

type ChallengeBonusPayload struct {
	AssignmentID uint64 `json:"assignment_id"`
	GroupID      uint64 `json:"group_id"`
	Title        string `json:"title"`
	BonusAmount  int    `json:"bonus_amount"`
}
