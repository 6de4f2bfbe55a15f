package common

import (
	"context"
)

// Publisher is the fan-out side of the real-time channel. Implementations
// must never block the caller.
type Publisher interface {
	Publish(topic string, event Event)
}

// AccountDirectory answers "does this user id resolve to a real account".
// Identity itself is established upstream; the core only verifies targets.
type AccountDirectory interface {
	Exists(ctx context.Context, userID uint64) (bool, error)
}

// MembershipDirectory answers group membership questions. It is consulted
// on every send/submit, never cached, because membership can change
// between messages.
type MembershipDirectory interface {
	IsMember(ctx context.Context, groupID, userID uint64) (bool, error)
	ListMembers(ctx context.Context, groupID uint64) ([]uint64, error)
}

// OfficialChallengeInfo is the catalog view copied into an assignment
// snapshot at assign time. It is never re-read afterwards.
type OfficialChallengeInfo struct {
	ID         uint64
	Title      string
	PointValue int
	SubmitLink string
}

type ChallengeCatalog interface {
	ChallengeInfo(ctx context.Context, challengeID uint64) (*OfficialChallengeInfo, error)
}
