package challenge

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	chatservice "pitchside/internal/chat/service"
	"pitchside/internal/common"
	"pitchside/internal/dbmysql"
	"pitchside/internal/scoreboard"
)

// Coordinator runs the group challenge lifecycle: assign, per-member
// submission, and the one-time all-members bonus.
type Coordinator interface {
	Assign(ctx context.Context, groupID, officialChallengeID, creatorID uint64, deadline *time.Time) (*dbmysql.ChallengeAssignment, error)
	Submit(ctx context.Context, assignmentID, memberID, underlyingSubmissionID uint64) (*dbmysql.ChallengeSubmission, error)
	Progress(ctx context.Context, assignmentID, viewerID uint64) (*common.ChallengeProgressPayload, error)
}

type coordinator struct {
	repo    Repository
	members common.MembershipDirectory
	catalog common.ChallengeCatalog
	scores  scoreboard.ScoreService
	chat    chatservice.ConversationService
	pub     common.Publisher
}

func NewCoordinator(
	repo Repository,
	members common.MembershipDirectory,
	catalog common.ChallengeCatalog,
	scores scoreboard.ScoreService,
	chat chatservice.ConversationService,
	pub common.Publisher,
) Coordinator {
	return &coordinator{
		repo:    repo,
		members: members,
		catalog: catalog,
		scores:  scores,
		chat:    chat,
		pub:     pub,
	}
}

// Assign snapshots the official challenge's title and point value into the
// assignment so later catalog edits never change a running challenge, then
// announces it with a progress message at 0 submissions.
func (c *coordinator) Assign(ctx context.Context, groupID, officialChallengeID, creatorID uint64, deadline *time.Time) (*dbmysql.ChallengeAssignment, error) {
	isMember, err := c.members.IsMember(ctx, groupID, creatorID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %d is not a member of group %d: %w", creatorID, groupID, common.ErrForbidden)
	}

	info, err := c.catalog.ChallengeInfo(ctx, officialChallengeID)
	if err != nil {
		return nil, err
	}

	assignment := &dbmysql.ChallengeAssignment{
		GroupID:     groupID,
		ChallengeID: officialChallengeID,
		CreatorID:   creatorID,
		Title:       info.Title,
		SubmitLink:  info.SubmitLink,
		Deadline:    deadline,
		PointValue:  info.PointValue,
		BonusAmount: info.PointValue * 2,
	}
	if err := c.repo.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	memberIDs, err := c.members.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	c.broadcastProgress(ctx, assignment, creatorID, 0, len(memberIDs))

	return assignment, nil
}

// Submit records one member's submission, credits the snapshot points, and
// triggers the bonus check. The duplicate guard is the storage-level unique
// index, surfaced as Conflict so the caller can tell "already done" from
// "succeeded now".
func (c *coordinator) Submit(ctx context.Context, assignmentID, memberID, underlyingSubmissionID uint64) (*dbmysql.ChallengeSubmission, error) {
	assignment, err := c.repo.AssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	isMember, err := c.members.IsMember(ctx, assignment.GroupID, memberID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %d is not a member of group %d: %w", memberID, assignment.GroupID, common.ErrForbidden)
	}

	now := time.Now().UTC()
	withinDeadline := assignment.Deadline == nil || !now.After(*assignment.Deadline)

	submission := &dbmysql.ChallengeSubmission{
		AssignmentID:   assignmentID,
		MemberID:       memberID,
		SubmissionID:   underlyingSubmissionID,
		WithinDeadline: withinDeadline,
		PointsAwarded:  assignment.PointValue,
		CreatedAt:      now,
	}
	if err := c.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	if err := c.scores.Credit(ctx, memberID, scoreboard.CategoryPerformance, assignment.PointValue); err != nil {
		return nil, err
	}

	total, within, err := c.repo.CountSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := c.members.ListMembers(ctx, assignment.GroupID)
	if err != nil {
		return nil, err
	}

	c.broadcastProgress(ctx, assignment, memberID, total, len(memberIDs))

	if !assignment.BonusPaid && len(memberIDs) > 0 && within >= len(memberIDs) {
		if err := c.payBonus(ctx, assignment, memberID, memberIDs); err != nil {
			return nil, err
		}
	}

	return submission, nil
}

// payBonus settles the one-time bonus. The compare-and-set on bonus_paid is
// the serialization point: concurrent submitters race on the UPDATE and
// exactly one wins; the losers return without error because another caller
// having paid the bonus is the expected outcome of the race.
func (c *coordinator) payBonus(ctx context.Context, assignment *dbmysql.ChallengeAssignment, triggerMemberID uint64, memberIDs []uint64) error {
	won, err := c.repo.MarkBonusPaid(ctx, assignment.ID)
	if err != nil {
		return err
	}
	if !won {
		return nil
	}

	for _, id := range memberIDs {
		if err := c.scores.Credit(ctx, id, scoreboard.CategoryPerformance, assignment.BonusAmount); err != nil {
			// The flag has flipped; remaining members must still be paid.
			log.Printf("Failed to credit bonus to member %d for assignment %d: %v", id, assignment.ID, err)
		}
	}

	payload := common.ChallengeBonusPayload{
		AssignmentID: assignment.ID,
		GroupID:      assignment.GroupID,
		Title:        assignment.Title,
		BonusAmount:  assignment.BonusAmount,
	}
	body, _ := json.Marshal(payload)

	if _, err := c.chat.PostSystem(ctx, triggerMemberID, assignment.GroupID, common.KindChallengeBonus, string(body)); err != nil {
		log.Printf("Failed to post bonus message for assignment %d: %v", assignment.ID, err)
	}

	c.pub.Publish(common.GroupTopic(assignment.GroupID), common.Event{
		Type:    common.ChallengeBonusEvent,
		Payload: payload,
	})

	return nil
}

func (c *coordinator) Progress(ctx context.Context, assignmentID, viewerID uint64) (*common.ChallengeProgressPayload, error) {
	assignment, err := c.repo.AssignmentByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	isMember, err := c.members.IsMember(ctx, assignment.GroupID, viewerID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %d is not a member of group %d: %w", viewerID, assignment.GroupID, common.ErrForbidden)
	}

	total, _, err := c.repo.CountSubmissions(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := c.members.ListMembers(ctx, assignment.GroupID)
	if err != nil {
		return nil, err
	}

	return progressPayload(assignment, total, len(memberIDs)), nil
}

func (c *coordinator) broadcastProgress(ctx context.Context, assignment *dbmysql.ChallengeAssignment, senderID uint64, submitted, members int) {
	payload := progressPayload(assignment, submitted, members)
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to encode progress for assignment %d: %v", assignment.ID, err)
		return
	}

	if _, err := c.chat.PostSystem(ctx, senderID, assignment.GroupID, common.KindChallengeUpdate, string(body)); err != nil {
		log.Printf("Failed to post progress message for assignment %d: %v", assignment.ID, err)
	}

	c.pub.Publish(common.GroupTopic(assignment.GroupID), common.Event{
		Type:    common.ChallengeProgressEvent,
		Payload: *payload,
	})
}

func progressPayload(assignment *dbmysql.ChallengeAssignment, submitted, members int) *common.ChallengeProgressPayload {
	return &common.ChallengeProgressPayload{
		AssignmentID: assignment.ID,
		GroupID:      assignment.GroupID,
		Title:        assignment.Title,
		Deadline:     assignment.Deadline,
		PointValue:   assignment.PointValue,
		Submitted:    submitted,
		Members:      members,
		SubmitLink:   assignment.SubmitLink,
	}
}
