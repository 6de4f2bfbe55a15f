package challenge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pitchside/internal/challenge/mocks"
	"pitchside/internal/common"
	commonmocks "pitchside/internal/common/mocks"
	"pitchside/internal/dbmysql"
	"pitchside/internal/scoreboard"
)

type coordinatorMocks struct {
	repo    *mocks.MockRepository
	members *commonmocks.MockMembershipDirectory
	catalog *commonmocks.MockChallengeCatalog
	scores  *mocks.MockScoreService
	chat    *mocks.MockConversationService
	pub     *commonmocks.MockPublisher
}

func newTestCoordinator(t *testing.T) (Coordinator, coordinatorMocks) {
	ctrl := gomock.NewController(t)

	m := coordinatorMocks{
		repo:    mocks.NewMockRepository(ctrl),
		members: commonmocks.NewMockMembershipDirectory(ctrl),
		catalog: commonmocks.NewMockChallengeCatalog(ctrl),
		scores:  mocks.NewMockScoreService(ctrl),
		chat:    mocks.NewMockConversationService(ctrl),
		pub:     commonmocks.NewMockPublisher(ctrl),
	}

	c := NewCoordinator(m.repo, m.members, m.catalog, m.scores, m.chat, m.pub)
	return c, m
}

func TestCoordinator_Assign(t *testing.T) {
	deadline := time.Now().Add(48 * time.Hour).UTC()

	t.Run("snapshots catalog values and announces zero progress", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(1)).Return(true, nil)
		m.catalog.EXPECT().ChallengeInfo(gomock.Any(), uint64(7)).Return(&common.OfficialChallengeInfo{
			ID:         7,
			Title:      "Juggling ladder",
			SubmitLink: "/challenges/7/submit",
			PointValue: 50,
		}, nil)
		m.repo.EXPECT().
			CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *dbmysql.ChallengeAssignment) error {
				a.ID = 3
				return nil
			})
		m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)

		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(1), uint64(10), common.KindChallengeUpdate, gomock.Any()).
			DoAndReturn(func(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body string) (*dbmysql.GroupMessage, error) {
				var p common.ChallengeProgressPayload
				require.NoError(t, json.Unmarshal([]byte(body), &p))
				assert.Equal(t, 0, p.Submitted)
				assert.Equal(t, 3, p.Members)
				assert.Equal(t, "Juggling ladder", p.Title)
				return &dbmysql.GroupMessage{ID: 100}, nil
			})
		m.pub.EXPECT().Publish(common.GroupTopic(10), gomock.Any())

		assignment, err := c.Assign(context.Background(), 10, 7, 1, &deadline)

		require.NoError(t, err)
		assert.Equal(t, "Juggling ladder", assignment.Title)
		assert.Equal(t, 50, assignment.PointValue)
		assert.Equal(t, 100, assignment.BonusAmount)
		assert.False(t, assignment.BonusPaid)
	})

	t.Run("non-member cannot assign", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(9)).Return(false, nil)

		assignment, err := c.Assign(context.Background(), 10, 7, 9, nil)
		assert.ErrorIs(t, err, common.ErrForbidden)
		assert.Nil(t, assignment)
	})

	t.Run("unknown official challenge", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(1)).Return(true, nil)
		m.catalog.EXPECT().ChallengeInfo(gomock.Any(), uint64(99)).
			Return(nil, fmt.Errorf("challenge 99: %w", common.ErrNotFound))

		assignment, err := c.Assign(context.Background(), 10, 99, 1, nil)
		assert.ErrorIs(t, err, common.ErrNotFound)
		assert.Nil(t, assignment)
	})
}

func TestCoordinator_Submit(t *testing.T) {
	futureDeadline := time.Now().Add(24 * time.Hour).UTC()
	pastDeadline := time.Now().Add(-24 * time.Hour).UTC()

	baseAssignment := func(deadline *time.Time) *dbmysql.ChallengeAssignment {
		return &dbmysql.ChallengeAssignment{
			ID:          3,
			GroupID:     10,
			Title:       "Juggling ladder",
			Deadline:    deadline,
			PointValue:  50,
			BonusAmount: 100,
		}
	}

	t.Run("credits points and broadcasts progress without bonus", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(&futureDeadline), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(2)).Return(true, nil)
		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *dbmysql.ChallengeSubmission) error {
				assert.True(t, s.WithinDeadline)
				assert.Equal(t, 50, s.PointsAwarded)
				s.ID = 11
				return nil
			})
		m.scores.EXPECT().Credit(gomock.Any(), uint64(2), scoreboard.CategoryPerformance, 50).Return(nil)
		m.repo.EXPECT().CountSubmissions(gomock.Any(), uint64(3)).Return(1, 1, nil)
		m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)
		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(2), uint64(10), common.KindChallengeUpdate, gomock.Any()).
			Return(&dbmysql.GroupMessage{ID: 101}, nil)
		m.pub.EXPECT().Publish(common.GroupTopic(10), gomock.Any())

		submission, err := c.Submit(context.Background(), 3, 2, 777)

		require.NoError(t, err)
		assert.Equal(t, uint64(777), submission.SubmissionID)
	})

	t.Run("late submission still earns points but never counts toward bonus", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(&pastDeadline), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(2)).Return(true, nil)
		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, s *dbmysql.ChallengeSubmission) error {
				assert.False(t, s.WithinDeadline)
				return nil
			})
		m.scores.EXPECT().Credit(gomock.Any(), uint64(2), scoreboard.CategoryPerformance, 50).Return(nil)
		// All three submitted but only two inside the deadline.
		m.repo.EXPECT().CountSubmissions(gomock.Any(), uint64(3)).Return(3, 2, nil)
		m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)
		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(2), uint64(10), common.KindChallengeUpdate, gomock.Any()).
			Return(&dbmysql.GroupMessage{ID: 102}, nil)
		m.pub.EXPECT().Publish(common.GroupTopic(10), gomock.Any())

		_, err := c.Submit(context.Background(), 3, 2, 777)
		assert.NoError(t, err)
		// No MarkBonusPaid expectation: the bonus path must not run.
	})

	t.Run("duplicate submission surfaces conflict without crediting", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(&futureDeadline), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(2)).Return(true, nil)
		m.repo.EXPECT().
			CreateSubmission(gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("submission already recorded: %w", common.ErrConflict))

		submission, err := c.Submit(context.Background(), 3, 2, 777)
		assert.ErrorIs(t, err, common.ErrConflict)
		assert.Nil(t, submission)
	})

	t.Run("non-member cannot submit", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(nil), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(5)).Return(false, nil)

		_, err := c.Submit(context.Background(), 3, 5, 777)
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("last on-time submission pays the bonus to every member", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(&futureDeadline), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(3)).Return(true, nil)
		m.repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)
		m.scores.EXPECT().Credit(gomock.Any(), uint64(3), scoreboard.CategoryPerformance, 50).Return(nil)
		m.repo.EXPECT().CountSubmissions(gomock.Any(), uint64(3)).Return(3, 3, nil)
		m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)

		// Progress first, then the bonus settlement.
		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(3), uint64(10), common.KindChallengeUpdate, gomock.Any()).
			Return(&dbmysql.GroupMessage{ID: 103}, nil)
		m.pub.EXPECT().Publish(common.GroupTopic(10), gomock.Any()).Times(2)

		m.repo.EXPECT().MarkBonusPaid(gomock.Any(), uint64(3)).Return(true, nil)
		m.scores.EXPECT().Credit(gomock.Any(), uint64(1), scoreboard.CategoryPerformance, 100).Return(nil)
		m.scores.EXPECT().Credit(gomock.Any(), uint64(2), scoreboard.CategoryPerformance, 100).Return(nil)
		m.scores.EXPECT().Credit(gomock.Any(), uint64(3), scoreboard.CategoryPerformance, 100).Return(nil)
		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(3), uint64(10), common.KindChallengeBonus, gomock.Any()).
			DoAndReturn(func(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body string) (*dbmysql.GroupMessage, error) {
				var p common.ChallengeBonusPayload
				require.NoError(t, json.Unmarshal([]byte(body), &p))
				assert.Equal(t, 100, p.BonusAmount)
				return &dbmysql.GroupMessage{ID: 104}, nil
			})

		_, err := c.Submit(context.Background(), 3, 3, 777)
		assert.NoError(t, err)
	})

	t.Run("losing the bonus race is not an error", func(t *testing.T) {
		c, m := newTestCoordinator(t)

		m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(baseAssignment(&futureDeadline), nil)
		m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(3)).Return(true, nil)
		m.repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)
		m.scores.EXPECT().Credit(gomock.Any(), uint64(3), scoreboard.CategoryPerformance, 50).Return(nil)
		m.repo.EXPECT().CountSubmissions(gomock.Any(), uint64(3)).Return(3, 3, nil)
		m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)
		m.chat.EXPECT().
			PostSystem(gomock.Any(), uint64(3), uint64(10), common.KindChallengeUpdate, gomock.Any()).
			Return(&dbmysql.GroupMessage{ID: 105}, nil)
		m.pub.EXPECT().Publish(common.GroupTopic(10), gomock.Any())

		// Another submitter already flipped the flag.
		m.repo.EXPECT().MarkBonusPaid(gomock.Any(), uint64(3)).Return(false, nil)

		_, err := c.Submit(context.Background(), 3, 3, 777)
		assert.NoError(t, err)
	})
}

func TestCoordinator_Progress(t *testing.T) {
	c, m := newTestCoordinator(t)

	m.repo.EXPECT().AssignmentByID(gomock.Any(), uint64(3)).Return(&dbmysql.ChallengeAssignment{
		ID: 3, GroupID: 10, Title: "Juggling ladder", PointValue: 50,
	}, nil)
	m.members.EXPECT().IsMember(gomock.Any(), uint64(10), uint64(2)).Return(true, nil)
	m.repo.EXPECT().CountSubmissions(gomock.Any(), uint64(3)).Return(2, 2, nil)
	m.members.EXPECT().ListMembers(gomock.Any(), uint64(10)).Return([]uint64{1, 2, 3}, nil)

	progress, err := c.Progress(context.Background(), 3, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, progress.Submitted)
	assert.Equal(t, 3, progress.Members)
	assert.Equal(t, "Juggling ladder", progress.Title)
}

// fakeChallengeStore is an in-memory Repository with the same serialization
// guarantees the MySQL schema provides: a unique (assignment, member) index
// and an atomic compare-and-set on bonus_paid.
type fakeChallengeStore struct {
	mu          sync.Mutex
	assignment  *dbmysql.ChallengeAssignment
	submissions map[uint64]*dbmysql.ChallengeSubmission
	nextID      uint64
}

func (f *fakeChallengeStore) CreateAssignment(ctx context.Context, a *dbmysql.ChallengeAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	a.ID = f.nextID
	f.assignment = a
	return nil
}

func (f *fakeChallengeStore) AssignmentByID(ctx context.Context, id uint64) (*dbmysql.ChallengeAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignment == nil || f.assignment.ID != id {
		return nil, common.ErrNotFound
	}
	copied := *f.assignment
	return &copied, nil
}

func (f *fakeChallengeStore) CreateSubmission(ctx context.Context, s *dbmysql.ChallengeSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.submissions[s.MemberID]; exists {
		return fmt.Errorf("submission already recorded: %w", common.ErrConflict)
	}
	f.submissions[s.MemberID] = s
	return nil
}

func (f *fakeChallengeStore) CountSubmissions(ctx context.Context, assignmentID uint64) (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	within := 0
	for _, s := range f.submissions {
		if s.WithinDeadline {
			within++
		}
	}
	return len(f.submissions), within, nil
}

func (f *fakeChallengeStore) MarkBonusPaid(ctx context.Context, assignmentID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignment.BonusPaid {
		return false, nil
	}
	f.assignment.BonusPaid = true
	return true, nil
}

type fakeScoreboard struct {
	mu      sync.Mutex
	credits map[uint64]int
}

func (f *fakeScoreboard) Credit(ctx context.Context, athleteID uint64, category scoreboard.Category, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credits[athleteID] += amount
	return nil
}

func (f *fakeScoreboard) Read(ctx context.Context, athleteID uint64) (*dbmysql.ScoreEntry, error) {
	return nil, nil
}

func (f *fakeScoreboard) Leaderboard(ctx context.Context, limit int) ([]*dbmysql.ScoreEntry, error) {
	return nil, nil
}

type fakeRoster struct {
	members []uint64
}

func (f *fakeRoster) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	for _, id := range f.members {
		if id == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoster) ListMembers(ctx context.Context, groupID uint64) ([]uint64, error) {
	return f.members, nil
}

type fakeNotices struct {
	mu         sync.Mutex
	bonusPosts int
}

func (f *fakeNotices) SendDirect(ctx context.Context, senderID, recipientID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.Message, error) {
	return nil, nil
}

func (f *fakeNotices) SendGroup(ctx context.Context, senderID, groupID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.GroupMessage, error) {
	return nil, nil
}

func (f *fakeNotices) PostSystem(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body string) (*dbmysql.GroupMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if kind == common.KindChallengeBonus {
		f.bonusPosts++
	}
	return &dbmysql.GroupMessage{ID: 1}, nil
}

func (f *fakeNotices) ListDirect(ctx context.Context, viewerID, peerID, beforeID uint64, limit int) ([]*dbmysql.Message, error) {
	return nil, nil
}

func (f *fakeNotices) ListGroup(ctx context.Context, viewerID, groupID, beforeID uint64, limit int) ([]*dbmysql.GroupMessage, error) {
	return nil, nil
}

func (f *fakeNotices) DeleteDirect(ctx context.Context, messageID, requesterID uint64) error {
	return nil
}

func (f *fakeNotices) DeleteGroup(ctx context.Context, messageID, requesterID uint64) error {
	return nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(topic string, event common.Event) {}

type nopCatalog struct{}

func (nopCatalog) ChallengeInfo(ctx context.Context, id uint64) (*common.OfficialChallengeInfo, error) {
	return &common.OfficialChallengeInfo{ID: id, Title: "Sprint relay", PointValue: 50}, nil
}

// Concurrent final submissions must settle the bonus exactly once: every
// member ends up with points + bonus, and a single bonus message is posted.
func TestCoordinator_Submit_ConcurrentBonusSettlesOnce(t *testing.T) {
	memberIDs := []uint64{1, 2, 3, 4, 5}

	store := &fakeChallengeStore{submissions: make(map[uint64]*dbmysql.ChallengeSubmission)}
	scores := &fakeScoreboard{credits: make(map[uint64]int)}
	roster := &fakeRoster{members: memberIDs}
	notices := &fakeNotices{}

	c := NewCoordinator(store, roster, nopCatalog{}, scores, notices, nopPublisher{})

	assignment, err := c.Assign(context.Background(), 10, 7, memberIDs[0], nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, len(memberIDs))
	for i, memberID := range memberIDs {
		wg.Add(1)
		go func(i int, memberID uint64) {
			defer wg.Done()
			_, errs[i] = c.Submit(context.Background(), assignment.ID, memberID, memberID*100)
		}(i, memberID)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "member %d", memberIDs[i])
	}

	// 50 points per submission plus the 100 point bonus, once each.
	for _, memberID := range memberIDs {
		assert.Equal(t, 150, scores.credits[memberID], "member %d", memberID)
	}
	assert.Equal(t, 1, notices.bonusPosts)
	assert.True(t, store.assignment.BonusPaid)
}

// Retrying a submission after success must not double-credit.
func TestCoordinator_Submit_RetryAfterSuccessConflicts(t *testing.T) {
	memberIDs := []uint64{1, 2}

	store := &fakeChallengeStore{submissions: make(map[uint64]*dbmysql.ChallengeSubmission)}
	scores := &fakeScoreboard{credits: make(map[uint64]int)}
	roster := &fakeRoster{members: memberIDs}
	notices := &fakeNotices{}

	c := NewCoordinator(store, roster, nopCatalog{}, scores, notices, nopPublisher{})

	assignment, err := c.Assign(context.Background(), 10, 7, 1, nil)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), assignment.ID, 1, 900)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), assignment.ID, 1, 900)
	assert.ErrorIs(t, err, common.ErrConflict)

	assert.Equal(t, 50, scores.credits[1])
}
