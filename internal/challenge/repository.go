package challenge

import (
	"context"
	"fmt"

	"pitchside/internal/common"
	"pitchside/internal/dbmysql"

	"gorm.io/gorm"
)

// Repository persists assignments and submissions. The two concurrency
// guarantees live here: the unique (assignment_id, member_id) index rejects
// duplicate submissions, and MarkBonusPaid is a compare-and-set on the
// bonus_paid column so only one caller ever observes the false-to-true flip.
type Repository interface {
	CreateAssignment(ctx context.Context, a *dbmysql.ChallengeAssignment) error
	AssignmentByID(ctx context.Context, id uint64) (*dbmysql.ChallengeAssignment, error)
	CreateSubmission(ctx context.Context, sub *dbmysql.ChallengeSubmission) error
	CountSubmissions(ctx context.Context, assignmentID uint64) (total int, withinDeadline int, err error)
	MarkBonusPaid(ctx context.Context, assignmentID uint64) (bool, error)
}

type challengeRepo struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &challengeRepo{db: db}
}

func (r *challengeRepo) CreateAssignment(ctx context.Context, a *dbmysql.ChallengeAssignment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *challengeRepo) AssignmentByID(ctx context.Context, id uint64) (*dbmysql.ChallengeAssignment, error) {
	var assignment dbmysql.ChallengeAssignment

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("assignment %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load assignment %d: %w", id, err)
	}

	return &assignment, nil
}

// CreateSubmission relies on the unique index instead of a prior existence
// check, so two racing submissions from the same member resolve to exactly
// one row and one Conflict.
func (r *challengeRepo) CreateSubmission(ctx context.Context, sub *dbmysql.ChallengeSubmission) error {
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		if dbmysql.IsDuplicateEntry(err) {
			return fmt.Errorf("member %d already submitted for assignment %d: %w",
				sub.MemberID, sub.AssignmentID, common.ErrConflict)
		}
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *challengeRepo) CountSubmissions(ctx context.Context, assignmentID uint64) (int, int, error) {
	var total, within int64

	err := r.db.WithContext(ctx).
		Model(&dbmysql.ChallengeSubmission{}).
		Where("assignment_id = ?", assignmentID).
		Count(&total).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count submissions for assignment %d: %w", assignmentID, err)
	}

	err = r.db.WithContext(ctx).
		Model(&dbmysql.ChallengeSubmission{}).
		Where("assignment_id = ? AND within_deadline = ?", assignmentID, true).
		Count(&within).Error
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count submissions for assignment %d: %w", assignmentID, err)
	}

	return int(total), int(within), nil
}

// MarkBonusPaid returns true only for the single caller whose UPDATE flips
// bonus_paid from false to true. Everyone else gets false without error.
func (r *challengeRepo) MarkBonusPaid(ctx context.Context, assignmentID uint64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&dbmysql.ChallengeAssignment{}).
		Where("id = ? AND bonus_paid = ?", assignmentID, false).
		Update("bonus_paid", true)

	if result.Error != nil {
		return false, fmt.Errorf("failed to mark bonus paid for assignment %d: %w", assignmentID, result.Error)
	}

	return result.RowsAffected == 1, nil
}
