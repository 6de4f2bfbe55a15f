package scoreboard

import (
	"context"
	"fmt"
	"time"

	"pitchside/internal/dbmysql"

	"gorm.io/gorm"
)

// ScoreRepository persists the per-athlete ledger. All writes are atomic
// column increments issued in a single UPDATE so concurrent credits from
// independent sources never clobber each other.
type ScoreRepository interface {
	Increment(ctx context.Context, athleteID uint64, column string, amount int) error
	ByAthleteID(ctx context.Context, athleteID uint64) (*dbmysql.ScoreEntry, error)
	TopByTotal(ctx context.Context, limit int) ([]*dbmysql.ScoreEntry, error)
}

type scoreRepo struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepo{db: db}
}

func (r *scoreRepo) Increment(ctx context.Context, athleteID uint64, column string, amount int) error {
	result := r.incrementRow(ctx, athleteID, column, amount)
	if result.Error != nil {
		return fmt.Errorf("failed to credit athlete %d: %w", athleteID, result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// No row yet for this athlete; create the zeroed record and retry. A
	// concurrent creator losing the insert race is fine, the increment
	// lands on whichever row won.
	if err := r.createZeroed(ctx, athleteID); err != nil {
		return err
	}

	result = r.incrementRow(ctx, athleteID, column, amount)
	if result.Error != nil {
		return fmt.Errorf("failed to credit athlete %d: %w", athleteID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("score row for athlete %d vanished during credit", athleteID)
	}

	return nil
}

func (r *scoreRepo) incrementRow(ctx context.Context, athleteID uint64, column string, amount int) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&dbmysql.ScoreEntry{}).
		Where("athlete_id = ?", athleteID).
		Updates(map[string]interface{}{
			column:       gorm.Expr(column+" + ?", amount),
			"total":      gorm.Expr("total + ?", amount),
			"updated_at": time.Now(),
		})
}

func (r *scoreRepo) createZeroed(ctx context.Context, athleteID uint64) error {
	err := r.db.WithContext(ctx).Create(&dbmysql.ScoreEntry{AthleteID: athleteID}).Error
	if err != nil && !dbmysql.IsDuplicateEntry(err) {
		return fmt.Errorf("failed to create score row for athlete %d: %w", athleteID, err)
	}
	return nil
}

func (r *scoreRepo) ByAthleteID(ctx context.Context, athleteID uint64) (*dbmysql.ScoreEntry, error) {
	var entry dbmysql.ScoreEntry

	err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).First(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to read score for athlete %d: %w", athleteID, err)
	}

	// Lazy initialization: first read creates the zeroed record.
	if err := r.createZeroed(ctx, athleteID); err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("athlete_id = ?", athleteID).First(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to read score for athlete %d: %w", athleteID, err)
	}

	return &entry, nil
}

func (r *scoreRepo) TopByTotal(ctx context.Context, limit int) ([]*dbmysql.ScoreEntry, error) {
	var entries []*dbmysql.ScoreEntry

	err := r.db.WithContext(ctx).
		Order("total DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return entries, nil
}
