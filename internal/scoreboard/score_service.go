package scoreboard

import (
	"context"
	"fmt"

	"pitchside/internal/common"
	"pitchside/internal/dbmysql"
)

type Category string

const (
	CategoryPerformance    Category = "performance"
	CategoryDiscipline     Category = "discipline"
	CategoryResponsibility Category = "responsibility"
)

// column maps a category onto its ledger column. The whitelist keeps raw
// category strings out of SQL.
func (c Category) column() (string, bool) {
	switch c {
	case CategoryPerformance, CategoryDiscipline, CategoryResponsibility:
		return string(c), true
	}
	return "", false
}

// ScoreService is the idempotent point accumulator the chat and challenge
// sides credit into.
type ScoreService interface {
	Credit(ctx context.Context, athleteID uint64, category Category, amount int) error
	Read(ctx context.Context, athleteID uint64) (*dbmysql.ScoreEntry, error)
	Leaderboard(ctx context.Context, limit int) ([]*dbmysql.ScoreEntry, error)
}

type scoreService struct {
	repo ScoreRepository
}

func NewScoreService(repo ScoreRepository) ScoreService {
	return &scoreService{repo: repo}
}

// Credit increments one category and the running total. Zero or negative
// amounts are a no-op: this path never decrements.
func (s *scoreService) Credit(ctx context.Context, athleteID uint64, category Category, amount int) error {
	if athleteID == 0 {
		return fmt.Errorf("athlete ID is required: %w", common.ErrInvalid)
	}
	if amount <= 0 {
		return nil
	}

	column, ok := category.column()
	if !ok {
		return fmt.Errorf("unknown score category %s: %w", category, common.ErrInvalid)
	}

	return s.repo.Increment(ctx, athleteID, column, amount)
}

func (s *scoreService) Read(ctx context.Context, athleteID uint64) (*dbmysql.ScoreEntry, error) {
	if athleteID == 0 {
		return nil, fmt.Errorf("athlete ID is required: %w", common.ErrInvalid)
	}

	return s.repo.ByAthleteID(ctx, athleteID)
}

func (s *scoreService) Leaderboard(ctx context.Context, limit int) ([]*dbmysql.ScoreEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	return s.repo.TopByTotal(ctx, limit)
}
