package dbmysql

import (
	"context"
	"fmt"

	"pitchside/internal/common"

	"gorm.io/gorm"
)

type accountDirectory struct {
	db *gorm.DB
}

func NewAccountDirectory(db *gorm.DB) common.AccountDirectory {
	return &accountDirectory{db: db}
}

func (d *accountDirectory) Exists(ctx context.Context, userID uint64) (bool, error) {
	var count int64

	err := d.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ? AND status = ?", userID, "active").
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to look up account %d: %w", userID, err)
	}

	return count > 0, nil
}

type membershipDirectory struct {
	db *gorm.DB
}

func NewMembershipDirectory(db *gorm.DB) common.MembershipDirectory {
	return &membershipDirectory{db: db}
}

func (d *membershipDirectory) IsMember(ctx context.Context, groupID, userID uint64) (bool, error) {
	var count int64

	err := d.db.WithContext(ctx).
		Model(&GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check membership of %d in group %d: %w", userID, groupID, err)
	}

	return count > 0, nil
}

func (d *membershipDirectory) ListMembers(ctx context.Context, groupID uint64) ([]uint64, error) {
	var members []*GroupMember

	err := d.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members of group %d: %w", groupID, err)
	}

	ids := make([]uint64, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}

	return ids, nil
}

type challengeCatalog struct {
	db *gorm.DB
}

func NewChallengeCatalog(db *gorm.DB) common.ChallengeCatalog {
	return &challengeCatalog{db: db}
}

func (c *challengeCatalog) ChallengeInfo(ctx context.Context, challengeID uint64) (*common.OfficialChallengeInfo, error) {
	var challenge OfficialChallenge

	err := c.db.WithContext(ctx).Where("id = ?", challengeID).First(&challenge).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("official challenge %d: %w", challengeID, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load official challenge %d: %w", challengeID, err)
	}

	return &common.OfficialChallengeInfo{
		ID:         challenge.ID,
		Title:      challenge.Title,
		PointValue: challenge.PointValue,
		SubmitLink: challenge.SubmitLink,
	}, nil
}
