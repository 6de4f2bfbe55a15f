package repository

import (
	"context"
	"fmt"

	"pitchside/internal/common"
	"pitchside/internal/dbmysql"

	"gorm.io/gorm"
)

// ChatRepository persists direct and group messages. Pages are keyset
// paginated in reverse id order: beforeID == 0 means "newest page", any
// other value returns messages strictly older than that id.
type ChatRepository interface {
	SaveDirect(ctx context.Context, msg *dbmysql.Message) error
	SaveGroup(ctx context.Context, msg *dbmysql.GroupMessage) error
	ListDirect(ctx context.Context, userA, userB, beforeID uint64, limit int) ([]*dbmysql.Message, error)
	ListGroup(ctx context.Context, groupID, beforeID uint64, limit int) ([]*dbmysql.GroupMessage, error)
	DirectByID(ctx context.Context, id uint64) (*dbmysql.Message, error)
	GroupByID(ctx context.Context, id uint64) (*dbmysql.GroupMessage, error)
	DeleteDirect(ctx context.Context, id uint64) error
	DeleteGroup(ctx context.Context, id uint64) error
}

type chatRepo struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepo{db: db}
}

func (r *chatRepo) SaveDirect(ctx context.Context, msg *dbmysql.Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save direct message: %w", err)
	}
	return nil
}

func (r *chatRepo) SaveGroup(ctx context.Context, msg *dbmysql.GroupMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to save group message: %w", err)
	}
	return nil
}

func (r *chatRepo) ListDirect(ctx context.Context, userA, userB, beforeID uint64, limit int) ([]*dbmysql.Message, error) {
	var messages []*dbmysql.Message

	query := r.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}

	err := query.Order("id DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list direct messages: %w", err)
	}

	return messages, nil
}

func (r *chatRepo) ListGroup(ctx context.Context, groupID, beforeID uint64, limit int) ([]*dbmysql.GroupMessage, error) {
	var messages []*dbmysql.GroupMessage

	query := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	if beforeID > 0 {
		query = query.Where("id < ?", beforeID)
	}

	err := query.Order("id DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list group messages: %w", err)
	}

	return messages, nil
}

func (r *chatRepo) DirectByID(ctx context.Context, id uint64) (*dbmysql.Message, error) {
	var msg dbmysql.Message

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("message %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load message %d: %w", id, err)
	}

	return &msg, nil
}

func (r *chatRepo) GroupByID(ctx context.Context, id uint64) (*dbmysql.GroupMessage, error) {
	var msg dbmysql.GroupMessage

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&msg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("group message %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load group message %d: %w", id, err)
	}

	return &msg, nil
}

func (r *chatRepo) DeleteDirect(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.Message{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message %d: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *chatRepo) DeleteGroup(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&dbmysql.GroupMessage{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete group message %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("group message %d: %w", id, common.ErrNotFound)
	}
	return nil
}
