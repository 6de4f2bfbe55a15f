package service

import (
	"context"
	"fmt"
	"time"

	"pitchside/internal/chat/repository"
	"pitchside/internal/common"
	"pitchside/internal/config"
	"pitchside/internal/dbmysql"
)

// ConversationService defines the interface exposed to the handler layer
type ConversationService interface {
	SendDirect(ctx context.Context, senderID, recipientID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.Message, error)
	SendGroup(ctx context.Context, senderID, groupID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.GroupMessage, error)
	PostSystem(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body string) (*dbmysql.GroupMessage, error)
	ListDirect(ctx context.Context, viewerID, peerID, beforeID uint64, limit int) ([]*dbmysql.Message, error)
	ListGroup(ctx context.Context, viewerID, groupID, beforeID uint64, limit int) ([]*dbmysql.GroupMessage, error)
	DeleteDirect(ctx context.Context, messageID, requesterID uint64) error
	DeleteGroup(ctx context.Context, messageID, requesterID uint64) error
}

type conversationService struct {
	repo     repository.ChatRepository
	accounts common.AccountDirectory
	members  common.MembershipDirectory
	pub      common.Publisher
	cfg      *config.Config
}

// Constructor used in DI/wire
func NewConversationService(
	r repository.ChatRepository,
	accounts common.AccountDirectory,
	members common.MembershipDirectory,
	pub common.Publisher,
	cfg *config.Config,
) ConversationService {
	return &conversationService{
		repo:     r,
		accounts: accounts,
		members:  members,
		pub:      pub,
		cfg:      cfg,
	}
}

// SendDirect validates both parties, persists the message, and fans it out
// to sender and recipient topics. The correlation id is echoed back on the
// stored record and the fan-out payload but never persisted.
func (s *conversationService) SendDirect(ctx context.Context, senderID, recipientID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.Message, error) {
	if senderID == 0 || recipientID == 0 {
		return nil, fmt.Errorf("sender and recipient IDs are required: %w", common.ErrInvalid)
	}
	if body == "" {
		return nil, fmt.Errorf("message body cannot be empty: %w", common.ErrInvalid)
	}
	if kind == "" {
		kind = common.KindText
	}
	if !common.ValidSendKind(kind) {
		return nil, fmt.Errorf("invalid message kind %s: %w", kind, common.ErrInvalid)
	}

	for _, id := range []uint64{senderID, recipientID} {
		exists, err := s.accounts.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("account %d: %w", id, common.ErrNotFound)
		}
	}

	msg := &dbmysql.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
		Kind:        kind,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.SaveDirect(ctx, msg); err != nil {
		return nil, err
	}
	msg.CorrelationID = correlationID

	payload := common.MessagePayload{
		ID:            msg.ID,
		SenderID:      msg.SenderID,
		RecipientID:   msg.RecipientID,
		Body:          msg.Body,
		Kind:          msg.Kind,
		CreatedAt:     msg.CreatedAt,
		CorrelationID: correlationID,
	}
	event := common.Event{Type: common.MessageCreatedEvent, Payload: payload}
	s.pub.Publish(common.UserTopic(recipientID), event)
	s.pub.Publish(common.UserTopic(senderID), event)

	return msg, nil
}

// SendGroup re-checks membership on every send; membership can change
// between messages.
func (s *conversationService) SendGroup(ctx context.Context, senderID, groupID uint64, body string, kind common.MessageKind, correlationID string) (*dbmysql.GroupMessage, error) {
	if senderID == 0 || groupID == 0 {
		return nil, fmt.Errorf("sender and group IDs are required: %w", common.ErrInvalid)
	}
	if body == "" {
		return nil, fmt.Errorf("message body cannot be empty: %w", common.ErrInvalid)
	}
	if kind == "" {
		kind = common.KindText
	}
	if !common.ValidSendKind(kind) {
		return nil, fmt.Errorf("invalid message kind %s: %w", kind, common.ErrInvalid)
	}

	isMember, err := s.members.IsMember(ctx, groupID, senderID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %d is not a member of group %d: %w", senderID, groupID, common.ErrForbidden)
	}

	return s.saveAndBroadcastGroup(ctx, senderID, groupID, kind, body, correlationID)
}

// PostSystem stores a system-generated group notice (challenge progress or
// bonus). The caller has already authorized the triggering member.
func (s *conversationService) PostSystem(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body string) (*dbmysql.GroupMessage, error) {
	if kind != common.KindChallengeUpdate && kind != common.KindChallengeBonus {
		return nil, fmt.Errorf("invalid system message kind %s: %w", kind, common.ErrInvalid)
	}

	return s.saveAndBroadcastGroup(ctx, senderID, groupID, kind, body, "")
}

func (s *conversationService) saveAndBroadcastGroup(ctx context.Context, senderID, groupID uint64, kind common.MessageKind, body, correlationID string) (*dbmysql.GroupMessage, error) {
	msg := &dbmysql.GroupMessage{
		SenderID:  senderID,
		GroupID:   groupID,
		Body:      body,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveGroup(ctx, msg); err != nil {
		return nil, err
	}
	msg.CorrelationID = correlationID

	s.pub.Publish(common.GroupTopic(groupID), common.Event{
		Type: common.MessageCreatedEvent,
		Payload: common.MessagePayload{
			ID:            msg.ID,
			SenderID:      msg.SenderID,
			GroupID:       msg.GroupID,
			Body:          msg.Body,
			Kind:          msg.Kind,
			CreatedAt:     msg.CreatedAt,
			CorrelationID: correlationID,
		},
	})

	return msg, nil
}

func (s *conversationService) ListDirect(ctx context.Context, viewerID, peerID, beforeID uint64, limit int) ([]*dbmysql.Message, error) {
	if viewerID == 0 || peerID == 0 {
		return nil, fmt.Errorf("viewer and peer IDs are required: %w", common.ErrInvalid)
	}

	return s.repo.ListDirect(ctx, viewerID, peerID, beforeID, s.clampLimit(limit))
}

func (s *conversationService) ListGroup(ctx context.Context, viewerID, groupID, beforeID uint64, limit int) ([]*dbmysql.GroupMessage, error) {
	if viewerID == 0 || groupID == 0 {
		return nil, fmt.Errorf("viewer and group IDs are required: %w", common.ErrInvalid)
	}

	isMember, err := s.members.IsMember(ctx, groupID, viewerID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, fmt.Errorf("user %d is not a member of group %d: %w", viewerID, groupID, common.ErrForbidden)
	}

	return s.repo.ListGroup(ctx, groupID, beforeID, s.clampLimit(limit))
}

// DeleteDirect removes a direct message owned by the requester and queues a
// deletion notice for both parties. Direct and group message ids are
// independent sequences, so each kind has its own delete path.
func (s *conversationService) DeleteDirect(ctx context.Context, messageID, requesterID uint64) error {
	msg, err := s.repo.DirectByID(ctx, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != requesterID {
		return fmt.Errorf("message %d belongs to another author: %w", messageID, common.ErrForbidden)
	}
	if err := s.repo.DeleteDirect(ctx, messageID); err != nil {
		return err
	}

	event := common.Event{
		Type:    common.MessageDeletedEvent,
		Payload: common.DeletionPayload{MessageID: messageID},
	}
	s.pub.Publish(common.UserTopic(msg.RecipientID), event)
	s.pub.Publish(common.UserTopic(msg.SenderID), event)
	return nil
}

// DeleteGroup removes a group message owned by the requester and notifies
// the group topic. The group's own id sequence is consulted, never the
// direct table.
func (s *conversationService) DeleteGroup(ctx context.Context, messageID, requesterID uint64) error {
	groupMsg, err := s.repo.GroupByID(ctx, messageID)
	if err != nil {
		return err
	}
	if groupMsg.SenderID != requesterID {
		return fmt.Errorf("group message %d belongs to another author: %w", messageID, common.ErrForbidden)
	}
	if err := s.repo.DeleteGroup(ctx, messageID); err != nil {
		return err
	}

	s.pub.Publish(common.GroupTopic(groupMsg.GroupID), common.Event{
		Type:    common.MessageDeletedEvent,
		Payload: common.DeletionPayload{MessageID: messageID, GroupID: groupMsg.GroupID},
	})
	return nil
}

func (s *conversationService) clampLimit(limit int) int {
	if limit <= 0 {
		if s.cfg != nil && s.cfg.Chat.DefaultPageSize > 0 {
			return s.cfg.Chat.DefaultPageSize
		}
		return 50
	}
	if s.cfg != nil && s.cfg.Chat.MaxPageSize > 0 && limit > s.cfg.Chat.MaxPageSize {
		return s.cfg.Chat.MaxPageSize
	}
	return limit
}
