// Package handler exposes the conversation store over HTTP and serves the
// fan-out subscription stream.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"pitchside/internal/chat/service"
	"pitchside/internal/common"

	"github.com/gorilla/mux"
)

type ChatHandler struct {
	chatService service.ConversationService
}

func NewChatHandler(chatService service.ConversationService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type sendDirectRequest struct {
	RecipientID   uint64             `json:"recipient_id"`
	Body          string             `json:"body"`
	Kind          common.MessageKind `json:"kind"`
	CorrelationID string             `json:"correlation_id"`
}

func (h *ChatHandler) SendDirect(w http.ResponseWriter, r *http.Request) {
	senderID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	var req sendDirectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("invalid request body: %w", common.ErrInvalid))
		return
	}

	msg, err := h.chatService.SendDirect(r.Context(), senderID, req.RecipientID, req.Body, req.Kind, req.CorrelationID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, msg)
}

type sendGroupRequest struct {
	GroupID       uint64             `json:"group_id"`
	Body          string             `json:"body"`
	Kind          common.MessageKind `json:"kind"`
	CorrelationID string             `json:"correlation_id"`
}

func (h *ChatHandler) SendGroup(w http.ResponseWriter, r *http.Request) {
	senderID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	var req sendGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("invalid request body: %w", common.ErrInvalid))
		return
	}

	msg, err := h.chatService.SendGroup(r.Context(), senderID, req.GroupID, req.Body, req.Kind, req.CorrelationID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, msg)
}

func (h *ChatHandler) ListDirect(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	peerID, err := pathID(r, "peerID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	beforeID, limit := pageParams(r)

	messages, err := h.chatService.ListDirect(r.Context(), viewerID, peerID, beforeID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) ListGroup(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	groupID, err := pathID(r, "groupID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	beforeID, limit := pageParams(r)

	messages, err := h.chatService.ListGroup(r.Context(), viewerID, groupID, beforeID, limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) DeleteDirect(w http.ResponseWriter, r *http.Request) {
	h.deleteMessage(w, r, h.chatService.DeleteDirect)
}

func (h *ChatHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	h.deleteMessage(w, r, h.chatService.DeleteGroup)
}

func (h *ChatHandler) deleteMessage(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, messageID, requesterID uint64) error) {
	requesterID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	messageID, err := pathID(r, "messageID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := del(r.Context(), messageID, requesterID); err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, common.ErrInvalid)
	}
	return id, nil
}

// pageParams reads the cursor ("before", a message id) and "limit" query
// parameters. Zero values let the service apply its defaults.
func pageParams(r *http.Request) (uint64, int) {
	beforeID, _ := strconv.ParseUint(r.URL.Query().Get("before"), 10, 64)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return beforeID, limit
}
