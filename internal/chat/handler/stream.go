package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"pitchside/internal/common"
	"pitchside/internal/realtime"
)

// StreamHandler serves the fan-out subscription as a server-sent event
// stream. A client subscribes to its own user topic plus each group topic
// it can prove membership of via ?groups=1,2,3.
type StreamHandler struct {
	hub     *realtime.Hub
	members common.MembershipDirectory
}

func NewStreamHandler(hub *realtime.Hub, members common.MembershipDirectory) *StreamHandler {
	return &StreamHandler{hub: hub, members: members}
}

func (h *StreamHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		common.WriteError(w, fmt.Errorf("streaming unsupported by connection"))
		return
	}

	topics := []string{common.UserTopic(userID)}
	groupIDs, err := h.groupTopics(r, userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	topics = append(topics, groupIDs...)

	sub := h.hub.Subscribe(topics...)
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case event, open := <-sub.C():
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("Failed to encode event for user %d: %v", userID, err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, data)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

// groupTopics validates the requested group subscriptions against current
// membership; a non-member asking for a group topic gets Forbidden rather
// than a silent skip.
func (h *StreamHandler) groupTopics(r *http.Request, userID uint64) ([]string, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("groups"))
	if raw == "" {
		return nil, nil
	}

	var topics []string
	for _, part := range strings.Split(raw, ",") {
		groupID, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil || groupID == 0 {
			return nil, fmt.Errorf("invalid group id %q: %w", part, common.ErrInvalid)
		}

		isMember, err := h.members.IsMember(r.Context(), groupID, userID)
		if err != nil {
			return nil, err
		}
		if !isMember {
			return nil, fmt.Errorf("user %d is not a member of group %d: %w", userID, groupID, common.ErrForbidden)
		}

		topics = append(topics, common.GroupTopic(groupID))
	}

	return topics, nil
}
