package challenge

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"pitchside/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	coordinator Coordinator
}

func NewHandler(coordinator Coordinator) *Handler {
	return &Handler{coordinator: coordinator}
}

type assignRequest struct {
	OfficialChallengeID uint64     `json:"official_challenge_id"`
	Deadline            *time.Time `json:"deadline,omitempty"`
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	creatorID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	groupID, err := pathID(r, "groupID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("invalid request body: %w", common.ErrInvalid))
		return
	}
	if req.OfficialChallengeID == 0 {
		common.WriteError(w, fmt.Errorf("official_challenge_id is required: %w", common.ErrInvalid))
		return
	}

	assignment, err := h.coordinator.Assign(r.Context(), groupID, req.OfficialChallengeID, creatorID, req.Deadline)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, assignment)
}

type submitRequest struct {
	SubmissionID uint64 `json:"submission_id"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	memberID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	assignmentID, err := pathID(r, "assignmentID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, fmt.Errorf("invalid request body: %w", common.ErrInvalid))
		return
	}
	if req.SubmissionID == 0 {
		common.WriteError(w, fmt.Errorf("submission_id is required: %w", common.ErrInvalid))
		return
	}

	submission, err := h.coordinator.Submit(r.Context(), assignmentID, memberID, req.SubmissionID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, submission)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	viewerID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	assignmentID, err := pathID(r, "assignmentID")
	if err != nil {
		common.WriteError(w, err)
		return
	}

	progress, err := h.coordinator.Progress(r.Context(), assignmentID, viewerID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, progress)
}

func pathID(r *http.Request, name string) (uint64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, common.ErrInvalid)
	}
	return id, nil
}
