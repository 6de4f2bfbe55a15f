package scoreboard

import (
	"fmt"
	"net/http"
	"strconv"

	"pitchside/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	service ScoreService
}

func NewHandler(service ScoreService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	raw := mux.Vars(r)["athleteID"]
	athleteID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || athleteID == 0 {
		common.WriteError(w, fmt.Errorf("invalid athleteID %q: %w", raw, common.ErrInvalid))
		return
	}

	entry, err := h.service.Read(r.Context(), athleteID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, entry)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteError(w, common.ErrUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, entries)
}
