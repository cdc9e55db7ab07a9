// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"

	"github.com/sproutly/matchengine/internal/domain/activities"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// SearchHandler handles activity search requests.
type SearchHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewSearchHandler creates a new activity search handler.
func NewSearchHandler(deps Dependencies, maxLimit int) *SearchHandler {
	return &SearchHandler{deps: deps, maxLimit: maxLimit}
}

// searchRequest mirrors the POST /activities/search body.
type searchRequest struct {
	Location *locationPayload `json:"location"`
	Search   string           `json:"search"`
	Duration string           `json:"duration"`
	Rank     bool             `json:"rank"`
	Limit    int              `json:"limit"`
}

type searchResponse struct {
	Activities []activityPayload   `json:"activities"`
	Stats      model.ActivityStats `json:"stats"`
}

// HandleSearch handles POST /activities/search requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	opts := activities.FilterOptions{
		Location: req.Location.toModel(),
		Search:   req.Search,
		Duration: req.Duration,
	}
	filtered, stats := h.deps.SearchActivities(r.Context(), opts, req.Rank)

	limit := req.Limit
	if limit < 1 || limit > h.maxLimit {
		limit = h.maxLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Activities: activitiesToPayload(filtered),
		Stats:      stats,
	})
}

// ValidateHandler handles selection validation requests.
type ValidateHandler struct {
	deps Dependencies
}

// NewValidateHandler creates a new selection validation handler.
func NewValidateHandler(deps Dependencies) *ValidateHandler {
	return &ValidateHandler{deps: deps}
}

// validateRequest mirrors the POST /activities/validate body.
type validateRequest struct {
	SelectedIDs     []int   `json:"selected_ids"`
	TrainerChoice   bool    `json:"trainer_choice"`
	SessionDuration float64 `json:"session_duration"`
}

// HandleValidate handles POST /activities/validate requests. A failed
// validation is still a 200: the verdict is the payload.
func (h *ValidateHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req validateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	result := h.deps.ValidateSelection(r.Context(), req.SelectedIDs, req.TrainerChoice, req.SessionDuration)
	writeJSON(w, http.StatusOK, result)
}

// RecommendHandler handles mode recommendation requests.
type RecommendHandler struct {
	deps Dependencies
}

// NewRecommendHandler creates a new mode recommendation handler.
func NewRecommendHandler(deps Dependencies) *RecommendHandler {
	return &RecommendHandler{deps: deps}
}

type recommendResponse struct {
	Mode       string            `json:"mode"`
	Activities []activityPayload `json:"activities"`
}

// HandleRecommend handles GET /activities/modes/{mode} requests. Unknown
// modes return an empty list, matching the engine's contract.
func (h *RecommendHandler) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	mode := strings.TrimPrefix(r.URL.Path, "/activities/modes/")
	if mode == "" || strings.Contains(mode, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	recommended := h.deps.RecommendedForMode(r.Context(), activities.Mode(mode))
	writeJSON(w, http.StatusOK, recommendResponse{
		Mode:       mode,
		Activities: activitiesToPayload(recommended),
	})
}
