// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/sproutly/matchengine/internal/app"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// MatchHandler handles trainer match requests.
type MatchHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewMatchHandler creates a new trainer match handler.
func NewMatchHandler(deps Dependencies, maxLimit int) *MatchHandler {
	return &MatchHandler{deps: deps, maxLimit: maxLimit}
}

// matchRequest mirrors the POST /match/trainers body.
type matchRequest struct {
	Capabilities []string         `json:"capabilities"`
	Location     *locationPayload `json:"location"`
	ActivityIDs  []int            `json:"activity_ids"`
	Activities   []string         `json:"activities"`
	Weights      *weightsPayload  `json:"weights"`
	Date         string           `json:"date"`
	Limit        int              `json:"limit"`
}

type matchResponse struct {
	Trainers []trainerPayload `json:"trainers"`
	Count    int              `json:"count"`
}

// HandleMatchTrainers handles POST /match/trainers requests.
func (h *MatchHandler) HandleMatchTrainers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req matchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	filter := app.TrainerFilter{
		Capabilities: req.Capabilities,
		Location:     req.Location.toModel(),
		ActivityIDs:  req.ActivityIDs,
	}
	criteria := model.RankingCriteria{
		Location:     req.Location.toModel(),
		Capabilities: req.Capabilities,
		Activities:   req.Activities,
		Date:         date,
		Weights:      req.Weights.toModel(),
	}

	ranked := h.deps.MatchTrainers(r.Context(), filter, criteria)

	limit := req.Limit
	if limit < 1 || limit > h.maxLimit {
		limit = h.maxLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	writeJSON(w, http.StatusOK, matchResponse{
		Trainers: trainersToPayload(ranked),
		Count:    len(ranked),
	})
}

// BestMatchHandler handles single best-match resolution.
type BestMatchHandler struct {
	deps Dependencies
}

// NewBestMatchHandler creates a new best-match handler.
func NewBestMatchHandler(deps Dependencies) *BestMatchHandler {
	return &BestMatchHandler{deps: deps}
}

// bestMatchRequest mirrors the POST /match/best body.
type bestMatchRequest struct {
	Capabilities    []string         `json:"capabilities"`
	Activity        string           `json:"activity"`
	Location        *locationPayload `json:"location"`
	Date            string           `json:"date"`
	SessionDuration float64          `json:"session_duration"`
}

// HandleBestMatch handles POST /match/best requests. A booking with no
// eligible trainer is a 404, not an error.
func (h *BestMatchHandler) HandleBestMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req bestMatchRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	requirements := model.TrainerRequirements{
		Capabilities:    req.Capabilities,
		Activity:        req.Activity,
		Date:            date,
		SessionDuration: req.SessionDuration,
	}
	if loc := req.Location.toModel(); loc != nil {
		requirements.Location = *loc
	}

	best := h.deps.ResolveBestMatch(r.Context(), requirements)
	if best == nil {
		writeError(w, http.StatusNotFound, "no_match", errors.New("no eligible trainer"))
		return
	}
	writeJSON(w, http.StatusOK, trainerToPayload(*best))
}

// parseDate parses an optional RFC3339 date field.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errors.New("invalid date; must be RFC3339")
	}
	return &t, nil
}
