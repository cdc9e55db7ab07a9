// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/sproutly/matchengine/internal/adapters/repository"
	"github.com/sproutly/matchengine/internal/domain/model"
)

// CatalogHandler handles catalog snapshot replacement.
type CatalogHandler struct {
	deps Dependencies
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(deps Dependencies) *CatalogHandler {
	return &CatalogHandler{deps: deps}
}

// catalogRequest mirrors the PUT /catalog body.
type catalogRequest struct {
	Trainers          []trainerPayload  `json:"trainers"`
	Activities        []activityPayload `json:"activities"`
	PackageActivities []bindingPayload  `json:"package_activities"`
}

type catalogResponse struct {
	Status     string `json:"status"`
	Trainers   int    `json:"trainers"`
	Activities int    `json:"activities"`
	Bindings   int    `json:"bindings"`
}

// HandlePutCatalog handles PUT /catalog requests.
func (h *CatalogHandler) HandlePutCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.NotFound(w, r)
		return
	}
	var req catalogRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	snap := repository.Snapshot{
		Trainers:   make([]model.Trainer, len(req.Trainers)),
		Activities: make([]model.Activity, len(req.Activities)),
		Bindings:   make([]model.PackageActivity, len(req.PackageActivities)),
	}
	for i, t := range req.Trainers {
		snap.Trainers[i] = t.toModel()
	}
	for i, a := range req.Activities {
		snap.Activities[i] = a.toModel()
	}
	for i, b := range req.PackageActivities {
		snap.Bindings[i] = b.toModel()
	}

	if err := h.deps.ReplaceCatalog(r.Context(), snap); err != nil {
		if errors.Is(err, repository.ErrEmptySnapshot) {
			writeError(w, http.StatusBadRequest, "empty_snapshot", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, catalogResponse{
		Status:     "ok",
		Trainers:   len(snap.Trainers),
		Activities: len(snap.Activities),
		Bindings:   len(snap.Bindings),
	})
}
