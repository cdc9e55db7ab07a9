package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sproutly/matchengine/internal/domain/model"
)

// Pusher uploads generated catalogs to a running match engine.
type Pusher struct {
	client  *http.Client
	baseURL string
}

// NewPusher creates a pusher targeting baseURL with the given timeout.
func NewPusher(baseURL string, timeout time.Duration) *Pusher {
	return &Pusher{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// catalogBody mirrors the PUT /catalog wire schema.
type catalogBody struct {
	Trainers          []trainerBody  `json:"trainers"`
	Activities        []activityBody `json:"activities"`
	PackageActivities []bindingBody  `json:"package_activities"`
}

type trainerBody struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug,omitempty"`
	Capabilities   []string `json:"capabilities,omitempty"`
	ServiceRegions []string `json:"service_regions,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	Experience     int      `json:"experience,omitempty"`
}

type activityBody struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Duration           float64  `json:"duration"`
	AvailableInRegions []string `json:"available_in_regions,omitempty"`
}

type bindingBody struct {
	ID         int   `json:"id"`
	TrainerIDs []int `json:"trainer_ids"`
}

// Push uploads the catalog via PUT /catalog.
func (p *Pusher) Push(ctx context.Context, trainers []model.Trainer, activities []model.Activity, bindings []model.PackageActivity) error {
	body := catalogBody{
		Trainers:          make([]trainerBody, len(trainers)),
		Activities:        make([]activityBody, len(activities)),
		PackageActivities: make([]bindingBody, len(bindings)),
	}
	for i, t := range trainers {
		body.Trainers[i] = trainerBody{
			ID:             t.ID,
			Name:           t.Name,
			Slug:           t.Slug,
			Capabilities:   t.Capabilities,
			ServiceRegions: t.ServiceRegions,
			Rating:         t.Rating,
			Experience:     t.Experience,
		}
	}
	for i, a := range activities {
		body.Activities[i] = activityBody{
			ID:                 a.ID,
			Name:               a.Name,
			Description:        a.Description,
			Duration:           a.Duration,
			AvailableInRegions: a.AvailableInRegions,
		}
	}
	for i, b := range bindings {
		body.PackageActivities[i] = bindingBody{ID: b.ID, TrainerIDs: b.TrainerIDs}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, p.baseURL+"/catalog", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("put catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("put catalog: status %d: %s", resp.StatusCode, msg)
	}
	return nil
}
