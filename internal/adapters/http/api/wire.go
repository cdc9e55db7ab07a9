// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"github.com/sproutly/matchengine/internal/domain/model"
)

// trainerPayload mirrors the trainer wire schema. Capabilities and
// service_regions distinguish absent (null) from empty, preserving the
// domain's permissive-default semantics.
type trainerPayload struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug,omitempty"`
	Capabilities   []string `json:"capabilities,omitempty"`
	ServiceRegions []string `json:"service_regions,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	Experience     int      `json:"experience,omitempty"`
}

func (p trainerPayload) toModel() model.Trainer {
	return model.Trainer{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Capabilities:   p.Capabilities,
		ServiceRegions: p.ServiceRegions,
		Rating:         p.Rating,
		Experience:     p.Experience,
	}
}

func trainerToPayload(t model.Trainer) trainerPayload {
	return trainerPayload{
		ID:             t.ID,
		Name:           t.Name,
		Slug:           t.Slug,
		Capabilities:   t.Capabilities,
		ServiceRegions: t.ServiceRegions,
		Rating:         t.Rating,
		Experience:     t.Experience,
	}
}

func trainersToPayload(ts []model.Trainer) []trainerPayload {
	out := make([]trainerPayload, len(ts))
	for i, t := range ts {
		out[i] = trainerToPayload(t)
	}
	return out
}

// activityPayload mirrors the activity wire schema.
type activityPayload struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	Duration           float64  `json:"duration"`
	AvailableInRegions []string `json:"available_in_regions,omitempty"`
	AvailablePostcodes []string `json:"available_postcodes,omitempty"`
	ServiceRadiusKM    float64  `json:"service_radius_km,omitempty"`
	Lat                *float64 `json:"lat,omitempty"`
	Lng                *float64 `json:"lng,omitempty"`
}

func (p activityPayload) toModel() model.Activity {
	return model.Activity{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		Duration:           p.Duration,
		AvailableInRegions: p.AvailableInRegions,
		AvailablePostcodes: p.AvailablePostcodes,
		ServiceRadiusKM:    p.ServiceRadiusKM,
		Lat:                p.Lat,
		Lng:                p.Lng,
	}
}

func activityToPayload(a model.Activity) activityPayload {
	return activityPayload{
		ID:                 a.ID,
		Name:               a.Name,
		Description:        a.Description,
		Duration:           a.Duration,
		AvailableInRegions: a.AvailableInRegions,
		AvailablePostcodes: a.AvailablePostcodes,
		ServiceRadiusKM:    a.ServiceRadiusKM,
		Lat:                a.Lat,
		Lng:                a.Lng,
	}
}

func activitiesToPayload(as []model.Activity) []activityPayload {
	out := make([]activityPayload, len(as))
	for i, a := range as {
		out[i] = activityToPayload(a)
	}
	return out
}

// bindingPayload mirrors the package-activity wire schema.
type bindingPayload struct {
	ID         int   `json:"id"`
	TrainerIDs []int `json:"trainer_ids"`
}

func (p bindingPayload) toModel() model.PackageActivity {
	return model.PackageActivity{ID: p.ID, TrainerIDs: p.TrainerIDs}
}

// locationPayload mirrors the location wire schema.
type locationPayload struct {
	Postcode string   `json:"postcode,omitempty"`
	Region   string   `json:"region,omitempty"`
	City     string   `json:"city,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

func (p *locationPayload) toModel() *model.Location {
	if p == nil {
		return nil
	}
	return &model.Location{
		Postcode: p.Postcode,
		Region:   p.Region,
		City:     p.City,
		Lat:      p.Lat,
		Lng:      p.Lng,
	}
}

// weightsPayload mirrors the ranking weights wire schema.
type weightsPayload struct {
	Rating     float64 `json:"rating"`
	Experience float64 `json:"experience"`
	Distance   float64 `json:"distance"`
}

func (p *weightsPayload) toModel() *model.Weights {
	if p == nil {
		return nil
	}
	return &model.Weights{Rating: p.Rating, Experience: p.Experience, Distance: p.Distance}
}
